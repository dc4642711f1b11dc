package converters

import (
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/skewmatch/core"
)

// ToGonum copies g into a gonum simple undirected graph. Node ids equal core
// vertex ids.
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for _, v := range g.Vertices() {
		out.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		out.SetEdge(simple.Edge{F: simple.Node(e.Beg), T: simple.Node(e.End)})
	}

	return out
}

// FromGonum copies src into a new core.Graph and returns the mapping from
// gonum node ids to core vertex ids.
//
// Nodes are added in ascending id order. Edges are added for each node u in
// that order, towards neighbors v > u in ascending order. Self-loops are
// rejected by core and reported as errors.
func FromGonum(src graph.Undirected) (*core.Graph, map[int64]int, error) {
	nodes := sortedIDs(src.Nodes())
	g := core.NewGraph(core.WithVertexCapacity(len(nodes)))
	ids := make(map[int64]int, len(nodes))
	for _, id := range nodes {
		ids[id] = g.AddVertex()
	}

	for _, u := range nodes {
		for _, v := range sortedIDs(src.From(u)) {
			if v < u {
				continue
			}
			if _, err := g.AddEdge(ids[u], ids[v]); err != nil {
				return nil, nil, errors.Wrapf(err, "gonum edge %d-%d", u, v)
			}
		}
	}

	return g, ids, nil
}

// Compact renumbers the vertices of g densely, in ascending id order, through
// a gonum round trip. Edges are renumbered as FromGonum adds them. The map
// takes old vertex ids to new ones.
func Compact(g *core.Graph) (*core.Graph, map[int]int, error) {
	out, ids, err := FromGonum(ToGonum(g))
	if err != nil {
		return nil, nil, err
	}
	remap := make(map[int]int, len(ids))
	for old, v := range ids {
		remap[int(old)] = v
	}

	return out, remap, nil
}

// Components returns the connected components of g as ascending vertex id
// lists, ordered by their smallest vertex.
func Components(g *core.Graph) [][]int {
	comps := topo.ConnectedComponents(ToGonum(g))
	out := make([][]int, 0, len(comps))
	for _, comp := range comps {
		vs := make([]int, len(comp))
		for i, n := range comp {
			vs[i] = int(n.ID())
		}
		sort.Ints(vs)
		out = append(out, vs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

func sortedIDs(it graph.Nodes) []int64 {
	var ids []int64
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
