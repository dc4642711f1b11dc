package problem

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/skewmatch/converters"
	"github.com/katalvlaran/skewmatch/core"
	"github.com/katalvlaran/skewmatch/flow"
	"github.com/katalvlaran/skewmatch/matching"
)

// Instance is a validated problem wired into a finder.
type Instance struct {
	Problem *Problem
	Graph   *core.Graph
	Finder  *matching.ConstrainedFinder

	// SetIndex maps set names to finder set indices.
	SetIndex map[string]int
}

// Result summarizes one solve.
type Result struct {
	Requested int
	Achieved  int
	Exact     bool
	Matched   []matching.EdgeMultiplicity
	SetLoads  map[string]int64
	Incident  map[int]int64
}

// Build validates p and constructs the graph and finder with every capacity
// applied. Vertex ids are 0..Vertices-1 and edge ids follow p.Edges.
func (p *Problem) Build(opts flow.FlowOptions) (*Instance, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithVertexCapacity(p.Vertices), core.WithEdgeCapacity(len(p.Edges)))
	for i := 0; i < p.Vertices; i++ {
		g.AddVertex()
	}
	for i, e := range p.Edges {
		if _, err := g.AddEdge(e.From, e.To); err != nil {
			return nil, errors.Wrapf(err, "edge %d", i)
		}
	}

	idx := p.setIndex()
	nodesPerSet := make([][]int, len(p.Sets))
	parents := make([]int, len(p.Sets))
	for i, s := range p.Sets {
		nodesPerSet[i] = s.Nodes
		parents[i] = matching.NoParent
		if s.Parent != "" {
			parents[i] = idx[s.Parent]
		}
	}

	f, err := matching.NewConstrainedFinder(g, nodesPerSet, parents, opts)
	if err != nil {
		return nil, errors.Wrap(err, "build finder")
	}
	for i, s := range p.Sets {
		if err = f.SetNodeSetCapacity(i, s.Capacity); err != nil {
			return nil, err
		}
		for _, v := range s.Nodes {
			if err = f.SetNodeCapacity(v, s.NodeCapacity, i); err != nil {
				return nil, err
			}
		}
		for _, o := range s.Overrides {
			if err = f.SetNodeCapacity(o.Node, o.Capacity, i); err != nil {
				return nil, err
			}
		}
	}
	for i, e := range p.Edges {
		if err = f.SetMaxEdgeMultiplicity(i, e.MaxMultiplicity); err != nil {
			return nil, err
		}
	}

	return &Instance{Problem: p, Graph: g, Finder: f, SetIndex: idx}, nil
}

// Solve runs the finder for the given cardinality and collects the results.
func (in *Instance) Solve(cardinality int) (*Result, error) {
	exact, err := in.Finder.FindMatching(cardinality)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Requested: cardinality,
		Exact:     exact,
		SetLoads:  make(map[string]int64, len(in.SetIndex)),
		Incident:  make(map[int]int64, in.Graph.VertexCount()),
	}
	if res.Achieved, err = in.Finder.Cardinality(); err != nil {
		return nil, err
	}
	if res.Matched, err = in.Finder.Matched(); err != nil {
		return nil, err
	}
	for name, i := range in.SetIndex {
		if res.SetLoads[name], err = in.Finder.SetLoad(i); err != nil {
			return nil, err
		}
	}
	for _, v := range in.Graph.Vertices() {
		if res.Incident[v], err = in.Finder.NodeIncidentEdgesCount(v); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// FromGraph describes g as a problem. Every edge gets multiplicity and sets
// are copied as given. A graph whose vertex ids have gaps is compacted first
// (see converters.Compact); set nodes and overrides are renumbered to match.
func FromGraph(g *core.Graph, cardinality int, multiplicity int64, sets []Set) (*Problem, error) {
	if g.VertexEnd() != g.VertexCount() {
		compact, remap, err := converters.Compact(g)
		if err != nil {
			return nil, errors.Wrap(err, "compact graph")
		}
		if sets, err = renumberSets(sets, remap); err != nil {
			return nil, err
		}
		g = compact
	}

	p := &Problem{Cardinality: cardinality, Vertices: g.VertexCount(), Sets: sets}
	for _, e := range g.Edges() {
		p.Edges = append(p.Edges, Edge{From: e.Beg, To: e.End, MaxMultiplicity: multiplicity})
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// renumberSets returns copies of sets with node ids mapped through remap.
func renumberSets(sets []Set, remap map[int]int) ([]Set, error) {
	lookup := func(set string, v int) (int, error) {
		nv, ok := remap[v]
		if !ok {
			return 0, errors.Wrapf(ErrInvalidProblem, "set %q: node %d is not in the graph", set, v)
		}
		return nv, nil
	}

	out := make([]Set, len(sets))
	for i, s := range sets {
		out[i] = s
		out[i].Nodes = make([]int, len(s.Nodes))
		for j, v := range s.Nodes {
			nv, err := lookup(s.Name, v)
			if err != nil {
				return nil, err
			}
			out[i].Nodes[j] = nv
		}
		if len(s.Overrides) > 0 {
			out[i].Overrides = make([]Override, len(s.Overrides))
			for j, o := range s.Overrides {
				nv, err := lookup(s.Name, o.Node)
				if err != nil {
					return nil, err
				}
				out[i].Overrides[j] = Override{Node: nv, Capacity: o.Capacity}
			}
		}
	}

	return out, nil
}
