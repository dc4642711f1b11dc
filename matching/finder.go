package matching

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/skewmatch/core"
	"github.com/katalvlaran/skewmatch/flow"
)

// ConstrainedFinder finds b-matchings of a graph under hierarchical
// capacity constraints by reducing them to skew-symmetric flow.
//
// Network layout (x' denotes sym(x)):
//
//	source -> root                      capacity 2k on FindMatching(k)
//	root or parent set -> set           set capacity
//	set -> v                            capacity of v inside that set
//	v1 -> v2' and v2 -> v1'             max multiplicity of edge (v1, v2)
//
// One unit of flow through v1 -> v2' together with its mirror v2 -> v1'
// is one use of the edge; it charges one unit of capacity to each endpoint
// and, through conservation, to every set on the way up from each endpoint.
//
// All capacities start at 0. The finder borrows the graph for reading at
// construction only; it owns its network.
type ConstrainedFinder struct {
	opts flow.FlowOptions

	net       *flow.SkewNetwork
	sourceArc int
	root      int

	sets     []ConstraintSet
	nodeArcs []map[int]int // set -> graph vertex -> arc
	nodes    map[int]int   // graph vertex -> network vertex
	edgeArcs map[int]int   // graph edge -> arc
	edges    []core.Edge   // ascending id

	finder       *flow.SkewFlowFinder
	solved       bool
	cardinality  int
	multiplicity map[int]int64
	incident     map[int]int64
}

// NewConstrainedFinder builds the network for g.
//
// nodesPerSet[i] lists the vertices of set i. parentSet[i] is the parent of
// set i or NoParent; a nil parentSet makes every set top-level.
//
// Steps:
//  1. Validate the parent list: same length as nodesPerSet, indices in range.
//  2. Add source and root, joined by the source arc.
//  3. Add one vertex per set, parents first, each fed by its in-arc.
//  4. Add one vertex per graph vertex.
//  5. Add a set -> vertex arc per membership.
//  6. Add an arc per graph edge.
func NewConstrainedFinder(g Graph, nodesPerSet [][]int, parentSet []int, opts flow.FlowOptions) (*ConstrainedFinder, error) {
	// 1) parent list
	if parentSet != nil && len(parentSet) != len(nodesPerSet) {
		return nil, errors.Wrapf(ErrInvalidParentSet, "%d parents for %d sets", len(parentSet), len(nodesPerSet))
	}
	parent := func(i int) int {
		if parentSet == nil {
			return NoParent
		}
		return parentSet[i]
	}
	for i := range nodesPerSet {
		if p := parent(i); p != NoParent && (p < 0 || p >= len(nodesPerSet)) {
			return nil, errors.Wrapf(ErrInvalidParentSet, "set %d: parent %d", i, p)
		}
	}

	f := &ConstrainedFinder{
		opts:     opts,
		net:      flow.NewSkewNetwork(),
		sets:     make([]ConstraintSet, len(nodesPerSet)),
		nodeArcs: make([]map[int]int, len(nodesPerSet)),
		nodes:    make(map[int]int),
		edgeArcs: make(map[int]int),
	}

	// 2) source and root
	source, _ := f.net.AddVertex()
	f.root, _ = f.net.AddVertex()
	var err error
	if f.sourceArc, err = f.net.AddArc(source, f.root, 0); err != nil {
		return nil, errors.Wrap(err, "source arc")
	}
	if err = f.net.SetSource(source); err != nil {
		return nil, err
	}

	// 3) sets, parents before children
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(nodesPerSet))
	var materialize func(i int) error
	materialize = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return errors.Wrapf(ErrInvalidParentSet, "cycle through set %d", i)
		}
		state[i] = visiting
		from := f.root
		if p := parent(i); p != NoParent {
			if err := materialize(p); err != nil {
				return err
			}
			from = f.sets[p].Node
		}
		node, _ := f.net.AddVertex()
		arc, err := f.net.AddArc(from, node, 0)
		if err != nil {
			return errors.Wrapf(err, "in-arc of set %d", i)
		}
		f.sets[i] = ConstraintSet{Node: node, InArc: arc, Parent: parent(i)}
		state[i] = done

		return nil
	}
	for i := range nodesPerSet {
		if err := materialize(i); err != nil {
			return nil, err
		}
	}

	// 4) graph vertices
	for _, v := range g.Vertices() {
		if _, dup := f.nodes[v]; dup {
			continue
		}
		node, _ := f.net.AddVertex()
		f.nodes[v] = node
	}

	// 5) memberships
	for i, members := range nodesPerSet {
		f.nodeArcs[i] = make(map[int]int, len(members))
		for _, v := range members {
			node, ok := f.nodes[v]
			if !ok {
				return nil, errors.Wrapf(ErrNodeNotFound, "set %d: node %d", i, v)
			}
			if _, dup := f.nodeArcs[i][v]; dup {
				return nil, errors.Wrapf(ErrDuplicateNode, "set %d: node %d", i, v)
			}
			arc, err := f.net.AddArc(f.sets[i].Node, node, 0)
			if err != nil {
				return nil, errors.Wrapf(err, "set %d: node %d", i, v)
			}
			f.nodeArcs[i][v] = arc
		}
	}

	// 6) edges
	f.edges = append([]core.Edge(nil), g.Edges()...)
	sort.Slice(f.edges, func(i, j int) bool { return f.edges[i].ID < f.edges[j].ID })
	for _, e := range f.edges {
		beg, okBeg := f.nodes[e.Beg]
		end, okEnd := f.nodes[e.End]
		if !okBeg || !okEnd {
			return nil, errors.Wrapf(ErrNodeNotFound, "edge %d (%d, %d)", e.ID, e.Beg, e.End)
		}
		endSym, _ := f.net.SymmetricVertex(end)
		arc, err := f.net.AddArc(beg, endSym, 0)
		if err != nil {
			return nil, errors.Wrapf(err, "edge %d (%d, %d)", e.ID, e.Beg, e.End)
		}
		f.edgeArcs[e.ID] = arc
	}

	if l := opts.Logger; l != nil {
		l.Debug("matching network built",
			"sets", len(f.sets), "vertices", len(f.nodes), "edges", len(f.edges),
			"network_vertices", len(f.net.Vertices()), "network_arcs", len(f.net.Arcs()))
	}

	return f, nil
}

// SetCount returns the number of constraint sets.
func (f *ConstrainedFinder) SetCount() int { return len(f.sets) }

// Set returns the network image of set.
func (f *ConstrainedFinder) Set(set int) (ConstraintSet, error) {
	if set < 0 || set >= len(f.sets) {
		return ConstraintSet{}, errors.Wrapf(ErrSetNotFound, "set %d", set)
	}

	return f.sets[set], nil
}

func (f *ConstrainedFinder) nodeArc(node, set int) (int, error) {
	if set < 0 || set >= len(f.sets) {
		return core.NoID, errors.Wrapf(ErrSetNotFound, "set %d", set)
	}
	arc, ok := f.nodeArcs[set][node]
	if !ok {
		return core.NoID, errors.Wrapf(ErrNodeNotInSet, "node %d, set %d", node, set)
	}

	return arc, nil
}

func (f *ConstrainedFinder) edgeArc(edge int) (int, error) {
	arc, ok := f.edgeArcs[edge]
	if !ok {
		return core.NoID, errors.Wrapf(ErrEdgeNotFound, "edge %d", edge)
	}

	return arc, nil
}

// SetNodeCapacity caps how many matched edges may touch node while credited
// to set.
func (f *ConstrainedFinder) SetNodeCapacity(node int, capacity int64, set int) error {
	arc, err := f.nodeArc(node, set)
	if err != nil {
		return err
	}

	return f.net.SetArcCapacity(arc, capacity)
}

// NodeCapacity returns the capacity of node inside set.
func (f *ConstrainedFinder) NodeCapacity(node, set int) (int64, error) {
	arc, err := f.nodeArc(node, set)
	if err != nil {
		return 0, err
	}

	return f.net.ArcCapacity(arc)
}

// SetNodeSetCapacity caps the total degree of the nodes of set, counting its
// descendant sets too.
func (f *ConstrainedFinder) SetNodeSetCapacity(set int, capacity int64) error {
	if set < 0 || set >= len(f.sets) {
		return errors.Wrapf(ErrSetNotFound, "set %d", set)
	}

	return f.net.SetArcCapacity(f.sets[set].InArc, capacity)
}

// NodeSetCapacity returns the capacity of set.
func (f *ConstrainedFinder) NodeSetCapacity(set int) (int64, error) {
	if set < 0 || set >= len(f.sets) {
		return 0, errors.Wrapf(ErrSetNotFound, "set %d", set)
	}

	return f.net.ArcCapacity(f.sets[set].InArc)
}

// SetMaxEdgeMultiplicity caps how many times edge may be matched. Edges
// start closed (0).
func (f *ConstrainedFinder) SetMaxEdgeMultiplicity(edge int, capacity int64) error {
	arc, err := f.edgeArc(edge)
	if err != nil {
		return err
	}

	return f.net.SetArcCapacity(arc, capacity)
}

// MaxEdgeMultiplicity returns the multiplicity cap of edge.
func (f *ConstrainedFinder) MaxEdgeMultiplicity(edge int) (int64, error) {
	arc, err := f.edgeArc(edge)
	if err != nil {
		return 0, err
	}

	return f.net.ArcCapacity(arc)
}

// FindMatching looks for a b-matching with exactly cardinality edges
// (counted with multiplicity) under the current capacities.
//
// It returns true iff that many edges were matched. On false the largest
// matching found is still available through the result accessors. Every
// call solves from scratch and replaces the previous results.
func (f *ConstrainedFinder) FindMatching(cardinality int) (bool, error) {
	if cardinality < 0 {
		return false, errors.Wrapf(ErrNegativeCardinality, "cardinality %d", cardinality)
	}
	if err := f.net.SetArcCapacity(f.sourceArc, 2*int64(cardinality)); err != nil {
		return false, err
	}

	f.solved = false
	f.finder = flow.NewSkewFlowFinder(f.net, f.opts)
	if err := f.finder.Process(); err != nil {
		return false, errors.Wrap(err, "find matching")
	}

	f.multiplicity = make(map[int]int64, len(f.edges))
	f.incident = make(map[int]int64, len(f.nodes))
	for v := range f.nodes {
		f.incident[v] = 0
	}
	for _, e := range f.edges {
		m, err := f.finder.ArcValue(f.edgeArcs[e.ID])
		if err != nil {
			return false, err
		}
		f.multiplicity[e.ID] = m
		f.incident[e.Beg] += m
		f.incident[e.End] += m
	}

	achieved, err := f.finder.ArcValue(f.sourceArc)
	if err != nil {
		return false, err
	}
	if f.cardinality, err = cardinalityOf(achieved); err != nil {
		return false, err
	}
	f.solved = true

	if l := f.opts.Logger; l != nil {
		l.Debug("matching solved",
			"requested", cardinality, "achieved", f.cardinality,
			"augmentations", f.finder.Augmentations())
	}

	return f.cardinality == cardinality, nil
}

// cardinalityOf converts the flow on the source arc into a matching size.
// Every matched edge charges both endpoints, so the flow must be even.
func cardinalityOf(sourceFlow int64) (int, error) {
	if sourceFlow%2 != 0 {
		return 0, errors.AssertionFailedf("odd flow %d on the source arc", sourceFlow)
	}

	return int(sourceFlow / 2), nil
}

// EdgeMultiplicity returns how many times edge was matched by the last solve.
func (f *ConstrainedFinder) EdgeMultiplicity(edge int) (int64, error) {
	if !f.solved {
		return 0, ErrNotSolved
	}
	m, ok := f.multiplicity[edge]
	if !ok {
		return 0, errors.Wrapf(ErrEdgeNotFound, "edge %d", edge)
	}

	return m, nil
}

// NodeIncidentEdgesCount returns the matched degree of node in the last solve.
func (f *ConstrainedFinder) NodeIncidentEdgesCount(node int) (int64, error) {
	if !f.solved {
		return 0, ErrNotSolved
	}
	c, ok := f.incident[node]
	if !ok {
		return 0, errors.Wrapf(ErrNodeNotFound, "node %d", node)
	}

	return c, nil
}

// Cardinality returns the number of edges, with multiplicity, matched by the
// last solve.
func (f *ConstrainedFinder) Cardinality() (int, error) {
	if !f.solved {
		return 0, ErrNotSolved
	}

	return f.cardinality, nil
}

// Matched lists the edges with positive multiplicity in ascending id order.
func (f *ConstrainedFinder) Matched() ([]EdgeMultiplicity, error) {
	if !f.solved {
		return nil, ErrNotSolved
	}
	var out []EdgeMultiplicity
	for _, e := range f.edges {
		if m := f.multiplicity[e.ID]; m > 0 {
			out = append(out, EdgeMultiplicity{Edge: e.ID, Beg: e.Beg, End: e.End, Multiplicity: m})
		}
	}

	return out, nil
}

// SetLoad returns the flow through the in-arc of set in the last solve: the
// total matched degree of its nodes and of its descendants' nodes.
func (f *ConstrainedFinder) SetLoad(set int) (int64, error) {
	if set < 0 || set >= len(f.sets) {
		return 0, errors.Wrapf(ErrSetNotFound, "set %d", set)
	}

	return f.ArcValue(f.sets[set].InArc)
}

// Network returns the underlying network. Callers must not modify it.
func (f *ConstrainedFinder) Network() *flow.SkewNetwork { return f.net }

// ArcValue returns the flow on a network arc in the last solve.
func (f *ConstrainedFinder) ArcValue(arc int) (int64, error) {
	if !f.solved {
		return 0, ErrNotSolved
	}

	return f.finder.ArcValue(arc)
}

// Labels names every network vertex: source, sink, root, set:<i>, v<id>, and
// a trailing ' for mirrors.
func (f *ConstrainedFinder) Labels() map[int]string {
	labels := make(map[int]string, 2*(2+len(f.sets)+len(f.nodes)))
	name := func(v int, s string) {
		labels[v] = s
		if sym, err := f.net.SymmetricVertex(v); err == nil {
			labels[sym] = s + "'"
		}
	}
	labels[f.net.Source()] = "source"
	labels[f.net.Sink()] = "sink"
	name(f.root, "root")
	for i, s := range f.sets {
		name(s.Node, fmt.Sprintf("set:%d", i))
	}
	for v, node := range f.nodes {
		name(node, fmt.Sprintf("v%d", v))
	}

	return labels
}
