package flow

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/skewmatch/core"
)

// arcSlot stores per-arc state, indexed by the underlying core edge id.
type arcSlot struct {
	from     int
	to       int
	capacity int64
	sym      int
}

// SkewNetwork is a skew-symmetric network: a directed graph with an
// involutive vertex pairing sym (sym(sym(v)) == v, sym(v) != v) and an arc
// pairing that maps u->v onto sym(v)->sym(u) with equal capacity.
//
// Arcs live on an undirected core.Graph whose edges keep their orientation.
// Vertices and arcs are only ever created and removed together with their
// mirror, so the pairing holds at all times. The designated source s has the
// implicit sink sym(s).
type SkewNetwork struct {
	g        *core.Graph
	symmetry []int     // vertex id -> mirror vertex id (core.NoID for free slots)
	arcs     []arcSlot // edge id -> arc data
	source   int
}

// NewSkewNetwork returns an empty network without a source.
func NewSkewNetwork() *SkewNetwork {
	return &SkewNetwork{g: core.NewGraph(), source: core.NoID}
}

// Graph exposes the underlying graph for read-only traversal.
func (n *SkewNetwork) Graph() *core.Graph { return n.g }

// AddVertex adds a vertex and its mirror and returns both ids.
func (n *SkewNetwork) AddVertex() (v, sym int) {
	v = n.g.AddVertex()
	sym = n.g.AddVertex()
	n.growVertices()
	n.symmetry[v] = sym
	n.symmetry[sym] = v

	return v, sym
}

func (n *SkewNetwork) growVertices() {
	for len(n.symmetry) < n.g.VertexEnd() {
		n.symmetry = append(n.symmetry, core.NoID)
	}
}

func (n *SkewNetwork) growArcs() {
	for len(n.arcs) < n.g.EdgeEnd() {
		n.arcs = append(n.arcs, arcSlot{from: core.NoID, to: core.NoID, sym: core.NoID})
	}
}

// AddArc adds from->to and its mirror sym(to)->sym(from), both with capacity,
// and returns the id of from->to.
//
// Steps:
//  1. Both endpoints must be live (ErrVertexNotFound).
//  2. capacity >= 0 (*CapacityError).
//  3. No edge may join from and to yet (ErrBothDirections).
//  4. to != sym(from), otherwise the arc is its own mirror (ErrSelfSymmetricArc).
//  5. No edge may join sym(to) and sym(from) yet (ErrInconsistentNetwork).
//  6. Insert both edges, link them as mirrors.
func (n *SkewNetwork) AddArc(from, to int, capacity int64) (int, error) {
	// 1) endpoints
	if !n.g.HasVertex(from) {
		return core.NoID, errors.Wrapf(ErrVertexNotFound, "add arc %d->%d: vertex %d", from, to, from)
	}
	if !n.g.HasVertex(to) {
		return core.NoID, errors.Wrapf(ErrVertexNotFound, "add arc %d->%d: vertex %d", from, to, to)
	}
	// 2) capacity
	if capacity < 0 {
		return core.NoID, &CapacityError{Arc: core.NoID, Capacity: capacity}
	}
	// 3) one arc per vertex pair
	if n.g.HasEdge(from, to) {
		return core.NoID, errors.Wrapf(ErrBothDirections, "add arc %d->%d", from, to)
	}
	symFrom, symTo := n.symmetry[to], n.symmetry[from]
	// 4) self-mirrored arc
	if symFrom == from && symTo == to {
		return core.NoID, errors.Wrapf(ErrSelfSymmetricArc, "add arc %d->%d", from, to)
	}
	// 5) mirror must not exist on its own
	if n.g.HasEdge(symFrom, symTo) {
		return core.NoID, errors.Wrapf(ErrInconsistentNetwork, "add arc %d->%d: mirror %d->%d exists", from, to, symFrom, symTo)
	}

	// 6) insert the pair
	e, err := n.g.AddEdge(from, to)
	if err != nil {
		return core.NoID, errors.Wrapf(err, "add arc %d->%d", from, to)
	}
	eSym, err := n.g.AddEdge(symFrom, symTo)
	if err != nil {
		_ = n.g.RemoveEdge(e)
		return core.NoID, errors.Wrapf(err, "add mirror arc %d->%d", symFrom, symTo)
	}
	n.growArcs()
	n.arcs[e] = arcSlot{from: from, to: to, capacity: capacity, sym: eSym}
	n.arcs[eSym] = arcSlot{from: symFrom, to: symTo, capacity: capacity, sym: e}

	return e, nil
}

// FindArc returns the id of the arc from->to.
func (n *SkewNetwork) FindArc(from, to int) (int, error) {
	e, ok := n.g.FindEdge(from, to)
	if !ok || n.arcs[e].from != from {
		return core.NoID, errors.Wrapf(ErrArcNotFound, "arc %d->%d", from, to)
	}

	return e, nil
}

// RemoveArc removes from->to together with its mirror.
func (n *SkewNetwork) RemoveArc(from, to int) error {
	e, err := n.FindArc(from, to)
	if err != nil {
		return err
	}
	n.removeArc(e)

	return nil
}

func (n *SkewNetwork) removeArc(e int) {
	eSym := n.arcs[e].sym
	_ = n.g.RemoveEdge(e)
	_ = n.g.RemoveEdge(eSym)
	n.arcs[e] = arcSlot{from: core.NoID, to: core.NoID, sym: core.NoID}
	n.arcs[eSym] = arcSlot{from: core.NoID, to: core.NoID, sym: core.NoID}
}

// RemoveVertex removes v, sym(v) and every arc touching either of them.
// Removing the source (or the sink) leaves the network without a source.
func (n *SkewNetwork) RemoveVertex(v int) error {
	if !n.g.HasVertex(v) {
		return errors.Wrapf(ErrVertexNotFound, "remove vertex %d", v)
	}
	vSym := n.symmetry[v]
	for _, x := range [2]int{v, vSym} {
		for {
			nei, _ := n.g.Neighbors(x)
			if len(nei) == 0 {
				break
			}
			n.removeArc(nei[0].Edge)
		}
	}
	if n.source == v || n.source == vSym {
		n.source = core.NoID
	}
	_ = n.g.RemoveVertex(v)
	_ = n.g.RemoveVertex(vSym)
	n.symmetry[v] = core.NoID
	n.symmetry[vSym] = core.NoID

	return nil
}

// SetSource designates the source vertex; the sink becomes sym(v).
func (n *SkewNetwork) SetSource(v int) error {
	if !n.g.HasVertex(v) {
		return errors.Wrapf(ErrVertexNotFound, "set source %d", v)
	}
	n.source = v

	return nil
}

// Source returns the source vertex or core.NoID.
func (n *SkewNetwork) Source() int { return n.source }

// Sink returns sym(Source()) or core.NoID.
func (n *SkewNetwork) Sink() int {
	if n.source == core.NoID {
		return core.NoID
	}

	return n.symmetry[n.source]
}

// SetArcCapacity writes capacity to arc and to its mirror. A negative
// capacity is rejected and leaves both capacities unchanged.
func (n *SkewNetwork) SetArcCapacity(arc int, capacity int64) error {
	if !n.g.HasEdgeID(arc) {
		return errors.Wrapf(ErrArcNotFound, "set capacity of arc %d", arc)
	}
	if capacity < 0 {
		return &CapacityError{Arc: arc, Capacity: capacity}
	}
	n.arcs[arc].capacity = capacity
	n.arcs[n.arcs[arc].sym].capacity = capacity

	return nil
}

// ArcCapacity returns the capacity of arc.
func (n *SkewNetwork) ArcCapacity(arc int) (int64, error) {
	if !n.g.HasEdgeID(arc) {
		return 0, errors.Wrapf(ErrArcNotFound, "capacity of arc %d", arc)
	}

	return n.arcs[arc].capacity, nil
}

// Arc returns the endpoints and capacity of arc.
func (n *SkewNetwork) Arc(arc int) (Arc, error) {
	if !n.g.HasEdgeID(arc) {
		return Arc{ID: core.NoID, From: core.NoID, To: core.NoID}, errors.Wrapf(ErrArcNotFound, "arc %d", arc)
	}
	s := n.arcs[arc]

	return Arc{ID: arc, From: s.from, To: s.to, Capacity: s.capacity}, nil
}

// ArcType reports whether arc leaves (ArcOut) or enters (ArcIn) vertex.
func (n *SkewNetwork) ArcType(arc, vertex int) (ArcType, error) {
	if !n.g.HasEdgeID(arc) {
		return ArcIn, errors.Wrapf(ErrArcNotFound, "type of arc %d", arc)
	}
	switch vertex {
	case n.arcs[arc].from:
		return ArcOut, nil
	case n.arcs[arc].to:
		return ArcIn, nil
	default:
		return ArcIn, errors.Wrapf(ErrVertexNotIncident, "arc %d, vertex %d", arc, vertex)
	}
}

// SymmetricVertex returns sym(v).
func (n *SkewNetwork) SymmetricVertex(v int) (int, error) {
	if !n.g.HasVertex(v) {
		return core.NoID, errors.Wrapf(ErrVertexNotFound, "symmetric of vertex %d", v)
	}

	return n.symmetry[v], nil
}

// SymmetricArc returns the mirror of arc: the arc sym(to)->sym(from).
func (n *SkewNetwork) SymmetricArc(arc int) (int, error) {
	if !n.g.HasEdgeID(arc) {
		return core.NoID, errors.Wrapf(ErrArcNotFound, "symmetric of arc %d", arc)
	}

	return n.arcs[arc].sym, nil
}

// Vertices returns live vertex ids in ascending order.
func (n *SkewNetwork) Vertices() []int { return n.g.Vertices() }

// Arcs returns all live arcs in ascending id order.
func (n *SkewNetwork) Arcs() []Arc {
	edges := n.g.Edges()
	out := make([]Arc, len(edges))
	for i, e := range edges {
		s := n.arcs[e.ID]
		out[i] = Arc{ID: e.ID, From: s.from, To: s.to, Capacity: s.capacity}
	}

	return out
}

// VertexEnd and ArcEnd bound live ids, for sizing dense per-vertex and per-arc state.
func (n *SkewNetwork) VertexEnd() int { return n.g.VertexEnd() }

// ArcEnd returns one past the largest arc id ever allocated.
func (n *SkewNetwork) ArcEnd() int { return n.g.EdgeEnd() }
