// Package flow implements skew-symmetric networks and a maximum
// skew-symmetric flow finder over them.
//
// # Skew-symmetric networks
//
// A SkewNetwork is a directed network with an involution sym on its
// vertices: sym(sym(v)) == v and sym(v) != v. Every arc u->v has a mirror
// arc sym(v)->sym(u) with the same capacity. Vertices and arcs are created
// and removed in mirrored pairs:
//
//	net := flow.NewSkewNetwork()
//	s, t := net.AddVertex()        // t == sym(s) is the sink
//	a, aSym := net.AddVertex()
//	arc, err := net.AddArc(s, a, 2) // also adds aSym->t
//	_ = net.SetSource(s)
//
// Two vertices carry at most one arc, in one orientation. AddArc reports
//
//	ErrVertexNotFound      - an endpoint is not in the network.
//	ErrNegativeCapacity    - capacity < 0 (as *CapacityError).
//	ErrBothDirections      - the two vertices are already joined.
//	ErrSelfSymmetricArc    - to == sym(from): the arc would mirror itself.
//	ErrInconsistentNetwork - the mirror exists although the arc does not.
//
// # Flow finder
//
// SkewFlowFinder.Process pushes integer flow from the source to sym(source)
// along augmenting paths found by depth-first search, keeping the flow on an
// arc equal to the flow on its mirror. The search visits neighbors in the
// adjacency order of the underlying core.Graph and takes the first path that
// reaches the sink, so results are deterministic for a given construction
// order. The search is naive: its worst case is exponential.
//
// The search is iterative (explicit stack), so deep networks do not grow the
// goroutine stack. Scratch buffers may be passed in FlowOptions.Scratch to be
// reused across runs.
//
// # Invariants
//
// With FlowOptions.CheckConsistency the finder verifies after every
// augmentation that
//
//	0 <= value(e) <= capacity(e)         for every arc
//	value(e) == value(sym(e))            for every arc
//	divergence(v) == 0                   for v not in {source, sink}
//	divergence(source) + divergence(sink) == 0
//
// A violation is an internal error reported as a cockroachdb assertion
// failure; IsInvariantViolation distinguishes it from usage errors.
//
// EdmondsKarp computes the ordinary maximum flow of the same network with the
// mirror pairing ignored. It bounds the skew-symmetric value from above.
package flow
