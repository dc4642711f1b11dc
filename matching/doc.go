// Package matching finds capacity-constrained b-matchings of an undirected
// graph.
//
// Vertices are grouped into constraint sets. A set may have a parent set, so
// the sets form a forest. Capacities bound
//
//   - how many matched edges touch a vertex on behalf of a set (node capacity),
//   - the total matched degree of a set and its descendants (set capacity),
//   - how many times an edge may be matched (edge multiplicity).
//
// Every capacity starts at 0 and must be opened explicitly:
//
//	f, err := matching.NewConstrainedFinder(g, [][]int{{0, 1, 2}}, nil, flow.DefaultOptions())
//	_ = f.SetNodeSetCapacity(0, 2)
//	for _, v := range []int{0, 1, 2} {
//	    _ = f.SetNodeCapacity(v, 1, 0)
//	}
//	for _, e := range g.Edges() {
//	    _ = f.SetMaxEdgeMultiplicity(e.ID, 1)
//	}
//	exact, err := f.FindMatching(1)
//
// FindMatching(k) reports whether k edges were matched. When fewer are
// possible it returns false and the results hold the largest matching the
// flow search reached. Capacities may be changed and FindMatching called
// again any number of times.
//
// The problem is solved as a maximum skew-symmetric flow (package flow); a
// matched edge is one unit of flow on the edge arc and its mirror.
package matching
