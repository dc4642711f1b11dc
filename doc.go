// Package skewmatch finds maximum b-matchings of undirected graphs under
// hierarchical node-set capacity constraints.
//
// The problem is reduced to flow in a skew-symmetric network: every vertex
// has a mirror, every arc u->v has a mirror sym(v)->sym(u) carrying the
// same flow, and the sink is the mirror of the source. A matched edge is one
// unit through an edge arc together with its mirror.
//
// Packages:
//
//	core/        mutable undirected graph with stable integer ids
//	flow/        SkewNetwork, SkewFlowFinder and an Edmonds-Karp bound
//	matching/    ConstrainedFinder: sets, capacities and FindMatching
//	builder/     deterministic graph topologies for tests and benchmarks
//	converters/  gonum interop and connected components
//	problem/     TOML problem files and ready-to-solve instances
//	render/      DOT and SVG drawings of networks and matchings
//	cmd/skewmatch  command-line front end (solve, generate, dot)
//
// Quick start:
//
//	g := core.NewGraph()
//	a, b := g.AddVertex(), g.AddVertex()
//	e, _ := g.AddEdge(a, b)
//
//	f, _ := matching.NewConstrainedFinder(g, [][]int{{a, b}}, nil, flow.DefaultOptions())
//	_ = f.SetNodeSetCapacity(0, 2)
//	_ = f.SetNodeCapacity(a, 1, 0)
//	_ = f.SetNodeCapacity(b, 1, 0)
//	_ = f.SetMaxEdgeMultiplicity(e, 1)
//
//	ok, _ := f.FindMatching(1) // true
package skewmatch
