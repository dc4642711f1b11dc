// Package core provides an index-addressed, undirected in-memory Graph with a
// minimal API surface tuned for flow and matching algorithms.
//
// The Graph G = (V,E) is stored as two slot arenas:
//
//   - Vertices and edges are identified by dense non-negative integers
//     (slot indices), stable for the lifetime of the element.
//   - Removed slots go onto a free list and are reused last-freed-first,
//     so ids stay compact under churn.
//   - Each vertex keeps its incident edges as an ordered neighbor list.
//     New edges are appended; removals keep the relative order of the rest.
//     This order is the graph's "native adjacency order" and algorithms
//     that depend on first-found results (flow.SkewFlowFinder) follow it.
//   - Simple graph policy: no self-loops, at most one edge per vertex pair
//     regardless of orientation.
//   - Each edge remembers its orientation as added (Beg -> End), so an
//     undirected Graph can back a directed network whose arcs never come in
//     opposite pairs.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex() int                       // O(1) amortized
//	RemoveVertex(v int) error             // O(deg(v)^2)
//	HasVertex(v int) bool                 // O(1)
//
//	// Edge lifecycle
//	AddEdge(beg, end int) (int, error)    // O(min deg) duplicate check
//	RemoveEdge(e int) error               // O(deg(beg)+deg(end))
//	HasEdgeID(e int) bool                 // O(1)
//
//	// Query
//	GetEdge(e int) (Edge, error)          // O(1)
//	FindEdge(a, b int) (int, bool)        // O(min(deg a, deg b))
//	HasEdge(a, b int) bool                // O(min(deg a, deg b))
//	Neighbors(v int) ([]Neighbor, error)  // O(1), live read-only slice
//	Degree(v int) (int, error)            // O(1)
//	Vertices() []int                      // O(VertexEnd), ascending
//	Edges() []Edge                        // O(EdgeEnd), ascending
//	VertexEnd() / EdgeEnd() int           // dense scratch sizing bound
//
//	// Maintenance
//	Clone() *Graph                        // O(V+E) deep copy, ids preserved
//	Clear()                               // drop everything, keep options
//
// Concurrency:
//
// A Graph is not safe for concurrent mutation. It is meant to be owned by a
// single algorithm instance (see flow.SkewNetwork); share read-only clones
// between goroutines instead.
//
// Errors:
//
//	ErrVertexNotFound      – vertex id not live
//	ErrEdgeNotFound        – edge id not live
//	ErrLoopNotAllowed      – AddEdge(v, v)
//	ErrMultiEdgeNotAllowed – second edge between the same vertex pair
package core
