// File: types.go
// Role: Graph, Edge and Neighbor types, sentinel errors, options and the
//       NewGraph constructor.

package core

import "github.com/cockroachdb/errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-live vertex id.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-live edge id.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same vertex pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// NoID marks an absent vertex or edge id.
const NoID = -1

// Edge is an undirected edge that remembers the orientation it was added with.
type Edge struct {
	// ID is the slot index of the edge.
	ID int

	// Beg is the first endpoint passed to AddEdge.
	Beg int

	// End is the second endpoint passed to AddEdge.
	End int
}

// Other returns the endpoint of e opposite to v, or NoID if v is not an endpoint.
func (e Edge) Other(v int) int {
	switch v {
	case e.Beg:
		return e.End
	case e.End:
		return e.Beg
	default:
		return NoID
	}
}

// Neighbor is one entry of a vertex's adjacency list.
type Neighbor struct {
	// Vertex is the adjacent vertex id.
	Vertex int

	// Edge is the id of the edge connecting to Vertex.
	Edge int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithVertexCapacity preallocates room for n vertices.
func WithVertexCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertexHint = n
		}
	}
}

// WithEdgeCapacity preallocates room for n edges.
func WithEdgeCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.edgeHint = n
		}
	}
}

type vertexSlot struct {
	alive bool
	nei   []Neighbor
}

type edgeSlot struct {
	alive bool
	beg   int
	end   int
}

// Graph is an undirected simple graph addressed by dense integer ids.
//
// vertices and edges are slot arenas indexed by id; freeVertices and
// freeEdges hold released slots, reused from the tail.
type Graph struct {
	vertices     []vertexSlot
	edges        []edgeSlot
	freeVertices []int
	freeEdges    []int

	vertexCount int
	edgeCount   int

	// preallocation hints, kept so Clear can restore them
	vertexHint int
	edgeHint   int
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus the requested preallocation.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make([]vertexSlot, 0, g.vertexHint)
	g.edges = make([]edgeSlot, 0, g.edgeHint)

	return g
}

// VertexCount returns the number of live vertices.
func (g *Graph) VertexCount() int { return g.vertexCount }

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// VertexEnd returns one past the largest vertex slot ever allocated.
// Every live vertex id v satisfies 0 <= v < VertexEnd().
func (g *Graph) VertexEnd() int { return len(g.vertices) }

// EdgeEnd returns one past the largest edge slot ever allocated.
// Every live edge id e satisfies 0 <= e < EdgeEnd().
func (g *Graph) EdgeEnd() int { return len(g.edges) }
