// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns ids in ascending order.
//   - AddVertex() reuses the most recently freed slot first.

package core

import "github.com/cockroachdb/errors"

// AddVertex inserts a new isolated vertex and returns its id.
//
// Implementation:
//   - Stage 1: Pop a free slot if any (last freed first).
//   - Stage 2: Otherwise append a fresh slot at VertexEnd().
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex() int {
	var v int
	if n := len(g.freeVertices); n > 0 {
		v = g.freeVertices[n-1]
		g.freeVertices = g.freeVertices[:n-1]
		g.vertices[v] = vertexSlot{alive: true, nei: g.vertices[v].nei[:0]}
	} else {
		v = len(g.vertices)
		g.vertices = append(g.vertices, vertexSlot{alive: true})
	}
	g.vertexCount++

	return v
}

// HasVertex reports whether v is a live vertex id.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < len(g.vertices) && g.vertices[v].alive
}

// RemoveVertex deletes v together with all incident edges.
//
// Incident edges are removed in adjacency order before the slot is released.
//
// Errors:
//   - ErrVertexNotFound: v is not live.
//
// Complexity: O(deg(v) · (deg(v) + max neighbor degree)).
func (g *Graph) RemoveVertex(v int) error {
	if !g.HasVertex(v) {
		return errors.Wrapf(ErrVertexNotFound, "remove vertex %d", v)
	}

	// Snapshot edge ids: removeEdge mutates the neighbor slice we would iterate.
	incident := make([]int, len(g.vertices[v].nei))
	for i, nb := range g.vertices[v].nei {
		incident[i] = nb.Edge
	}
	for _, e := range incident {
		g.removeEdge(e)
	}

	g.vertices[v].alive = false
	g.vertices[v].nei = g.vertices[v].nei[:0]
	g.freeVertices = append(g.freeVertices, v)
	g.vertexCount--

	return nil
}

// Vertices returns all live vertex ids in ascending order.
// Complexity: O(VertexEnd()).
func (g *Graph) Vertices() []int {
	out := make([]int, 0, g.vertexCount)
	for v := range g.vertices {
		if g.vertices[v].alive {
			out = append(out, v)
		}
	}

	return out
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, errors.Wrapf(ErrVertexNotFound, "degree of %d", v)
	}

	return len(g.vertices[v].nei), nil
}
