// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves ids, free lists and adjacency order, so future
//     AddVertex/AddEdge calls on the clone return the same ids as on the source.

package core

// Clone returns a deep copy of the Graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		vertices:     make([]vertexSlot, len(g.vertices), cap(g.vertices)),
		edges:        make([]edgeSlot, len(g.edges), cap(g.edges)),
		freeVertices: append([]int(nil), g.freeVertices...),
		freeEdges:    append([]int(nil), g.freeEdges...),
		vertexCount:  g.vertexCount,
		edgeCount:    g.edgeCount,
		vertexHint:   g.vertexHint,
		edgeHint:     g.edgeHint,
	}
	copy(clone.edges, g.edges)
	for v, s := range g.vertices {
		clone.vertices[v] = vertexSlot{alive: s.alive, nei: append([]Neighbor(nil), s.nei...)}
	}

	return clone
}

// Clear removes all vertices and edges. Ids restart at 0.
func (g *Graph) Clear() {
	g.vertices = make([]vertexSlot, 0, g.vertexHint)
	g.edges = make([]edgeSlot, 0, g.edgeHint)
	g.freeVertices = nil
	g.freeEdges = nil
	g.vertexCount = 0
	g.edgeCount = 0
}
