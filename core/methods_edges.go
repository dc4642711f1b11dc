// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/GetEdge/FindEdge/Edges.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - AddEdge appends to both endpoint neighbor lists (beg first, then end).

package core

import "github.com/cockroachdb/errors"

// AddEdge connects beg and end and returns the new edge id.
//
// Steps:
//  1. Validate both endpoints are live (ErrVertexNotFound).
//  2. Reject beg == end (ErrLoopNotAllowed).
//  3. Reject an existing edge between the pair in either orientation
//     (ErrMultiEdgeNotAllowed).
//  4. Take a free slot or append one; store {beg, end}.
//  5. Append Neighbor{end, e} to beg and Neighbor{beg, e} to end.
//
// Complexity: O(min(deg beg, deg end)) for the duplicate check.
func (g *Graph) AddEdge(beg, end int) (int, error) {
	// 1) Input validation
	if !g.HasVertex(beg) {
		return NoID, errors.Wrapf(ErrVertexNotFound, "add edge %d-%d: vertex %d", beg, end, beg)
	}
	if !g.HasVertex(end) {
		return NoID, errors.Wrapf(ErrVertexNotFound, "add edge %d-%d: vertex %d", beg, end, end)
	}
	// 2) Loops
	if beg == end {
		return NoID, errors.Wrapf(ErrLoopNotAllowed, "add edge on vertex %d", beg)
	}
	// 3) Parallel edges
	if _, ok := g.FindEdge(beg, end); ok {
		return NoID, errors.Wrapf(ErrMultiEdgeNotAllowed, "already have edge between vertices %d and %d", beg, end)
	}

	// 4) Allocate slot
	var e int
	if n := len(g.freeEdges); n > 0 {
		e = g.freeEdges[n-1]
		g.freeEdges = g.freeEdges[:n-1]
		g.edges[e] = edgeSlot{alive: true, beg: beg, end: end}
	} else {
		e = len(g.edges)
		g.edges = append(g.edges, edgeSlot{alive: true, beg: beg, end: end})
	}

	// 5) Link adjacency
	g.vertices[beg].nei = append(g.vertices[beg].nei, Neighbor{Vertex: end, Edge: e})
	g.vertices[end].nei = append(g.vertices[end].nei, Neighbor{Vertex: beg, Edge: e})
	g.edgeCount++

	return e, nil
}

// RemoveEdge deletes edge e and unlinks it from both endpoints.
//
// Errors:
//   - ErrEdgeNotFound: e is not live.
func (g *Graph) RemoveEdge(e int) error {
	if !g.HasEdgeID(e) {
		return errors.Wrapf(ErrEdgeNotFound, "remove edge %d", e)
	}
	g.removeEdge(e)

	return nil
}

// removeEdge assumes e is live.
func (g *Graph) removeEdge(e int) {
	s := g.edges[e]
	g.unlink(s.beg, e)
	g.unlink(s.end, e)
	g.edges[e] = edgeSlot{}
	g.freeEdges = append(g.freeEdges, e)
	g.edgeCount--
}

// unlink drops edge e from v's neighbor list, keeping the order of the rest.
func (g *Graph) unlink(v, e int) {
	nei := g.vertices[v].nei
	for i := range nei {
		if nei[i].Edge == e {
			copy(nei[i:], nei[i+1:])
			g.vertices[v].nei = nei[:len(nei)-1]
			return
		}
	}
}

// HasEdgeID reports whether e is a live edge id.
func (g *Graph) HasEdgeID(e int) bool {
	return e >= 0 && e < len(g.edges) && g.edges[e].alive
}

// GetEdge returns the edge with id e.
//
// Errors:
//   - ErrEdgeNotFound: e is not live.
//
// Complexity: O(1).
func (g *Graph) GetEdge(e int) (Edge, error) {
	if !g.HasEdgeID(e) {
		return Edge{ID: NoID, Beg: NoID, End: NoID}, errors.Wrapf(ErrEdgeNotFound, "get edge %d", e)
	}
	s := g.edges[e]

	return Edge{ID: e, Beg: s.beg, End: s.end}, nil
}

// FindEdge returns the id of the edge between a and b in either orientation.
// The boolean is false when no such edge exists or either vertex is not live.
//
// Complexity: O(min(deg a, deg b)).
func (g *Graph) FindEdge(a, b int) (int, bool) {
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return NoID, false
	}
	// scan the shorter list
	from, to := a, b
	if len(g.vertices[b].nei) < len(g.vertices[a].nei) {
		from, to = b, a
	}
	for _, nb := range g.vertices[from].nei {
		if nb.Vertex == to {
			return nb.Edge, true
		}
	}

	return NoID, false
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b int) bool {
	_, ok := g.FindEdge(a, b)
	return ok
}

// Edges returns all live edges sorted by ID ascending.
// Complexity: O(EdgeEnd()).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for e, s := range g.edges {
		if s.alive {
			out = append(out, Edge{ID: e, Beg: s.beg, End: s.end})
		}
	}

	return out
}
