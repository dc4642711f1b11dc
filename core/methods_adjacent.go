// File: methods_adjacent.go
// Role: Neighborhood API.
// Determinism:
//   - Neighbors(v) lists incident edges in insertion order.

package core

import "github.com/cockroachdb/errors"

// Neighbors returns the adjacency list of v in native order.
//
// The returned slice is the graph's live storage: callers must treat it as
// read-only and must not hold it across a mutation of v's incident edges.
// Hot loops (augmenting-path search) rely on this to iterate without
// allocating.
//
// Errors:
//   - ErrVertexNotFound: v is not live.
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int) ([]Neighbor, error) {
	if !g.HasVertex(v) {
		return nil, errors.Wrapf(ErrVertexNotFound, "neighbors of %d", v)
	}

	return g.vertices[v].nei, nil
}

// NeighborIDs returns the vertex ids adjacent to v, in adjacency order.
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	nei, err := g.Neighbors(v)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(nei))
	for i, nb := range nei {
		out[i] = nb.Vertex
	}

	return out, nil
}
