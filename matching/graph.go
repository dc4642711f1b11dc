package matching

import "github.com/katalvlaran/skewmatch/core"

// Graph is the read-only view of the matched graph that ConstrainedFinder
// needs. *core.Graph satisfies it.
//
// Vertices and Edges are read once, at construction. Edge endpoints must be
// listed by Vertices; Edges must not contain loops or two edges joining the
// same pair.
//
//go:generate mockgen -source graph.go -destination graph_mock.go -package matching
type Graph interface {
	Vertices() []int
	Edges() []core.Edge
}

var _ Graph = (*core.Graph)(nil)
