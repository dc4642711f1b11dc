// SPDX-License-Identifier: MIT
// Package: skewmatch/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1, n2 ≥ 1 (else ErrTooFewVertices).
//   - Vertex order: left side first, then right side.
//   - Edge order: for each left i asc, for each right j asc.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.

package builder

import (
	"github.com/katalvlaran/skewmatch/core"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}

		left := addVertices(g, n1)
		right := addVertices(g, n2)
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
