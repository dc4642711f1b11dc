// SPDX-License-Identifier: MIT
// Package: skewmatch/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds n fresh vertices in creation order.
//   - Emits edges (i-1)-i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(n) for the id slice.

package builder

import (
	"github.com/katalvlaran/skewmatch/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}

		ids := addVertices(g, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, MethodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
