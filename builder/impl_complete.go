// SPDX-License-Identifier: MIT
// Package: skewmatch/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every pair i<j in lexicographic order.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"github.com/katalvlaran/skewmatch/core"
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}

		return addCompleteEdges(g, MethodComplete, addVertices(g, n))
	}
}
