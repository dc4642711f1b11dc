// SPDX-License-Identifier: MIT
// Package: skewmatch/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i-(i+1) for i=0..n-2, then the closing edge (n-1)-0.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"github.com/katalvlaran/skewmatch/core"
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}

		ids := addVertices(g, n)
		for i := 0; i < n; i++ {
			if err := addEdge(g, MethodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
