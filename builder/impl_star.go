// SPDX-License-Identifier: MIT
// Package: skewmatch/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The first added vertex is the center; spokes center-leaf_i follow leaf order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"github.com/katalvlaran/skewmatch/core"
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}

		ids := addVertices(g, n)
		for _, leaf := range ids[1:] {
			if err := addEdge(g, MethodStar, ids[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
