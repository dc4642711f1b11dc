// SPDX-License-Identifier: MIT
// Package: skewmatch/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Vertex order: rim 0..n-2, then the hub.
//   - Edge order: rim cycle edges first, then spokes hub-rim_i.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import (
	"github.com/katalvlaran/skewmatch/core"
)

// Wheel returns a Constructor that builds W_n: a cycle of n-1 vertices plus
// a hub joined to all of them.
func Wheel(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}

		rim := n - 1
		ids := addVertices(g, n)
		for i := 0; i < rim; i++ {
			if err := addEdge(g, MethodWheel, ids[i], ids[(i+1)%rim]); err != nil {
				return err
			}
		}
		hub := ids[rim]
		for i := 0; i < rim; i++ {
			if err := addEdge(g, MethodWheel, hub, ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
