// SPDX-License-Identifier: MIT
// Package: skewmatch/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   - Stub matching: every vertex contributes d stubs, stubs are shuffled and
//     paired. A pairing with a loop or a repeated pair is rejected and the
//     shuffle retried, up to cfg.maxAttempts times.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n, n·d even (else ErrTooFewVertices).
//   - cfg.rng non-nil (else ErrNeedRandSource).
//   - ErrConstructFailed when all attempts are rejected.
//
// Complexity: ~O(n·d) per attempt.

package builder

import (
	"github.com/katalvlaran/skewmatch/core"
)

// RandomRegular returns a Constructor that builds a d-regular simple graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters.
		if err := validateMin(MethodRandomRegular, n, 1); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return builderErrorf(ErrTooFewVertices, MethodRandomRegular, "degree must be in [0,%d), got %d", n, d)
		}
		if (n*d)%2 != 0 {
			return builderErrorf(ErrTooFewVertices, MethodRandomRegular, "n*d must be even (n=%d, d=%d)", n, d)
		}
		if cfg.rng == nil {
			return builderErrorf(ErrNeedRandSource, MethodRandomRegular, "n=%d, d=%d", n, d)
		}

		// 2) Stubs: vertex index i repeated d times.
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		// 3) Shuffle until a simple pairing appears.
		for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}

			// 4) Commit: vertices first, then edges in stub order.
			ids := addVertices(g, n)
			for i := 0; i < len(stubs); i += 2 {
				if err := addEdge(g, MethodRandomRegular, ids[stubs[i]], ids[stubs[i+1]]); err != nil {
					return err
				}
			}

			return nil
		}

		return builderErrorf(ErrConstructFailed, MethodRandomRegular, "no simple pairing after %d attempts", cfg.maxAttempts)
	}
}

// simplePairing reports whether consecutive stub pairs contain neither a
// loop nor a repeated pair.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
