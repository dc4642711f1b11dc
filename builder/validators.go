// SPDX-License-Identifier: MIT
// Package: skewmatch/builder
//
// validators.go - parameter checks shared by constructors.

package builder

// validateMin ensures got ≥ min.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(ErrTooFewVertices, method, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validatePartition ensures both bipartition sides are non-empty.
func validatePartition(method string, n1, n2 int) error {
	if n1 < MinPartition || n2 < MinPartition {
		return builderErrorf(ErrTooFewVertices, method, "partition sizes must be ≥ %d, got %d and %d", MinPartition, n1, n2)
	}

	return nil
}

// validateProbability ensures p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(ErrInvalidProbability, method, "probability must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}
