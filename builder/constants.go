// SPDX-License-Identifier: MIT
// Package: skewmatch/builder
//
// constants.go - method tags and parameter minima shared by constructors.

package builder

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomRegular is the canonical name for the RandomRegular constructor.
	MethodRandomRegular = "RandomRegular"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
)

// MinCycleNodes is the smallest simple cycle.
const MinCycleNodes = 3

// MinPathNodes is the smallest path with an edge.
const MinPathNodes = 2

// MinStarNodes is a center plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is a triangle rim plus the hub.
const MinWheelNodes = 4

// MinCompleteNodes allows the single-vertex K_1.
const MinCompleteNodes = 1

// MinGridDim is the smallest grid side.
const MinGridDim = 1

// MinPartition is the smallest side of a bipartite graph.
const MinPartition = 1

const (
	// MinProbability and MaxProbability bound RandomSparse(p).
	MinProbability = 0.0
	MaxProbability = 1.0
)

const defaultMaxAttempts = 64
