package flow

// frame is one level of the explicit augmenting-path search stack.
type frame struct {
	vertex int // vertex reached by this frame
	edge   int // arc used to enter vertex, core.NoID for the source
	cursor int // next adjacency index to try
}

// Scratch holds the per-search buffers of SkewFlowFinder. A Scratch may be
// shared by finders that run one after another, which avoids reallocating
// the buffers on every Process call. It must not be used by two goroutines
// at once.
type Scratch struct {
	vertexUsed  []bool
	edgeUsedDir []int8
	stack       []frame
	pathEdges   []int
}

// NewScratch returns an empty Scratch.
func NewScratch() *Scratch { return &Scratch{} }

// reset sizes the buffers for vertexEnd vertices and arcEnd arcs and zeroes
// the marks.
func (s *Scratch) reset(vertexEnd, arcEnd int) {
	s.vertexUsed = resize(s.vertexUsed, vertexEnd)
	s.edgeUsedDir = resize(s.edgeUsedDir, arcEnd)
	clear(s.vertexUsed)
	clear(s.edgeUsedDir)
	s.stack = s.stack[:0]
	s.pathEdges = s.pathEdges[:0]
}

func resize[T any](buf []T, n int) []T {
	if cap(buf) < n {
		return make([]T, n)
	}

	return buf[:n]
}
