package flow

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/skewmatch/core"
)

// SkewFlowFinder computes a maximum integer skew-symmetric flow from the
// network source to its mirror sink.
//
// The search is a plain depth-first augmenting-path search: neighbors are
// tried in adjacency order and the first path that reaches the sink is used.
// Its worst case is exponential in the network size.
//
// A finder borrows its network; the network must not change while Process runs.
type SkewFlowFinder struct {
	net       *SkewNetwork
	opts      FlowOptions
	scratch   *Scratch
	arcValues []int64
	sink      int
	augments  int
}

// NewSkewFlowFinder binds a finder to net. No work is done until Process.
func NewSkewFlowFinder(net *SkewNetwork, opts FlowOptions) *SkewFlowFinder {
	s := opts.Scratch
	if s == nil {
		s = NewScratch()
	}

	return &SkewFlowFinder{net: net, opts: opts, scratch: s, sink: core.NoID}
}

// Process runs augmentations until no augmenting path remains. Every call
// starts again from the zero flow.
//
// Errors:
//   - ErrSourceNotSet if the network has no source.
//   - an assertion failure (see IsInvariantViolation) if an augmentation
//     breaks the network invariants.
func (f *SkewFlowFinder) Process() error {
	source := f.net.Source()
	if source == core.NoID {
		return ErrSourceNotSet
	}
	f.sink = f.net.Sink()
	f.augments = 0
	f.arcValues = resize(f.arcValues, f.net.ArcEnd())
	clear(f.arcValues)

	for f.findAugmentingPath(source) {
		delta, err := f.increaseFlowByPath()
		if err != nil {
			return err
		}
		f.augments++
		if f.opts.Logger != nil {
			f.opts.Logger.Debug("augmented", "path", len(f.scratch.pathEdges), "delta", delta, "total", f.augments)
		}
		if f.opts.CheckConsistency {
			if err := f.checkConsistency(); err != nil {
				return err
			}
		}
	}
	if f.opts.Logger != nil {
		f.opts.Logger.Debug("flow done", "augmentations", f.augments, "value", f.SourceFlow())
	}

	return nil
}

// ArcValue returns the flow on arc after the last Process call.
func (f *SkewFlowFinder) ArcValue(arc int) (int64, error) {
	if !f.net.g.HasEdgeID(arc) {
		return 0, errors.Wrapf(ErrArcNotFound, "value of arc %d", arc)
	}
	if arc >= len(f.arcValues) {
		return 0, nil
	}

	return f.arcValues[arc], nil
}

// Augmentations returns the number of augmenting paths applied by the last run.
func (f *SkewFlowFinder) Augmentations() int { return f.augments }

// SourceFlow returns the net flow leaving the source after the last run.
func (f *SkewFlowFinder) SourceFlow() int64 {
	source := f.net.Source()
	if source == core.NoID || len(f.arcValues) == 0 {
		return 0
	}

	return f.divergence(source)
}

// divergence returns outflow minus inflow at v.
func (f *SkewFlowFinder) divergence(v int) int64 {
	var div int64
	nei, _ := f.net.g.Neighbors(v)
	for _, nb := range nei {
		if f.net.arcs[nb.Edge].from == v {
			div += f.arcValues[nb.Edge]
		} else {
			div -= f.arcValues[nb.Edge]
		}
	}

	return div
}

// direction is +1 when arc leaves from and -1 when it enters from.
func (f *SkewFlowFinder) direction(arc, from int) int8 {
	if f.net.arcs[arc].from == from {
		return 1
	}

	return -1
}

// delta is how much the arc can change when crossed starting at from:
// the free capacity forwards, the current flow backwards.
func (f *SkewFlowFinder) delta(arc, from int) int64 {
	capacity := f.net.arcs[arc].capacity
	var residual int64
	if f.direction(arc, from) > 0 {
		residual = f.arcValues[arc]
	} else {
		residual = capacity - f.arcValues[arc]
	}

	return capacity - residual
}

// isAugmenting reports whether the search may cross arc from vertex from,
// given the use already committed on its mirror in the current path.
// A mirror committed in the same direction consumes capacity twice, so
// at least 2 units must be free.
func (f *SkewFlowFinder) isAugmenting(arc, from int) bool {
	dir := f.direction(arc, from)
	symUsed := f.scratch.edgeUsedDir[f.net.arcs[arc].sym]
	if dir*symUsed == -1 {
		return false
	}
	delta := f.delta(arc, from)
	if symUsed != 0 {
		return delta > 1
	}

	return delta > 0
}

// findAugmentingPath runs the depth-first search from source. On success the
// arcs of the path are left in scratch.pathEdges and their directions in
// scratch.edgeUsedDir.
func (f *SkewFlowFinder) findAugmentingPath(source int) bool {
	s := f.scratch
	s.reset(f.net.VertexEnd(), f.net.ArcEnd())
	s.vertexUsed[source] = true
	s.stack = append(s.stack, frame{vertex: source, edge: core.NoID})

	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]
		if top.vertex == f.sink {
			for _, fr := range s.stack[1:] {
				s.pathEdges = append(s.pathEdges, fr.edge)
			}
			return true
		}

		nei, _ := f.net.g.Neighbors(top.vertex)
		pushed := false
		for top.cursor < len(nei) {
			nb := nei[top.cursor]
			top.cursor++
			if s.vertexUsed[nb.Vertex] || !f.isAugmenting(nb.Edge, top.vertex) {
				continue
			}
			s.edgeUsedDir[nb.Edge] = f.direction(nb.Edge, top.vertex)
			s.vertexUsed[nb.Vertex] = true
			s.stack = append(s.stack, frame{vertex: nb.Vertex, edge: nb.Edge})
			pushed = true
			break
		}
		if pushed {
			continue
		}

		// dead end: release the vertex and the arc that led here
		s.vertexUsed[top.vertex] = false
		if top.edge != core.NoID {
			s.edgeUsedDir[top.edge] = 0
		}
		s.stack = s.stack[:len(s.stack)-1]
	}

	return false
}

// increaseFlowByPath pushes the largest admissible amount along the path
// found by findAugmentingPath and returns it.
func (f *SkewFlowFinder) increaseFlowByPath() (int64, error) {
	s := f.scratch
	var delta int64
	from := f.net.Source()
	for _, arc := range s.pathEdges {
		dir := s.edgeUsedDir[arc]
		symDir := s.edgeUsedDir[f.net.arcs[arc].sym]
		cur := f.delta(arc, from)
		from = otherEnd(f.net, arc, from)

		switch {
		case symDir == 0:
		case symDir == dir:
			// both mirrored legs move by the same amount
			cur /= 2
		default:
			continue
		}
		if cur > 0 && (delta == 0 || cur < delta) {
			delta = cur
		}
	}
	if delta <= 0 {
		return 0, errors.AssertionFailedf("algorithm error: delta should be positive")
	}

	for _, arc := range s.pathEdges {
		step := int64(s.edgeUsedDir[arc]) * delta
		f.arcValues[arc] += step
		f.arcValues[f.net.arcs[arc].sym] += step
	}

	return delta, nil
}
