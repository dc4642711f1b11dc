package flow

import (
	"github.com/cockroachdb/errors"
)

// checkConsistency verifies the flow invariants after an augmentation:
// bounds on every arc, equal values on mirrored arcs, zero divergence on
// inner vertices, and opposite divergence on source and sink.
func (f *SkewFlowFinder) checkConsistency() error {
	for _, e := range f.net.g.Edges() {
		a := f.net.arcs[e.ID]
		value := f.arcValues[e.ID]
		if value < 0 || value > a.capacity {
			return errors.AssertionFailedf("arc %d (%d->%d): value %d outside [0, %d]",
				e.ID, a.from, a.to, value, a.capacity)
		}
		if mirror := f.arcValues[a.sym]; mirror != value {
			return errors.AssertionFailedf("arc %d: value %d differs from mirror arc %d value %d",
				e.ID, value, a.sym, mirror)
		}
	}

	source, sink := f.net.Source(), f.sink
	for _, v := range f.net.g.Vertices() {
		if v == source || v == sink {
			continue
		}
		if div := f.divergence(v); div != 0 {
			return errors.AssertionFailedf("vertex %d: divergence %d, want 0", v, div)
		}
	}
	if ds, dt := f.divergence(source), f.divergence(sink); ds+dt != 0 {
		return errors.AssertionFailedf("source divergence %d does not cancel sink divergence %d", ds, dt)
	}

	return nil
}
