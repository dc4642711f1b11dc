package flow

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// Sentinel errors for network construction and queries.
var (
	// ErrNegativeCapacity is matched by every *CapacityError.
	ErrNegativeCapacity = errors.New("flow: capacity must be non-negative")

	// ErrBothDirections is returned when an arc would join two vertices that
	// are already connected, in either orientation.
	ErrBothDirections = errors.New("flow: both directions arcs are not supported")

	// ErrInconsistentNetwork is returned when the mirror of a new arc already
	// exists although the arc itself does not.
	ErrInconsistentNetwork = errors.New("flow: inconsistent skew-symmetric network state")

	// ErrSelfSymmetricArc is returned for an arc v -> sym(v), whose mirror is itself.
	ErrSelfSymmetricArc = errors.New("flow: self-symmetric arcs are not supported")

	// ErrVertexNotFound indicates a non-live network vertex.
	ErrVertexNotFound = errors.New("flow: vertex not found")

	// ErrArcNotFound indicates a non-live arc or a missing from->to arc.
	ErrArcNotFound = errors.New("flow: arc not found")

	// ErrVertexNotIncident is returned by ArcType when the vertex is not an endpoint.
	ErrVertexNotIncident = errors.New("flow: vertex is not an endpoint of the arc")

	// ErrSourceNotSet is returned by Process on a network without a source.
	ErrSourceNotSet = errors.New("flow: source vertex is not set")
)

// CapacityError is returned when a negative capacity is assigned to an arc.
// Arc is core.NoID when the arc did not exist yet (AddArc).
type CapacityError struct {
	Arc      int
	Capacity int64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("flow: negative capacity %d on arc %d", e.Capacity, e.Arc)
}

// Is makes errors.Is(err, ErrNegativeCapacity) hold for every CapacityError.
func (e *CapacityError) Is(target error) bool { return target == ErrNegativeCapacity }

// ArcType classifies an arc relative to one of its endpoints.
type ArcType int

const (
	// ArcIn means the arc enters the vertex.
	ArcIn ArcType = iota
	// ArcOut means the arc leaves the vertex.
	ArcOut
)

func (t ArcType) String() string {
	switch t {
	case ArcIn:
		return "in"
	case ArcOut:
		return "out"
	default:
		return fmt.Sprintf("ArcType(%d)", int(t))
	}
}

// Arc is a directed network edge.
type Arc struct {
	ID       int
	From     int
	To       int
	Capacity int64
}

// FlowOptions configures SkewFlowFinder.
//   - Logger: receives debug records per augmentation; nil disables logging.
//   - CheckConsistency: verify bounds, mirror equality and conservation after
//     every augmentation; violations surface as assertion failures.
//   - Scratch: caller-owned search buffers reused across finders; nil means
//     the finder allocates its own.
type FlowOptions struct {
	Logger           *log.Logger
	CheckConsistency bool
	Scratch          *Scratch
}

// DefaultOptions returns silent options with the consistency check enabled.
func DefaultOptions() FlowOptions {
	return FlowOptions{CheckConsistency: true}
}

// IsInvariantViolation reports whether err signals an internal algorithm
// failure rather than a usage error.
func IsInvariantViolation(err error) bool {
	return errors.IsAssertionFailure(err)
}
