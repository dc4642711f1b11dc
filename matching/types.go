package matching

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors for construction, capacity setup and result queries.
var (
	// ErrNodeNotInSet is returned when a node has no capacity arc for a set,
	// i.e. it was not listed in that set at construction.
	ErrNodeNotInSet = errors.New("matching: node is not a member of the set")

	// ErrSetNotFound indicates a set index outside [0, SetCount()).
	ErrSetNotFound = errors.New("matching: set not found")

	// ErrNodeNotFound indicates a vertex that the graph does not list.
	ErrNodeNotFound = errors.New("matching: node not found")

	// ErrEdgeNotFound indicates an edge id that the graph does not list.
	ErrEdgeNotFound = errors.New("matching: edge not found")

	// ErrInvalidParentSet is returned for a parent index out of range, a
	// parent list of the wrong length, or a cycle among parents.
	ErrInvalidParentSet = errors.New("matching: invalid parent set")

	// ErrDuplicateNode is returned when a set lists the same node twice.
	ErrDuplicateNode = errors.New("matching: node listed twice in a set")

	// ErrNegativeCardinality is returned by FindMatching for k < 0.
	ErrNegativeCardinality = errors.New("matching: cardinality must be non-negative")

	// ErrNotSolved is returned by result accessors before the first FindMatching.
	ErrNotSolved = errors.New("matching: no matching computed yet")
)

// NoParent marks a top-level set in the parent list.
const NoParent = -1

// ConstraintSet is the network image of one caller-declared set: Node is the
// set vertex and InArc the arc feeding it from its parent (or the root).
// The capacity of InArc is the set capacity.
type ConstraintSet struct {
	Node   int
	InArc  int
	Parent int
}

// EdgeMultiplicity is one matched edge of the last solve.
type EdgeMultiplicity struct {
	Edge         int
	Beg          int
	End          int
	Multiplicity int64
}
