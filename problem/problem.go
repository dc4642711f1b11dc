package problem

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidProblem is wrapped by every validation failure.
var ErrInvalidProblem = errors.New("problem: invalid problem")

// Problem is the TOML document.
type Problem struct {
	Cardinality int    `toml:"cardinality"`
	Vertices    int    `toml:"vertices"`
	Edges       []Edge `toml:"edges"`
	Sets        []Set  `toml:"sets"`
}

// Edge is one graph edge with its multiplicity cap.
type Edge struct {
	From            int   `toml:"from"`
	To              int   `toml:"to"`
	MaxMultiplicity int64 `toml:"max_multiplicity"`
}

// Set is one constraint set.
type Set struct {
	Name         string     `toml:"name"`
	Parent       string     `toml:"parent,omitempty"`
	Capacity     int64      `toml:"capacity"`
	NodeCapacity int64      `toml:"node_capacity"`
	Nodes        []int      `toml:"nodes"`
	Overrides    []Override `toml:"overrides,omitempty"`
}

// Override replaces the set-wide node capacity for one node.
type Override struct {
	Node     int   `toml:"node"`
	Capacity int64 `toml:"capacity"`
}

// setIndex maps set names to their position.
func (p *Problem) setIndex() map[string]int {
	idx := make(map[string]int, len(p.Sets))
	for i, s := range p.Sets {
		idx[s.Name] = i
	}

	return idx
}
