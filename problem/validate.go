package problem

import (
	"github.com/cockroachdb/errors"
)

// Validate checks p for structural errors. It reports the first one found,
// wrapped around ErrInvalidProblem.
func (p *Problem) Validate() error {
	if p.Vertices < 0 {
		return errors.Wrapf(ErrInvalidProblem, "vertices = %d", p.Vertices)
	}
	if p.Cardinality < 0 {
		return errors.Wrapf(ErrInvalidProblem, "cardinality = %d", p.Cardinality)
	}
	inRange := func(v int) bool { return v >= 0 && v < p.Vertices }

	// edges
	seen := make(map[[2]int]int, len(p.Edges))
	for i, e := range p.Edges {
		if !inRange(e.From) || !inRange(e.To) {
			return errors.Wrapf(ErrInvalidProblem, "edge %d: endpoint out of range [0, %d)", i, p.Vertices)
		}
		if e.From == e.To {
			return errors.Wrapf(ErrInvalidProblem, "edge %d: loop at %d", i, e.From)
		}
		if e.MaxMultiplicity < 0 {
			return errors.Wrapf(ErrInvalidProblem, "edge %d: max_multiplicity = %d", i, e.MaxMultiplicity)
		}
		key := [2]int{min(e.From, e.To), max(e.From, e.To)}
		if j, dup := seen[key]; dup {
			return errors.Wrapf(ErrInvalidProblem, "edge %d duplicates edge %d", i, j)
		}
		seen[key] = i
	}

	// sets
	names := make(map[string]int, len(p.Sets))
	for i, s := range p.Sets {
		if s.Name == "" {
			return errors.Wrapf(ErrInvalidProblem, "set %d: empty name", i)
		}
		if j, dup := names[s.Name]; dup {
			return errors.Wrapf(ErrInvalidProblem, "set %d: name %q already used by set %d", i, s.Name, j)
		}
		names[s.Name] = i
	}
	for i, s := range p.Sets {
		if s.Capacity < 0 || s.NodeCapacity < 0 {
			return errors.Wrapf(ErrInvalidProblem, "set %q: negative capacity", s.Name)
		}
		if s.Parent != "" {
			if _, ok := names[s.Parent]; !ok {
				return errors.Wrapf(ErrInvalidProblem, "set %q: unknown parent %q", s.Name, s.Parent)
			}
		}
		members := make(map[int]struct{}, len(s.Nodes))
		for _, v := range s.Nodes {
			if !inRange(v) {
				return errors.Wrapf(ErrInvalidProblem, "set %q: node %d out of range", s.Name, v)
			}
			if _, dup := members[v]; dup {
				return errors.Wrapf(ErrInvalidProblem, "set %q: node %d listed twice", s.Name, v)
			}
			members[v] = struct{}{}
		}
		for _, o := range s.Overrides {
			if _, ok := members[o.Node]; !ok {
				return errors.Wrapf(ErrInvalidProblem, "set %q: override for non-member node %d", s.Name, o.Node)
			}
			if o.Capacity < 0 {
				return errors.Wrapf(ErrInvalidProblem, "set %q: override for node %d is negative", s.Name, o.Node)
			}
		}
		if err := p.checkAncestry(i, names); err != nil {
			return err
		}
	}

	return nil
}

// checkAncestry walks the parent chain of set i and fails on a cycle.
func (p *Problem) checkAncestry(i int, names map[string]int) error {
	visited := map[int]bool{i: true}
	for cur := p.Sets[i]; cur.Parent != ""; {
		j := names[cur.Parent]
		if visited[j] {
			return errors.Wrapf(ErrInvalidProblem, "set %q: parent cycle", p.Sets[i].Name)
		}
		visited[j] = true
		cur = p.Sets[j]
	}

	return nil
}
