package problem_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skewmatch/builder"
	"github.com/katalvlaran/skewmatch/core"
	"github.com/katalvlaran/skewmatch/flow"
	"github.com/katalvlaran/skewmatch/problem"
)

const pathProblem = `
cardinality = 2
vertices = 4

[[edges]]
from = 0
to = 1
max_multiplicity = 1

[[edges]]
from = 1
to = 2
max_multiplicity = 1

[[edges]]
from = 2
to = 3
max_multiplicity = 1

[[sets]]
name = "all"
capacity = 10
node_capacity = 1
nodes = [0, 1, 2, 3]
`

func TestDecodeAndSolvePath(t *testing.T) {
	p, err := problem.Decode(strings.NewReader(pathProblem))
	require.NoError(t, err)
	require.Equal(t, 2, p.Cardinality)
	require.Len(t, p.Edges, 3)
	require.Equal(t, []int{0, 1, 2, 3}, p.Sets[0].Nodes)

	in, err := p.Build(flow.DefaultOptions())
	require.NoError(t, err)
	res, err := in.Solve(p.Cardinality)
	require.NoError(t, err)

	require.True(t, res.Exact)
	require.Equal(t, 2, res.Achieved)
	require.Len(t, res.Matched, 2)
	require.Equal(t, 0, res.Matched[0].Edge)
	require.Equal(t, 2, res.Matched[1].Edge)
	require.Equal(t, int64(4), res.SetLoads["all"])
	for v := 0; v < 4; v++ {
		require.Equal(t, int64(1), res.Incident[v], "vertex %d", v)
	}
}

func TestSolveTriangleFallsShort(t *testing.T) {
	p := &problem.Problem{
		Cardinality: 2,
		Vertices:    3,
		Edges: []problem.Edge{
			{From: 0, To: 1, MaxMultiplicity: 1},
			{From: 1, To: 2, MaxMultiplicity: 1},
			{From: 0, To: 2, MaxMultiplicity: 1},
		},
		Sets: []problem.Set{{Name: "all", Capacity: 2, NodeCapacity: 1, Nodes: []int{0, 1, 2}}},
	}
	in, err := p.Build(flow.DefaultOptions())
	require.NoError(t, err)

	res, err := in.Solve(2)
	require.NoError(t, err)
	require.False(t, res.Exact)
	require.Equal(t, 1, res.Achieved)
	require.Len(t, res.Matched, 1)

	res, err = in.Solve(1)
	require.NoError(t, err)
	require.True(t, res.Exact)
}

func TestOverridesAndHierarchy(t *testing.T) {
	const doc = `
vertices = 2

[[edges]]
from = 0
to = 1
max_multiplicity = 5

[[sets]]
name = "outer"
capacity = 2
node_capacity = 5
nodes = []

[[sets]]
name = "inner"
parent = "outer"
capacity = 10
node_capacity = 5
nodes = [0, 1]

  [[sets.overrides]]
  node = 1
  capacity = 5
`
	p, err := problem.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	in, err := p.Build(flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, map[string]int{"outer": 0, "inner": 1}, in.SetIndex)

	res, err := in.Solve(5)
	require.NoError(t, err)
	require.False(t, res.Exact)
	require.Equal(t, 1, res.Achieved, "the parent set admits two endpoint units")
	require.Equal(t, int64(2), res.SetLoads["outer"])
	require.Equal(t, int64(2), res.SetLoads["inner"])

	c, err := in.Finder.NodeCapacity(1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(5), c)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := problem.Decode(strings.NewReader("vertices = 1\nnode_capacty = 3\n"))
	require.ErrorIs(t, err, problem.ErrInvalidProblem)
	require.Contains(t, err.Error(), "node_capacty")

	_, err = problem.Decode(strings.NewReader("vertices = [\n"))
	require.Error(t, err)
}

func TestLoadAndEncode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "path.toml")
	require.NoError(t, os.WriteFile(path, []byte(pathProblem), 0o644))

	p, err := problem.Load(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, problem.Encode(&buf, p))
	back, err := problem.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, p, back)

	_, err = problem.Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *problem.Problem {
		return &problem.Problem{
			Vertices: 3,
			Edges:    []problem.Edge{{From: 0, To: 1, MaxMultiplicity: 1}},
			Sets: []problem.Set{
				{Name: "a", Nodes: []int{0, 1}},
				{Name: "b", Parent: "a", Nodes: []int{2}},
			},
		}
	}
	require.NoError(t, base().Validate())

	cases := []struct {
		name   string
		mutate func(p *problem.Problem)
		want   string
	}{
		{"negative vertices", func(p *problem.Problem) { p.Vertices = -1 }, "vertices"},
		{"negative cardinality", func(p *problem.Problem) { p.Cardinality = -1 }, "cardinality"},
		{"endpoint out of range", func(p *problem.Problem) { p.Edges[0].To = 3 }, "out of range"},
		{"loop", func(p *problem.Problem) { p.Edges[0].To = 0 }, "loop"},
		{"negative multiplicity", func(p *problem.Problem) { p.Edges[0].MaxMultiplicity = -1 }, "max_multiplicity"},
		{"duplicate edge", func(p *problem.Problem) {
			p.Edges = append(p.Edges, problem.Edge{From: 1, To: 0})
		}, "duplicates"},
		{"empty name", func(p *problem.Problem) { p.Sets[0].Name = "" }, "empty name"},
		{"duplicate name", func(p *problem.Problem) { p.Sets[1].Name = "a" }, "already used"},
		{"unknown parent", func(p *problem.Problem) { p.Sets[1].Parent = "zzz" }, "unknown parent"},
		{"parent cycle", func(p *problem.Problem) { p.Sets[0].Parent = "b" }, "cycle"},
		{"self parent", func(p *problem.Problem) { p.Sets[0].Parent = "a" }, "cycle"},
		{"negative capacity", func(p *problem.Problem) { p.Sets[0].Capacity = -2 }, "negative capacity"},
		{"node out of range", func(p *problem.Problem) { p.Sets[1].Nodes = []int{7} }, "out of range"},
		{"node twice", func(p *problem.Problem) { p.Sets[0].Nodes = []int{0, 0} }, "twice"},
		{"override non-member", func(p *problem.Problem) {
			p.Sets[1].Overrides = []problem.Override{{Node: 0, Capacity: 1}}
		}, "non-member"},
		{"negative override", func(p *problem.Problem) {
			p.Sets[1].Overrides = []problem.Override{{Node: 2, Capacity: -1}}
		}, "negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base()
			tc.mutate(p)
			err := p.Validate()
			require.ErrorIs(t, err, problem.ErrInvalidProblem)
			require.Contains(t, err.Error(), tc.want)

			_, err = p.Build(flow.DefaultOptions())
			require.ErrorIs(t, err, problem.ErrInvalidProblem)
		})
	}
}

func TestFromGraph(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)

	p, err := problem.FromGraph(g, 2, 1, []problem.Set{
		{Name: "all", Capacity: 8, NodeCapacity: 1, Nodes: []int{0, 1, 2, 3}},
	})
	require.NoError(t, err)
	require.Equal(t, 4, p.Vertices)
	require.Len(t, p.Edges, 4)

	in, err := p.Build(flow.DefaultOptions())
	require.NoError(t, err)
	res, err := in.Solve(2)
	require.NoError(t, err)
	require.True(t, res.Exact)
}

func TestFromGraphCompactsGaps(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddVertex()
	}
	_, err := g.AddEdge(1, 2)
	require.NoError(t, err)
	_, err = g.AddEdge(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.RemoveVertex(0))

	p, err := problem.FromGraph(g, 1, 1, []problem.Set{{
		Name:         "all",
		Capacity:     4,
		NodeCapacity: 1,
		Nodes:        []int{1, 2, 3},
		Overrides:    []problem.Override{{Node: 3, Capacity: 0}},
	}})
	require.NoError(t, err)
	require.Equal(t, 3, p.Vertices)
	require.Equal(t, []problem.Edge{
		{From: 0, To: 1, MaxMultiplicity: 1},
		{From: 1, To: 2, MaxMultiplicity: 1},
	}, p.Edges)
	require.Equal(t, []int{0, 1, 2}, p.Sets[0].Nodes)
	require.Equal(t, []problem.Override{{Node: 2, Capacity: 0}}, p.Sets[0].Overrides)

	in, err := p.Build(flow.DefaultOptions())
	require.NoError(t, err)
	res, err := in.Solve(1)
	require.NoError(t, err)
	require.True(t, res.Exact)
	require.Equal(t, 0, res.Matched[0].Edge, "the vertex with capacity 0 stays unmatched")

	_, err = problem.FromGraph(g, 1, 1, []problem.Set{{Name: "stale", Nodes: []int{0}}})
	require.ErrorIs(t, err, problem.ErrInvalidProblem)
}
