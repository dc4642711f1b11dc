package render_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skewmatch/core"
	"github.com/katalvlaran/skewmatch/flow"
	"github.com/katalvlaran/skewmatch/matching"
	"github.com/katalvlaran/skewmatch/render"
)

func solvedSingleEdge(t *testing.T) *matching.ConstrainedFinder {
	t.Helper()
	g := core.NewGraph()
	a, b := g.AddVertex(), g.AddVertex()
	e, err := g.AddEdge(a, b)
	require.NoError(t, err)

	f, err := matching.NewConstrainedFinder(g, [][]int{{a, b}}, nil, flow.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, f.SetNodeSetCapacity(0, 2))
	require.NoError(t, f.SetNodeCapacity(a, 1, 0))
	require.NoError(t, f.SetNodeCapacity(b, 1, 0))
	require.NoError(t, f.SetMaxEdgeMultiplicity(e, 1))
	ok, err := f.FindMatching(1)
	require.NoError(t, err)
	require.True(t, ok)

	return f
}

func TestNetworkDOT(t *testing.T) {
	f := solvedSingleEdge(t)
	dot, err := render.NetworkDOT(f.Network(), f.Labels(), f.ArcValue)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(dot, "digraph network {"))
	assert.Contains(t, dot, `label="source", shape=box`)
	assert.Contains(t, dot, `label="sink", shape=box`)
	assert.Contains(t, dot, `label="set:0"`)
	assert.Contains(t, dot, `label="v0'"`)
	assert.Contains(t, dot, `label="2/2", penwidth=2`, "source arc carries two units")
	assert.Equal(t, len(f.Network().Arcs()), strings.Count(dot, " -> "))
}

func TestNetworkDOTWithoutValues(t *testing.T) {
	net := flow.NewSkewNetwork()
	s, _ := net.AddVertex()
	a, _ := net.AddVertex()
	_, err := net.AddArc(s, a, 0)
	require.NoError(t, err)

	dot, err := render.NetworkDOT(net, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, dot, `n0 [label="0"]`)
	assert.Contains(t, dot, `label="0/0", style=dotted`)

	boom := errors.New("boom")
	_, err = render.NetworkDOT(net, nil, func(int) (int64, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
}

func TestMatchingDOT(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddVertex()
	}
	e01, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2)
	require.NoError(t, err)

	dot := render.MatchingDOT(g, []matching.EdgeMultiplicity{{Edge: e01, Beg: 0, End: 1, Multiplicity: 2}})
	assert.True(t, strings.HasPrefix(dot, "graph matching {"))
	assert.Contains(t, dot, `v0 -- v1 [label="x2"`)
	assert.Contains(t, dot, `v1 -- v2 [color=grey]`)
}
