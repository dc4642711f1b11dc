// File: builder_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// determinism and parameter validation.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skewmatch/builder"
	"github.com/katalvlaran/skewmatch/core"
)

// pairs returns edges as [beg, end] pairs in id order.
func pairs(g *core.Graph) [][2]int {
	var out [][2]int
	for _, e := range g.Edges() {
		out = append(out, [2]int{e.Beg, e.End})
	}

	return out
}

func degrees(t *testing.T, g *core.Graph) []int {
	t.Helper()
	var out []int
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		out = append(out, d)
	}

	return out
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, pairs(g))
			},
		},
		{
			name: "Cycle(4)", ctor: builder.Cycle(4), wantV: 4, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, pairs(g))
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{3, 1, 1, 1}, degrees(t, g))
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{3, 3, 3, 3, 4}, degrees(t, g))
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{3, 3, 3, 3}, degrees(t, g))
			},
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{3, 3, 2, 2, 2}, degrees(t, g))
				require.False(t, g.HasEdge(0, 1), "no edge inside a side")
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, [][2]int{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 4}, {4, 5}}, pairs(g))
			},
		},
		{
			name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1), wantV: 5, wantE: 10,
		},
		{
			name: "RandomSparse(5,0)", ctor: builder.RandomSparse(5, 0), wantV: 5, wantE: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuildGraph_ComposesDisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount())
	require.Equal(t, [][2]int{{0, 1}, {1, 2}, {3, 4}, {4, 5}, {5, 3}}, pairs(g))
}

func TestBuildGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"path too short", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"cycle too short", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"star too short", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"wheel too short", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"complete empty", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"bipartite empty side", builder.CompleteBipartite(0, 2), nil, builder.ErrTooFewVertices},
		{"grid zero rows", builder.Grid(0, 2), nil, builder.ErrTooFewVertices},
		{"sparse bad p", builder.RandomSparse(3, 1.5), nil, builder.ErrInvalidProbability},
		{"sparse no rng", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"regular odd", builder.RandomRegular(5, 3), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"regular degree", builder.RandomRegular(4, 4), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"regular no rng", builder.RandomRegular(4, 2), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}

func TestRandomSparse_DeterministicPerSeed(t *testing.T) {
	build := func(seed int64) [][2]int {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(12, 0.3))
		require.NoError(t, err)
		return pairs(g)
	}
	require.Equal(t, build(7), build(7))

	r := rand.New(rand.NewSource(7))
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithRand(r)}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	require.Equal(t, build(7), pairs(g), "WithRand and WithSeed draw the same stream")
}

func TestRandomRegular_Degrees(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithMaxAttempts(1000)},
		builder.RandomRegular(10, 3))
	require.NoError(t, err)
	require.Equal(t, 15, g.EdgeCount())
	for _, d := range degrees(t, g) {
		require.Equal(t, 3, d)
	}
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithMaxAttempts(0) })
}
