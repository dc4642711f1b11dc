package flow_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/skewmatch/flow"
)

// edgeNetwork models one matching edge a-b with unit vertex capacities:
//
//	s->a, s->b, a->b' and their mirrors a'->t, b'->t, b->a'.
type edgeNetwork struct {
	net                    *flow.SkewNetwork
	s, t, a, aSym, b, bSym int
	sa, sb, ab             int
}

func newEdgeNetwork(t *testing.T, vertexCap, edgeCap int64) edgeNetwork {
	t.Helper()
	var n edgeNetwork
	var err error
	n.net = flow.NewSkewNetwork()
	n.s, n.t = n.net.AddVertex()
	n.a, n.aSym = n.net.AddVertex()
	n.b, n.bSym = n.net.AddVertex()
	n.sa, err = n.net.AddArc(n.s, n.a, vertexCap)
	require.NoError(t, err)
	n.sb, err = n.net.AddArc(n.s, n.b, vertexCap)
	require.NoError(t, err)
	n.ab, err = n.net.AddArc(n.a, n.bSym, edgeCap)
	require.NoError(t, err)
	require.NoError(t, n.net.SetSource(n.s))

	return n
}

// FinderSuite groups tests for SkewFlowFinder.
type FinderSuite struct {
	suite.Suite
}

func TestFinderSuite(t *testing.T) {
	suite.Run(t, new(FinderSuite))
}

// TestSingleEdge: one unit goes out to a and one to b; every arc carries 1.
func (s *FinderSuite) TestSingleEdge() {
	n := newEdgeNetwork(s.T(), 1, 1)
	f := flow.NewSkewFlowFinder(n.net, flow.DefaultOptions())

	require.NoError(s.T(), f.Process())
	require.Equal(s.T(), int64(2), f.SourceFlow())
	require.Equal(s.T(), 1, f.Augmentations(), "the mirror path is pushed together with the path")

	for _, arc := range n.net.Arcs() {
		v, err := f.ArcValue(arc.ID)
		require.NoError(s.T(), err)
		require.Equal(s.T(), int64(1), v, "arc %d", arc.ID)
	}
}

// TestClosedEdge: a zero-capacity edge arc blocks all flow.
func (s *FinderSuite) TestClosedEdge() {
	n := newEdgeNetwork(s.T(), 1, 0)
	f := flow.NewSkewFlowFinder(n.net, flow.DefaultOptions())

	require.NoError(s.T(), f.Process())
	require.Zero(s.T(), f.SourceFlow())
	require.Zero(s.T(), f.Augmentations())
}

// TestBottleneck: the smallest capacity on the path bounds the flow.
func (s *FinderSuite) TestBottleneck() {
	n := newEdgeNetwork(s.T(), 5, 3)
	f := flow.NewSkewFlowFinder(n.net, flow.DefaultOptions())

	require.NoError(s.T(), f.Process())
	require.Equal(s.T(), int64(6), f.SourceFlow())
	v, err := f.ArcValue(n.ab)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), v)
	v, err = f.ArcValue(n.sa)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), v)
}

// TestProcessRestartsFromZero: a second run after a capacity change sees
// the new capacities only.
func (s *FinderSuite) TestProcessRestartsFromZero() {
	n := newEdgeNetwork(s.T(), 4, 4)
	f := flow.NewSkewFlowFinder(n.net, flow.DefaultOptions())
	require.NoError(s.T(), f.Process())
	require.Equal(s.T(), int64(8), f.SourceFlow())

	require.NoError(s.T(), n.net.SetArcCapacity(n.ab, 1))
	require.NoError(s.T(), f.Process())
	require.Equal(s.T(), int64(2), f.SourceFlow())
}

// TestSourceNotSet: Process needs a source.
func (s *FinderSuite) TestSourceNotSet() {
	net := flow.NewSkewNetwork()
	net.AddVertex()
	f := flow.NewSkewFlowFinder(net, flow.DefaultOptions())
	require.ErrorIs(s.T(), f.Process(), flow.ErrSourceNotSet)
}

// TestArcValueUnknownArc: unknown ids are usage errors.
func (s *FinderSuite) TestArcValueUnknownArc() {
	n := newEdgeNetwork(s.T(), 1, 1)
	f := flow.NewSkewFlowFinder(n.net, flow.DefaultOptions())
	_, err := f.ArcValue(100)
	require.ErrorIs(s.T(), err, flow.ErrArcNotFound)

	v, err := f.ArcValue(n.ab)
	require.NoError(s.T(), err)
	require.Zero(s.T(), v, "values are zero before Process")
}

// TestSharedScratch: finders run one after another may share buffers.
func (s *FinderSuite) TestSharedScratch() {
	scratch := flow.NewScratch()
	opts := flow.DefaultOptions()
	opts.Scratch = scratch

	small := newEdgeNetwork(s.T(), 1, 1)
	big := newEdgeNetwork(s.T(), 3, 2)
	extra, _ := big.net.AddVertex()
	_, err := big.net.AddArc(big.b, extra, 1)
	require.NoError(s.T(), err)

	f1 := flow.NewSkewFlowFinder(small.net, opts)
	f2 := flow.NewSkewFlowFinder(big.net, opts)
	require.NoError(s.T(), f1.Process())
	require.NoError(s.T(), f2.Process())
	require.NoError(s.T(), f1.Process())
	require.Equal(s.T(), int64(2), f1.SourceFlow())
}

// TestEdmondsKarpBound: on the edge network the plain max flow matches the
// skew-symmetric one.
func (s *FinderSuite) TestEdmondsKarpBound() {
	n := newEdgeNetwork(s.T(), 2, 1)
	mf, err := flow.EdmondsKarp(context.Background(), n.net)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), mf)

	f := flow.NewSkewFlowFinder(n.net, flow.DefaultOptions())
	require.NoError(s.T(), f.Process())
	require.Equal(s.T(), mf, f.SourceFlow())
}

// TestEdmondsKarpCancelled: a cancelled context stops the search.
func (s *FinderSuite) TestEdmondsKarpCancelled() {
	n := newEdgeNetwork(s.T(), 1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := flow.EdmondsKarp(ctx, n.net)
	require.ErrorIs(s.T(), err, context.Canceled)

	_, err = flow.EdmondsKarp(context.Background(), flow.NewSkewNetwork())
	require.ErrorIs(s.T(), err, flow.ErrSourceNotSet)
}

// randomNetwork adds pairs vertex pairs and tries arcs between random
// vertices; rejected arcs are skipped.
func randomNetwork(r *rand.Rand, pairs, arcs int, maxCap int64) *flow.SkewNetwork {
	net := flow.NewSkewNetwork()
	for i := 0; i < pairs; i++ {
		net.AddVertex()
	}
	vs := net.Vertices()
	for i := 0; i < arcs; i++ {
		from, to := vs[r.Intn(len(vs))], vs[r.Intn(len(vs))]
		_, _ = net.AddArc(from, to, r.Int63n(maxCap+1))
	}
	_ = net.SetSource(vs[0])

	return net
}

// TestRandomNetworksKeepInvariants: the consistency check stays silent and
// the value never exceeds the plain max flow.
func (s *FinderSuite) TestRandomNetworksKeepInvariants() {
	r := rand.New(rand.NewSource(7))
	scratch := flow.NewScratch()
	for i := 0; i < 200; i++ {
		net := randomNetwork(r, 2+r.Intn(5), r.Intn(16), 4)
		opts := flow.DefaultOptions()
		opts.Scratch = scratch
		f := flow.NewSkewFlowFinder(net, opts)
		require.NoError(s.T(), f.Process(), "network %d", i)

		for _, arc := range net.Arcs() {
			v, err := f.ArcValue(arc.ID)
			require.NoError(s.T(), err)
			require.GreaterOrEqual(s.T(), v, int64(0))
			require.LessOrEqual(s.T(), v, arc.Capacity)
			mirror, err := net.SymmetricArc(arc.ID)
			require.NoError(s.T(), err)
			mv, err := f.ArcValue(mirror)
			require.NoError(s.T(), err)
			require.Equal(s.T(), v, mv)
		}

		mf, err := flow.EdmondsKarp(context.Background(), net)
		require.NoError(s.T(), err)
		require.LessOrEqual(s.T(), f.SourceFlow(), mf, "network %d", i)
	}
}

func TestIsInvariantViolation(t *testing.T) {
	require.False(t, flow.IsInvariantViolation(flow.ErrSourceNotSet))
	require.False(t, flow.IsInvariantViolation(&flow.CapacityError{Arc: 1, Capacity: -1}))
}
