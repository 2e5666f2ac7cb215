package floydwarshall_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/floydwarshall"
	"github.com/katalvlaran/lvroute/internal/testgraph"
)

// AllPairsSuite groups closure tests around a shared ScenarioA result.
type AllPairsSuite struct {
	suite.Suite
	g   *core.Graph
	res *floydwarshall.Result
}

func (s *AllPairsSuite) SetupTest() {
	s.g = testgraph.ScenarioA()
	var err error
	s.res, err = floydwarshall.AllPairs(s.g)
	s.Require().NoError(err)
}

func TestAllPairsSuite(t *testing.T) {
	suite.Run(t, new(AllPairsSuite))
}

// TestScenarioC: distance 1→4 is 7 and the predecessor chain yields [1 2 3 4].
func (s *AllPairsSuite) TestScenarioC() {
	d, err := s.res.Distance(1, 4)
	s.Require().NoError(err)
	s.Equal(7.0, d)

	path, err := s.res.Path(1, 4)
	s.Require().NoError(err)
	s.Equal([]int{1, 2, 3, 4}, path)

	p, ok := s.res.Predecessor(1, 4)
	s.True(ok)
	s.Equal(3, p)
	p, ok = s.res.Predecessor(1, 3)
	s.True(ok)
	s.Equal(2, p, "1→3 goes through 2 (5 < 10)")
}

func (s *AllPairsSuite) TestDiagonal() {
	for _, id := range s.res.NodeIDs() {
		d, err := s.res.Distance(id, id)
		s.Require().NoError(err)
		s.Zero(d)
		p, ok := s.res.Predecessor(id, id)
		s.True(ok)
		s.Equal(id, p)
		path, err := s.res.Path(id, id)
		s.Require().NoError(err)
		s.Equal([]int{id}, path)
	}
}

func (s *AllPairsSuite) TestUnreachable() {
	d, err := s.res.Distance(4, 1)
	s.Require().NoError(err)
	s.True(math.IsInf(d, 1))

	_, ok := s.res.Predecessor(4, 1)
	s.False(ok)

	path, err := s.res.Path(4, 1)
	s.Require().NoError(err)
	s.Empty(path)

	_, present := s.res.Predecessors()[4][1]
	s.False(present, "pairs without a predecessor are omitted")
	s.True(math.IsInf(s.res.Distances()[4][1], 1), "distances keep +Inf pairs")
}

func (s *AllPairsSuite) TestUnknownNode() {
	_, err := s.res.Distance(1, 99)
	s.ErrorIs(err, core.ErrNodeNotFound)
	_, err = s.res.Path(99, 1)
	s.ErrorIs(err, core.ErrNodeNotFound)
	_, ok := s.res.Predecessor(99, 1)
	s.False(ok)
}

func (s *AllPairsSuite) TestSnapshotIgnoresLaterMutation() {
	s.True(s.g.UpdateEdgeWeight(2, 3, 100))
	d, err := s.res.Distance(1, 4)
	s.Require().NoError(err)
	s.Equal(7.0, d)

	fresh, err := floydwarshall.AllPairs(s.g)
	s.Require().NoError(err)
	d, err = fresh.Distance(1, 4)
	s.Require().NoError(err)
	s.Equal(12.0, d)
}

func (s *AllPairsSuite) TestMapsCoverAllPairs() {
	dists := s.res.Distances()
	s.Len(dists, 4)
	for _, row := range dists {
		s.Len(row, 4)
	}
	s.Equal(map[int]int{1: 1, 2: 1, 3: 2, 4: 3}, s.res.Predecessors()[1])
}

// ------------------------------------------------------------------------

func TestAllPairs_NilAndEmpty(t *testing.T) {
	_, err := floydwarshall.AllPairs(nil)
	require.ErrorIs(t, err, floydwarshall.ErrNilGraph)

	res, err := floydwarshall.AllPairs(core.NewGraph())
	require.NoError(t, err)
	require.Empty(t, res.NodeIDs())
	require.Empty(t, res.Distances())
	require.Empty(t, res.Predecessors())
}

func TestAllPairs_ParallelEdgesTakeMinimum(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, 8)
	g.AddEdge(1, 2, 2)
	g.AddEdge(1, 2, 5)

	res, err := floydwarshall.AllPairs(g)
	require.NoError(t, err)
	d, err := res.Distance(1, 2)
	require.NoError(t, err)
	require.Equal(t, 2.0, d)
}

func TestAllPairs_PositiveSelfLoopIgnored(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 1, 3)
	g.AddEdge(1, 2, 1)

	res, err := floydwarshall.AllPairs(g)
	require.NoError(t, err)
	d, err := res.Distance(1, 1)
	require.NoError(t, err)
	require.Zero(t, d)
}

func TestAllPairs_NegativeEdgesWithoutCycle(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, 4)
	g.AddEdge(1, 3, 5)
	g.AddEdge(3, 2, -3)
	g.AddEdge(2, 4, 1)

	res, err := floydwarshall.AllPairs(g)
	require.NoError(t, err)
	d, err := res.Distance(1, 4)
	require.NoError(t, err)
	require.Equal(t, 3.0, d)

	path, err := res.Path(1, 4)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 2, 4}, path)
}

func TestAllPairs_NegativeCycle(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, -2)
	g.AddEdge(3, 1, -1)

	_, err := floydwarshall.AllPairs(g)
	require.ErrorIs(t, err, floydwarshall.ErrNegativeCycle)

	loop := core.NewGraph()
	loop.AddEdge(7, 7, -0.5)
	_, err = floydwarshall.AllPairs(loop)
	require.ErrorIs(t, err, floydwarshall.ErrNegativeCycle)
}

func TestAllPairsContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := floydwarshall.AllPairsContext(ctx, testgraph.ScenarioA())
	require.ErrorIs(t, err, context.Canceled)
}

// TestAllPairs_MatchesDijkstra checks every reachable pair on random graphs,
// and that each rebuilt path carries the reported distance.
func TestAllPairs_MatchesDijkstra(t *testing.T) {
	for seed := int64(11); seed <= 14; seed++ {
		g := testgraph.Random(seed, 20, 70)
		res, err := floydwarshall.AllPairs(g)
		require.NoError(t, err)

		for _, u := range g.NodeIDs() {
			for _, v := range g.NodeIDs() {
				_, want, err := dijkstra.ShortestPath(g, u, v)
				require.NoError(t, err)
				got, err := res.Distance(u, v)
				require.NoError(t, err)

				if math.IsInf(want, 1) {
					require.True(t, math.IsInf(got, 1), "seed=%d %d→%d", seed, u, v)
					continue
				}
				require.InDelta(t, want, got, 1e-9, "seed=%d %d→%d", seed, u, v)

				path, err := res.Path(u, v)
				require.NoError(t, err)
				require.Equal(t, u, path[0])
				require.Equal(t, v, path[len(path)-1])
			}
		}
	}
}
