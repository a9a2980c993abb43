package baggage_test

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/conveyor/builder"
	"github.com/katalvlaran/conveyor/dijkstra"
	"github.com/katalvlaran/conveyor/internal/baggage"
	"github.com/katalvlaran/conveyor/internal/loader"
)

const denverOutput = `0001 : 11 Concourse_A_Ticketing A5 A1
0002 : 9 A5 A1 A2 A3 A4
0003 : 1 A2 A1
0004 : 6 A8 A9 A10 A5
0005 : 12 A7 A8 A9 A10 A5 BaggageClaim
`

type RouterSuite struct {
	suite.Suite
	m *loader.Manifest
	r *baggage.Router
}

func (s *RouterSuite) SetupTest() {
	m, err := loader.ParseFile("../loader/testdata/denver.txt")
	s.Require().NoError(err)
	g, err := m.Graph()
	s.Require().NoError(err)
	s.m = m
	s.r = baggage.NewRouter(g)
}

func (s *RouterSuite) TestRun_Denver() {
	rep := s.r.Run(context.Background(), s.m)
	s.Require().Empty(rep.Failed())

	var buf bytes.Buffer
	_, err := rep.WriteTo(&buf)
	s.Require().NoError(err)
	s.Equal(denverOutput, buf.String())
	s.Equal(5, s.r.CachedSources(), "one engine run per distinct entry junction")
}

func (s *RouterSuite) TestRun_ConcurrentMatchesSequential() {
	g := s.r.Graph()
	parallel := baggage.NewRouter(g, baggage.WithWorkers(8))
	for i := 0; i < 5; i++ {
		var buf bytes.Buffer
		_, err := parallel.Run(context.Background(), s.m).WriteTo(&buf)
		s.Require().NoError(err)
		s.Equal(denverOutput, buf.String())
	}
}

func (s *RouterSuite) TestRun_BoundedCache() {
	small := baggage.NewRouter(s.r.Graph(), baggage.WithCacheSize(2), baggage.WithWorkers(4))
	for i := 0; i < 3; i++ {
		var buf bytes.Buffer
		_, err := small.Run(context.Background(), s.m).WriteTo(&buf)
		s.Require().NoError(err)
		s.Equal(denverOutput, buf.String())
		s.LessOrEqual(small.CachedSources(), 2)
	}
}

func (s *RouterSuite) TestResolve() {
	target, err := s.r.Resolve(loader.Bag{ID: "1", Entry: "A1", Flight: "ARRIVAL"}, s.m.Departures)
	s.Require().NoError(err)
	s.Equal(baggage.DefaultClaimJunction, target)

	target, err = s.r.Resolve(loader.Bag{ID: "2", Entry: "A1", Flight: "UA17"}, s.m.Departures)
	s.Require().NoError(err)
	s.Equal("A4", target)

	_, err = s.r.Resolve(loader.Bag{ID: "3", Entry: "A1", Flight: "XX1"}, s.m.Departures)
	s.ErrorIs(err, baggage.ErrUnresolvedFlight)
}

func (s *RouterSuite) TestRoute_SameJunction() {
	rt, err := s.r.Route(context.Background(), "A3", "A3")
	s.Require().NoError(err)
	s.Equal("0 A3", rt.String())
}

func (s *RouterSuite) TestRoute_UnknownJunction() {
	_, err := s.r.Route(context.Background(), "Z9", "A1")
	s.ErrorIs(err, baggage.ErrUnknownJunction)
	var je *baggage.JunctionError
	s.Require().True(errors.As(err, &je))
	s.Equal("Z9", je.Name)
}

func (s *RouterSuite) TestRoute_Cancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.r.Route(ctx, "A1", "A2")
	s.ErrorIs(err, context.Canceled)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func TestRun_PerBagFailures(t *testing.T) {
	in := strings.Join([]string{
		"# conveyor",
		"A B 2",
		"B C 2",
		"X Y 1",
		"Hall Y 1",
		"# departures",
		"F1 C",
		"F2 Y",
		"F3 Nowhere",
		"# bags",
		"b5 A F1",
		"b4 A F2",
		"b3 A F3",
		"b2 Q F1",
		"b1 A F9",
		"b0 X LANDED",
	}, "\n")
	m, err := loader.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Empty(t, m.Problems)
	g, err := m.Graph()
	require.NoError(t, err)

	r := baggage.NewRouter(g, baggage.WithArrivalTag("LANDED"), baggage.WithClaimJunction("Hall"))
	rep := r.Run(context.Background(), m)

	var buf bytes.Buffer
	_, err = rep.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, `b0 : 2 X Y Hall
b1 : no route (unknown flight F9)
b2 : no route (unknown junction Q)
b3 : no route (unknown junction Nowhere)
b4 : no route (unreachable)
b5 : 4 A B C
`, buf.String())

	failed := rep.Failed()
	require.Len(t, failed, 4)
	require.ErrorIs(t, failed[0].Err, baggage.ErrUnresolvedFlight)
	require.Empty(t, failed[0].Target)
	require.ErrorIs(t, failed[3].Err, dijkstra.ErrUnreachable)
	require.Equal(t, "Y", failed[3].Target)
	require.Equal(t, 2, r.CachedSources(), "cross-component requests skip the engine")
}

func TestRun_CarriesProblems(t *testing.T) {
	m, err := loader.Parse(strings.NewReader("junk\n# c\nA B 1\n# d\n# b\n"))
	require.NoError(t, err)
	g, err := m.Graph()
	require.NoError(t, err)

	rep := baggage.NewRouter(g).Run(context.Background(), m)
	require.Empty(t, rep.Outcomes)
	require.Len(t, rep.Problems, 1)
	require.ErrorIs(t, rep.Problems[0], loader.ErrOutsideSection)
}

func TestRoute_NilGraph(t *testing.T) {
	_, err := baggage.NewRouter(nil).Route(context.Background(), "A", "B")
	require.ErrorIs(t, err, baggage.ErrNilGraph)
}

func TestRoute_CacheEviction(t *testing.T) {
	const n, limit = 400, 16
	net, err := builder.Build(nil, builder.Path(n))
	require.NoError(t, err)
	g, err := net.Graph()
	require.NoError(t, err)

	bounded := baggage.NewRouter(g, baggage.WithCacheSize(limit))
	unbounded := baggage.NewRouter(g, baggage.WithCacheSize(n))
	ctx := context.Background()
	for i := n - 1; i >= 0; i-- {
		from := strconv.Itoa(i)
		got, err := bounded.Route(ctx, from, "0")
		require.NoError(t, err)
		want, err := unbounded.Route(ctx, from, "0")
		require.NoError(t, err)
		require.Equal(t, want.String(), got.String())
		require.Equal(t, int64(i), got.Cost)
		require.LessOrEqual(t, bounded.CachedSources(), limit)
	}
	require.Equal(t, limit, bounded.CachedSources())
	require.Equal(t, n, unbounded.CachedSources())

	// An evicted source is recomputed with the same answer.
	again, err := bounded.Route(ctx, strconv.Itoa(n-1), "0")
	require.NoError(t, err)
	require.Equal(t, int64(n-1), again.Cost)
	require.Equal(t, limit, bounded.CachedSources())
}

func TestNewRouter_DefaultCacheSize(t *testing.T) {
	net, err := builder.Build(nil, builder.Path(3))
	require.NoError(t, err)
	g, err := net.Graph()
	require.NoError(t, err)

	r := baggage.NewRouter(g, baggage.WithCacheSize(0))
	for _, from := range []string{"0", "1", "2"} {
		_, err := r.Route(context.Background(), from, "2")
		require.NoError(t, err)
	}
	require.Equal(t, 3, r.CachedSources())
}
