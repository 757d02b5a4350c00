package planner_test

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/astar"
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/planner"
	"github.com/katalvlaran/metroroute/sample"
)

func newSamplePlanner(t *testing.T, opts ...planner.Option) *planner.Planner {
	t.Helper()
	p, err := planner.New(sample.Network(), opts...)
	require.NoError(t, err)

	return p
}

func TestNew_Validation(t *testing.T) {
	_, err := planner.New(nil)
	assert.ErrorIs(t, err, planner.ErrNetworkNil)

	n := sample.Network()
	for _, opt := range []planner.Option{
		planner.WithLinePenalty(-1),
		planner.WithMaxFrontier(-1),
		planner.WithMaxTransferDepth(-1),
	} {
		_, err = planner.New(n, opt)
		assert.ErrorIs(t, err, planner.ErrBadOption)
	}
}

func TestNew_SnapshotsNetwork(t *testing.T) {
	n := sample.Network()
	p, err := planner.New(n)
	require.NoError(t, err)

	assert.True(t, p.Network().Frozen())
	assert.False(t, n.Frozen())
	assert.Equal(t, astar.DefaultLinePenalty, p.LinePenalty())

	// later additions to the source network are not visible
	require.NoError(t, n.AddStop("Z1", "Island", "Grey"))
	assert.False(t, p.Network().HasStop("Z1"))

	// an already frozen network is used as is
	n.Freeze()
	p2, err := planner.New(n)
	require.NoError(t, err)
	assert.Same(t, n, p2.Network())
}

func TestFindRoutes_Scenarios(t *testing.T) {
	p := newSamplePlanner(t)

	r, ok := p.FindMinTransferRoute("M1", "K4")
	require.True(t, ok)
	assert.Equal(t, "AŞTİ -> Kızılay -> Kızılay -> Ulus -> Demetevler -> OSB", r.Itinerary(" -> "))

	r, ok = p.FindFastestRoute("M1", "K4")
	require.True(t, ok)
	assert.EqualValues(t, 25, r.Cost)

	r, ok = p.FindFastestRoute("T1", "T4")
	require.True(t, ok)
	assert.EqualValues(t, 21, r.Cost)

	r, ok = p.FindFastestRoute("T4", "M1")
	require.True(t, ok)
	assert.EqualValues(t, 19, r.Cost)
	for _, s := range r.Stops {
		assert.NotEmpty(t, s.ID())
		assert.NotEmpty(t, s.Name())
		assert.NotEmpty(t, s.Line())
	}
}

func TestFindRoutes_NoPath(t *testing.T) {
	p := newSamplePlanner(t)

	_, ok := p.FindMinTransferRoute("XX", "K4")
	assert.False(t, ok)
	_, ok = p.FindFastestRoute("M1", "XX")
	assert.False(t, ok)

	r, ok := p.FindFastestRoute("K2", "K2")
	require.True(t, ok)
	assert.Equal(t, []string{"K2"}, r.IDs())
}

func TestFindFastestRoute_FrontierLimitLogged(t *testing.T) {
	var buf bytes.Buffer
	p := newSamplePlanner(t, planner.WithMaxFrontier(2), planner.WithLogger(log.New(&buf, "", 0)))

	_, ok := p.FindFastestRoute("M1", "K4")
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "frontier size limit exceeded")
}

func TestMinTransferRoute_DepthLimit(t *testing.T) {
	p := newSamplePlanner(t, planner.WithMaxTransferDepth(3))

	_, err := p.MinTransferRoute(context.Background(), "M1", "K4")
	assert.ErrorIs(t, err, core.ErrNoRoute)

	r, err := p.MinTransferRoute(context.Background(), "M1", "K2")
	require.NoError(t, err)
	assert.Equal(t, 3, r.Hops())
}

func TestRoutes_AvoidLines(t *testing.T) {
	p := newSamplePlanner(t)
	ctx := context.Background()

	r, err := p.FastestRoute(ctx, "M1", "T2", sample.LineRed)
	require.NoError(t, err)
	assert.Equal(t, []string{"M1", "M2", "M3", "M4", "T3", "T2"}, r.IDs())

	r, err = p.MinTransferRoute(ctx, "M1", "T2", sample.LineRed)
	require.NoError(t, err)
	assert.Equal(t, []string{"M1", "M2", "M3", "M4", "T3", "T2"}, r.IDs())
}

func TestLinePenaltyZeroIsExact(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddStop("S", "S", "Y"))
	require.NoError(t, n.AddStop("B", "B", "Y"))
	require.NoError(t, n.AddStop("A", "A", "X"))
	require.NoError(t, n.AddStop("T", "T", "Y"))
	require.NoError(t, n.AddConnection("S", "B", 3))
	require.NoError(t, n.AddConnection("B", "T", 2))
	require.NoError(t, n.AddConnection("S", "A", 4))
	require.NoError(t, n.AddConnection("A", "T", 0))

	def, err := planner.New(n)
	require.NoError(t, err)
	r, ok := def.FindFastestRoute("S", "T")
	require.True(t, ok)
	assert.EqualValues(t, 5, r.Cost)

	exact, err := planner.New(n, planner.WithLinePenalty(0))
	require.NoError(t, err)
	r, ok = exact.FindFastestRoute("S", "T")
	require.True(t, ok)
	assert.EqualValues(t, 4, r.Cost)
}

func TestTravelTimes(t *testing.T) {
	p := newSamplePlanner(t)

	reach, err := p.TravelTimes(context.Background(), "K1", 10)
	require.NoError(t, err)

	var ids []string
	var mins []int64
	for _, r := range reach {
		ids = append(ids, r.Stop.ID())
		mins = append(mins, r.Minutes)
	}
	assert.Equal(t, []string{"K1", "M2", "K2", "M3", "M1", "M4", "K3"}, ids)
	assert.Equal(t, []int64{0, 2, 4, 5, 7, 9, 10}, mins)
	assert.Equal(t, "", reach[0].Via)
	assert.Equal(t, "M2", reach[4].Via)

	all, err := p.TravelTimes(context.Background(), "K1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 12)

	_, err = p.TravelTimes(context.Background(), "XX", 0)
	assert.ErrorIs(t, err, planner.ErrUnknownStop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.TravelTimes(ctx, "K1", 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUnreachable(t *testing.T) {
	n := sample.Network()
	require.NoError(t, n.AddStop("Z1", "Island", "Grey"))
	require.NoError(t, n.AddStop("Z2", "Islet", "Grey"))
	require.NoError(t, n.AddConnection("Z1", "Z2", 1))
	p, err := planner.New(n)
	require.NoError(t, err)

	out, err := p.Unreachable(context.Background(), "M1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Z1", out[0].ID())
	assert.Equal(t, "Z2", out[1].ID())

	out, err = p.Unreachable(context.Background(), "Z1")
	require.NoError(t, err)
	assert.Len(t, out, 12)

	_, err = p.Unreachable(context.Background(), "XX")
	assert.ErrorIs(t, err, planner.ErrUnknownStop)
}

func TestIslands(t *testing.T) {
	p := newSamplePlanner(t)
	islands, err := p.Islands(context.Background())
	require.NoError(t, err)
	require.Len(t, islands, 1)
	assert.Len(t, islands[0], 12)

	n := sample.Network()
	require.NoError(t, n.AddStop("Z1", "Island", "Grey"))
	var buf bytes.Buffer
	p, err = planner.New(n, planner.WithLogger(log.New(&buf, "", 0)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "network has 2 islands")

	islands, err = p.Islands(context.Background())
	require.NoError(t, err)
	require.Len(t, islands, 2)
	assert.Equal(t, "Island", islands[1][0].Name())
}
