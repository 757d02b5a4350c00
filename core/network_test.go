package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/core"
)

// Common stop IDs used across core tests.
const (
	StopA = "A"
	StopB = "B"
	StopC = "C"
	StopX = "X"

	LineL = "L"
	LineM = "M"
)

// buildTriangle registers A, B (line L) and C (line M) joined by A–B 4,
// B–C 2, A–C 9.
func buildTriangle(t *testing.T) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	require.NoError(t, n.AddStop(StopA, "Alpha", LineL))
	require.NoError(t, n.AddStop(StopB, "Beta", LineL))
	require.NoError(t, n.AddStop(StopC, "Gamma", LineM))
	require.NoError(t, n.AddConnection(StopA, StopB, 4))
	require.NoError(t, n.AddConnection(StopB, StopC, 2))
	require.NoError(t, n.AddConnection(StopA, StopC, 9))

	return n
}

func TestAddStop_Validation(t *testing.T) {
	n := core.NewNetwork()
	assert.ErrorIs(t, n.AddStop("", "Nowhere", LineL), core.ErrEmptyStopID)
	assert.ErrorIs(t, n.AddStop(StopA, "Alpha", ""), core.ErrEmptyLineID)
	assert.Equal(t, 0, n.StopCount())
}

func TestAddStop_FirstRegistrationWins(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddStop(StopA, "Alpha", LineL))
	require.NoError(t, n.AddStop(StopA, "Other", LineM))

	s, ok := n.Stop(StopA)
	require.True(t, ok)
	assert.Equal(t, "Alpha", s.Name())
	assert.Equal(t, LineL, s.Line())
	assert.Equal(t, 1, n.StopCount())
	assert.Equal(t, []string{LineL}, n.Lines())
}

func TestStopQueries(t *testing.T) {
	n := buildTriangle(t)

	assert.True(t, n.HasStop(StopA))
	assert.False(t, n.HasStop(StopX))
	assert.False(t, n.HasStop(""))

	s, ok := n.Stop(StopC)
	require.True(t, ok)
	assert.Equal(t, "Gamma [M]", s.String())

	_, ok = n.Stop(StopX)
	assert.False(t, ok)

	var ids []string
	for _, s := range n.Stops() {
		ids = append(ids, s.ID())
	}
	assert.Equal(t, []string{StopA, StopB, StopC}, ids)
	assert.Equal(t, []string{LineL, LineM}, n.Lines())

	onL, ok := n.LineStops(LineL)
	require.True(t, ok)
	require.Len(t, onL, 2)
	assert.Equal(t, StopA, onL[0].ID())
	assert.Equal(t, StopB, onL[1].ID())

	_, ok = n.LineStops("Nope")
	assert.False(t, ok)
}

func TestAddConnection_Validation(t *testing.T) {
	n := buildTriangle(t)

	assert.ErrorIs(t, n.AddConnection("", StopB, 1), core.ErrEmptyStopID)
	assert.ErrorIs(t, n.AddConnection(StopA, "", 1), core.ErrEmptyStopID)
	assert.ErrorIs(t, n.AddConnection(StopA, StopB, -1), core.ErrNegativeCost)
	assert.ErrorIs(t, n.AddConnection(StopA, StopB, core.MaxCost+1), core.ErrCostTooLarge)
	assert.ErrorIs(t, n.AddConnection(StopA, StopX, 1), core.ErrStopNotFound)
	assert.ErrorIs(t, n.AddConnection(StopX, StopA, 1), core.ErrStopNotFound)
	assert.Equal(t, 3, n.ConnectionCount())

	require.NoError(t, n.AddConnection(StopA, StopB, core.MaxCost))
	assert.Equal(t, 4, n.ConnectionCount())
}

func TestAddConnection_Symmetric(t *testing.T) {
	n := buildTriangle(t)

	la, err := n.Links(StopA)
	require.NoError(t, err)
	assert.Equal(t, []core.Link{{To: StopB, Cost: 4}, {To: StopC, Cost: 9}}, la)

	lc, err := n.Links(StopC)
	require.NoError(t, err)
	assert.Equal(t, []core.Link{{To: StopB, Cost: 2}, {To: StopA, Cost: 9}}, lc)

	_, err = n.Links(StopX)
	assert.ErrorIs(t, err, core.ErrStopNotFound)
}

func TestAddConnection_ParallelAndSelfLoop(t *testing.T) {
	n := buildTriangle(t)
	require.NoError(t, n.AddConnection(StopA, StopB, 1))
	require.NoError(t, n.AddConnection(StopA, StopA, 0))

	la, err := n.Links(StopA)
	require.NoError(t, err)
	assert.Len(t, la, 4) // B 4, C 9, B 1, A 0

	c, ok := n.CheapestLink(StopA, StopB)
	require.True(t, ok)
	assert.EqualValues(t, 1, c)
	c, ok = n.CheapestLink(StopB, StopA)
	require.True(t, ok)
	assert.EqualValues(t, 1, c)

	_, ok = n.CheapestLink(StopB, StopX)
	assert.False(t, ok)
	assert.Equal(t, 5, n.ConnectionCount())
}

func TestLinks_ReturnsCopy(t *testing.T) {
	n := buildTriangle(t)
	la, err := n.Links(StopA)
	require.NoError(t, err)
	la[0].Cost = 1000

	again, err := n.Links(StopA)
	require.NoError(t, err)
	assert.EqualValues(t, 4, again[0].Cost)
}

func TestConnectionsCatalog(t *testing.T) {
	n := buildTriangle(t)
	assert.Equal(t, []core.Connection{
		{From: StopA, To: StopB, Cost: 4},
		{From: StopB, To: StopC, Cost: 2},
		{From: StopA, To: StopC, Cost: 9},
	}, n.Connections())
}

func TestPathCost(t *testing.T) {
	n := buildTriangle(t)

	c, err := n.PathCost([]string{StopA, StopB, StopC})
	require.NoError(t, err)
	assert.EqualValues(t, 6, c)

	c, err = n.PathCost([]string{StopA})
	require.NoError(t, err)
	assert.EqualValues(t, 0, c)

	c, err = n.PathCost(nil)
	require.NoError(t, err)
	assert.EqualValues(t, 0, c)

	_, err = n.PathCost([]string{StopA, StopX})
	assert.ErrorIs(t, err, core.ErrStopNotFound)

	require.NoError(t, n.AddStop(StopX, "Isolated", LineM))
	_, err = n.PathCost([]string{StopA, StopX})
	assert.ErrorIs(t, err, core.ErrStopNotFound)
}

func TestFreeze(t *testing.T) {
	n := buildTriangle(t)
	assert.False(t, n.Frozen())

	n.Freeze()
	n.Freeze()
	assert.True(t, n.Frozen())
	assert.ErrorIs(t, n.AddStop(StopX, "X", LineL), core.ErrFrozen)
	assert.ErrorIs(t, n.AddConnection(StopA, StopB, 1), core.ErrFrozen)

	// reads are unaffected
	assert.Equal(t, 3, n.StopCount())
	_, err := n.Links(StopA)
	assert.NoError(t, err)
}

func TestStats(t *testing.T) {
	n := buildTriangle(t)
	assert.Equal(t, core.NetworkStats{
		StopCount:       3,
		LineCount:       2,
		ConnectionCount: 3,
		TransferCount:   2,
		Frozen:          false,
	}, n.Stats())
}

func TestResolve(t *testing.T) {
	n := buildTriangle(t)

	r, err := n.Resolve([]string{StopA, StopB, StopC}, 6)
	require.NoError(t, err)
	assert.Equal(t, []string{StopA, StopB, StopC}, r.IDs())
	assert.EqualValues(t, 6, r.Cost)

	_, err = n.Resolve([]string{StopA, StopX}, 0)
	assert.ErrorIs(t, err, core.ErrStopNotFound)
	assert.Contains(t, err.Error(), `"X"`)
}

func TestClone(t *testing.T) {
	n := buildTriangle(t)
	n.Freeze()

	c := n.Clone()
	assert.False(t, c.Frozen())
	assert.Equal(t, n.Connections(), c.Connections())
	assert.Equal(t, n.Lines(), c.Lines())

	// the clone is independent of the source
	require.NoError(t, c.AddStop(StopX, "X", LineL))
	require.NoError(t, c.AddConnection(StopA, StopX, 1))
	assert.False(t, n.HasStop(StopX))
	la, err := n.Links(StopA)
	require.NoError(t, err)
	assert.Len(t, la, 2)

	sa, _ := n.Stop(StopA)
	ca, _ := c.Stop(StopA)
	assert.NotSame(t, sa, ca)
}

func TestCloneEmpty(t *testing.T) {
	n := buildTriangle(t)
	c := n.CloneEmpty()

	assert.Equal(t, 3, c.StopCount())
	assert.Equal(t, 0, c.ConnectionCount())
	la, err := c.Links(StopA)
	require.NoError(t, err)
	assert.Empty(t, la)
}
