package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/astar"
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/sample"
	"github.com/katalvlaran/metroroute/store"
)

// assertSameNetwork compares catalogs, order and adjacency.
func assertSameNetwork(t *testing.T, want, got *core.Network) {
	t.Helper()
	assert.Equal(t, want.Stats(), got.Stats())
	assert.Equal(t, want.Lines(), got.Lines())
	assert.Equal(t, want.Connections(), got.Connections())

	ws, gs := want.Stops(), got.Stops()
	require.Len(t, gs, len(ws))
	for i := range ws {
		assert.Equal(t, ws[i].ID(), gs[i].ID())
		assert.Equal(t, ws[i].Name(), gs[i].Name())
		assert.Equal(t, ws[i].Line(), gs[i].Line())
		wl, _ := want.Links(ws[i].ID())
		gl, _ := got.Links(gs[i].ID())
		assert.Equal(t, wl, gl, ws[i].ID())
	}
}

// exerciseStore runs the shared contract against any backend.
func exerciseStore(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, store.ErrEmpty)

	orig := sample.Network()
	require.NoError(t, s.Save(ctx, orig))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assertSameNetwork(t, orig, loaded)

	r, err := astar.Fastest(loaded, "M1", "K4")
	require.NoError(t, err)
	assert.EqualValues(t, 25, r.Cost)

	// a second Save replaces the first
	small := core.NewNetwork()
	require.NoError(t, small.AddStop("A", "Alpha", "L"))
	require.NoError(t, small.AddStop("B", "Beta", "L"))
	require.NoError(t, small.AddConnection("A", "B", 3))
	require.NoError(t, small.AddConnection("A", "B", 1))
	require.NoError(t, s.Save(ctx, small))

	loaded, err = s.Load(ctx)
	require.NoError(t, err)
	assertSameNetwork(t, small, loaded)
}

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "network.db")

	s, err := store.OpenSQLite(ctx, path)
	require.NoError(t, err)
	exerciseStore(t, s)
	require.NoError(t, s.Close())

	// data survives reopening
	s, err = store.OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.StopCount())
}

func TestPostgres(t *testing.T) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set - skipping integration test")
	}
	ctx := context.Background()

	s, err := store.OpenPostgres(ctx, databaseURL)
	require.NoError(t, err)
	defer s.Close()

	// start from an empty store
	require.NoError(t, s.Save(ctx, core.NewNetwork()))
	exerciseStore(t, s)
}
