package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/config"
	"github.com/katalvlaran/metroroute/sample"
)

func TestRunDemo(t *testing.T) {
	p, err := newPlanner(sample.Network(), config.Default().Routing, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	runDemo(&buf, p)
	out := buf.String()

	assert.Contains(t, out, "1. AŞTİ → OSB:\n")
	assert.Contains(t, out, "Fastest route (25 minutes): AŞTİ -> Kızılay -> Kızılay -> Ulus -> Demetevler -> OSB\n")
	assert.Contains(t, out, "Fastest route (21 minutes): Batıkent -> Demetevler -> Gar -> Keçiören\n")
	assert.Contains(t, out, "Minimum-transfer route (0 transfers): Batıkent -> Demetevler -> Gar -> Keçiören\n")
	assert.Contains(t, out, "Fastest route (19 minutes): Keçiören -> Gar -> Gar -> Sıhhiye -> Kızılay -> AŞTİ\n")
}

func TestPrintQuery_NoRoute(t *testing.T) {
	p, err := newPlanner(sample.Network(), config.Default().Routing, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	printQuery(&buf, p, "M1", "nowhere")
	assert.Equal(t, "Minimum-transfer route: none\nFastest route: none\n", buf.String())
}

func TestLoadNetwork_FileAndSQLite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "net.yaml")
	dbPath := filepath.Join(dir, "net.db")

	require.NoError(t, writeNetFile(yamlPath, sample.Network()))
	fromFile, err := loadNetwork(ctx, config.NetworkConfig{Source: config.SourceFile, Path: yamlPath})
	require.NoError(t, err)
	assert.Equal(t, sample.Network().Stats(), fromFile.Stats())

	require.NoError(t, saveNetwork(ctx, config.NetworkConfig{Source: config.SourceSQLite, Path: dbPath}, fromFile))
	fromDB, err := loadNetwork(ctx, config.NetworkConfig{Source: config.SourceSQLite, Path: dbPath})
	require.NoError(t, err)
	assert.Equal(t, sample.Network().Stats(), fromDB.Stats())

	p, err := newPlanner(fromDB, config.Default().Routing, nil)
	require.NoError(t, err)
	r, ok := p.FindFastestRoute("M1", "K4")
	require.True(t, ok)
	assert.Equal(t, int64(25), r.Cost)
}

func TestLoadNetwork_UnknownSource(t *testing.T) {
	_, err := loadNetwork(context.Background(), config.NetworkConfig{Source: "ftp"})
	assert.Error(t, err)
}

func TestLargest(t *testing.T) {
	assert.Equal(t, []string{"B", "C"}, largest([][]string{{"A"}, {"B", "C"}, {"D"}}))
}
