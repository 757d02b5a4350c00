package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/metroroute/config"
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/gtfs"
	"github.com/katalvlaran/metroroute/netfile"
	"github.com/katalvlaran/metroroute/sample"
	"github.com/katalvlaran/metroroute/store"
)

// loadNetwork builds the network named by cfg.Source.
func loadNetwork(ctx context.Context, cfg config.NetworkConfig) (*core.Network, error) {
	switch cfg.Source {
	case config.SourceSample:
		return sample.Network(), nil

	case config.SourceFile:
		f, err := netfile.Load(cfg.Path)
		if err != nil {
			return nil, err
		}
		return f.Build()

	case config.SourceSQLite, config.SourcePostgres:
		st, err := openStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return st.Load(ctx)

	case config.SourceGTFS:
		feed, err := parseFeed(cfg.Path)
		if err != nil {
			return nil, err
		}
		return gtfs.BuildNetwork(feed, gtfs.BuildOptions{TransferMinutes: cfg.TransferMinutes})
	}

	return nil, fmt.Errorf("unknown network source %q", cfg.Source)
}

// openStore opens the database behind a sqlite or postgres source.
func openStore(ctx context.Context, cfg config.NetworkConfig) (store.Store, error) {
	if cfg.Source == config.SourcePostgres {
		return store.OpenPostgres(ctx, cfg.DatabaseURL)
	}
	return store.OpenSQLite(ctx, cfg.Path)
}

// parseFeed reads a GTFS zip archive or an unpacked feed directory.
func parseFeed(path string) (*gtfs.Feed, error) {
	if strings.HasSuffix(strings.ToLower(path), ".zip") {
		return gtfs.ParseZip(path)
	}
	return gtfs.Parse(os.DirFS(path))
}
