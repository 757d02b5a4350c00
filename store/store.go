// Package store persists a core.Network to SQLite or PostgreSQL.
//
// Both backends keep registration order: Save writes stops and connections
// with their position, and Load replays them in that order, so the loaded
// network iterates, persists and searches exactly like the saved one.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/metroroute/core"
)

// ErrEmpty indicates that Load found no stored network.
var ErrEmpty = errors.New("store: no network stored")

// Store saves and loads one network.
type Store interface {
	// Save replaces the stored network with n in one transaction.
	Save(ctx context.Context, n *core.Network) error
	// Load rebuilds the stored network. It returns ErrEmpty when nothing is stored.
	Load(ctx context.Context) (*core.Network, error)
	Close() error
}

// stopRow and connRow are the persisted forms.
type stopRow struct {
	seq            int
	id, name, line string
}

type connRow struct {
	seq      int
	from, to string
	cost     int64
}

// snapshot flattens n into ordered rows.
func snapshot(n *core.Network) ([]stopRow, []connRow) {
	stops := n.Stops()
	srows := make([]stopRow, len(stops))
	for i, s := range stops {
		srows[i] = stopRow{seq: i, id: s.ID(), name: s.Name(), line: s.Line()}
	}
	conns := n.Connections()
	crows := make([]connRow, len(conns))
	for i, c := range conns {
		crows[i] = connRow{seq: i, from: c.From, to: c.To, cost: c.Cost}
	}

	return srows, crows
}

// rebuild replays ordered rows into a new network.
func rebuild(stops []stopRow, conns []connRow) (*core.Network, error) {
	if len(stops) == 0 {
		return nil, ErrEmpty
	}
	n := core.NewNetwork()
	for _, s := range stops {
		if err := n.AddStop(s.id, s.name, s.line); err != nil {
			return nil, fmt.Errorf("store: stop %q: %w", s.id, err)
		}
	}
	for _, c := range conns {
		if err := n.AddConnection(c.from, c.to, c.cost); err != nil {
			return nil, fmt.Errorf("store: connection %d: %w", c.seq, err)
		}
	}

	return n, nil
}
