package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/metroroute/core"
)

// sqliteSchema is embedded at compile time from schema.sql.
//
//go:embed schema.sql
var sqliteSchema string

var _ Store = (*SQLite)(nil)

// SQLite stores a network in a SQLite database file.
type SQLite struct {
	conn    *sql.DB
	writeMu sync.Mutex // serializes Save
}

// OpenSQLite opens (or creates) the database at path and ensures the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			log.Printf("Warning: failed to set %s: %v", pragma, err)
		}
	}

	if _, err := conn.ExecContext(ctx, sqliteSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Printf("store: connected to SQLite database: %s", path)
	return &SQLite{conn: conn}, nil
}

// Save replaces the stored network with n.
func (s *SQLite) Save(ctx context.Context, n *core.Network) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	stops, conns := snapshot(n)

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM connections`); err != nil {
		return fmt.Errorf("failed to clear connections: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM stops`); err != nil {
		return fmt.Errorf("failed to clear stops: %w", err)
	}

	stopStmt, err := tx.PrepareContext(ctx, `INSERT INTO stops (seq, id, name, line) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare stop insert: %w", err)
	}
	defer stopStmt.Close()
	for _, r := range stops {
		if _, err := stopStmt.ExecContext(ctx, r.seq, r.id, r.name, r.line); err != nil {
			return fmt.Errorf("failed to insert stop %q: %w", r.id, err)
		}
	}

	connStmt, err := tx.PrepareContext(ctx, `INSERT INTO connections (seq, from_id, to_id, cost) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare connection insert: %w", err)
	}
	defer connStmt.Close()
	for _, r := range conns {
		if _, err := connStmt.ExecContext(ctx, r.seq, r.from, r.to, r.cost); err != nil {
			return fmt.Errorf("failed to insert connection %d: %w", r.seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	log.Printf("store: saved %d stops, %d connections", len(stops), len(conns))
	return nil
}

// Load rebuilds the stored network.
func (s *SQLite) Load(ctx context.Context) (*core.Network, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT seq, id, name, line FROM stops ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stops: %w", err)
	}
	var stops []stopRow
	for rows.Next() {
		var r stopRow
		if err := rows.Scan(&r.seq, &r.id, &r.name, &r.line); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan stop: %w", err)
		}
		stops = append(stops, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stops: %w", err)
	}

	rows, err = s.conn.QueryContext(ctx, `SELECT seq, from_id, to_id, cost FROM connections ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query connections: %w", err)
	}
	defer rows.Close()
	var conns []connRow
	for rows.Next() {
		var r connRow
		if err := rows.Scan(&r.seq, &r.from, &r.to, &r.cost); err != nil {
			return nil, fmt.Errorf("failed to scan connection: %w", err)
		}
		conns = append(conns, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate connections: %w", err)
	}

	return rebuild(stops, conns)
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.conn.Close()
}
