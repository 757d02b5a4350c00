package store

import (
	"context"
	_ "embed"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/katalvlaran/metroroute/core"
)

//go:embed schema_postgres.sql
var postgresSchema string

var _ Store = (*Postgres)(nil)

// Postgres stores a network in PostgreSQL.
type Postgres struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to databaseURL and ensures the schema.
func OpenPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Printf("store: connected to PostgreSQL")
	return &Postgres{pool: pool}, nil
}

// Save replaces the stored network with n.
func (p *Postgres) Save(ctx context.Context, n *core.Network) error {
	stops, conns := snapshot(n)

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM metro_connections`); err != nil {
		return fmt.Errorf("failed to clear connections: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM metro_stops`); err != nil {
		return fmt.Errorf("failed to clear stops: %w", err)
	}

	batch := &pgx.Batch{}
	for _, r := range stops {
		batch.Queue(`INSERT INTO metro_stops (seq, id, name, line) VALUES ($1, $2, $3, $4)`,
			r.seq, r.id, r.name, r.line)
	}
	for _, r := range conns {
		batch.Queue(`INSERT INTO metro_connections (seq, from_id, to_id, cost) VALUES ($1, $2, $3, $4)`,
			r.seq, r.from, r.to, r.cost)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert network: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	log.Printf("store: saved %d stops, %d connections", len(stops), len(conns))
	return nil
}

// Load rebuilds the stored network.
func (p *Postgres) Load(ctx context.Context) (*core.Network, error) {
	rows, err := p.pool.Query(ctx, `SELECT seq, id, name, line FROM metro_stops ORDER BY seq`)
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

	rows, err = p.pool.Query(ctx, `SELECT seq, from_id, to_id, cost FROM metro_connections ORDER BY seq`)
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

// Close closes the connection pool.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
