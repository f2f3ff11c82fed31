package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

const defaultPostgresDSN = "postgres://localhost/fete?sslmode=disable"

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

// PostgresBackend keeps every kind's snapshot as a row of a Postgres state table
type PostgresBackend struct {
	stateTable
}

// OpenPostgres connects with the pgx driver and ensures the state table exists
func OpenPostgres(ctx context.Context, dsn string) (*PostgresBackend, error) {
	if dsn == "" {
		dsn = defaultPostgresDSN
	}
	openMu.Lock()
	db, err := sqlOpen("pgx", dsn)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure state table: %w", err)
	}
	return &PostgresBackend{
		stateTable: stateTable{
			db:         db,
			selectStmt: `SELECT payload FROM state WHERE bucket = $1`,
			upsertStmt: `INSERT INTO state (bucket, payload, updated_at) VALUES ($1, $2, now())
				ON CONFLICT (bucket) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		},
	}, nil
}

func (b *PostgresBackend) Name() string { return BackendPostgres }

func (b *PostgresBackend) Load(ctx context.Context, key string) ([]byte, error) {
	return b.load(ctx, key)
}

func (b *PostgresBackend) Save(ctx context.Context, key string, data []byte) error {
	return b.save(ctx, key, data)
}

func (b *PostgresBackend) Close() error {
	return b.db.Close()
}

// OverrideSQLOpen swaps the sql.Open function for tests and returns a restore function.
func OverrideSQLOpen(fn func(driverName, dataSourceName string) (*sql.DB, error)) func() {
	openMu.Lock()
	defer openMu.Unlock()
	prev := sqlOpen
	sqlOpen = fn
	return func() {
		openMu.Lock()
		defer openMu.Unlock()
		sqlOpen = prev
	}
}
