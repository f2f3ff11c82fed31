package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteBackend keeps every kind's snapshot as a row of the state table
// in a single SQLite database file.
type SQLiteBackend struct {
	stateTable
	path string
}

// OpenSQLite opens (or creates) the database at path and ensures the state table exists
func OpenSQLite(ctx context.Context, path string) (*SQLiteBackend, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite benefits from a single writer connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS state (
			bucket TEXT PRIMARY KEY,
			payload BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create state table: %w", err)
	}

	return &SQLiteBackend{
		stateTable: stateTable{
			db:         db,
			selectStmt: `SELECT payload FROM state WHERE bucket = ?`,
			upsertStmt: `INSERT INTO state (bucket, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
				ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		},
		path: path,
	}, nil
}

func (b *SQLiteBackend) Name() string { return BackendSQLite }

func (b *SQLiteBackend) Load(ctx context.Context, key string) ([]byte, error) {
	return b.load(ctx, key)
}

func (b *SQLiteBackend) Save(ctx context.Context, key string, data []byte) error {
	return b.save(ctx, key, data)
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
