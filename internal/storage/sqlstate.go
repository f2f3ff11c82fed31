package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// stateTable stores one snapshot per bucket row. The sqlite and postgres
// backends differ only in DDL and placeholder syntax.
type stateTable struct {
	db         *sql.DB
	selectStmt string
	upsertStmt string
}

func (t *stateTable) load(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := t.db.QueryRowContext(ctx, t.selectStmt, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select snapshot %s: %w", key, err)
	}
	return payload, nil
}

func (t *stateTable) save(ctx context.Context, key string, data []byte) error {
	return withTx(ctx, t.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, t.upsertStmt, key, data); err != nil {
			return fmt.Errorf("failed to upsert snapshot %s: %w", key, err)
		}
		return nil
	})
}

// withTx executes fn within a transaction, rolling back on error
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
