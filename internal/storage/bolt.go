package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var snapshotBucket = []byte("snapshots")

// BoltBackend keeps snapshots as values of a single bbolt bucket
type BoltBackend struct {
	db *bolt.DB
}

// OpenBolt opens the bolt file and ensures the snapshot bucket exists.
// bbolt holds an exclusive file lock; a second process waits at most one second.
func OpenBolt(path string) (*BoltBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt file: %w", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(snapshotBucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltBackend{db: db}, nil
}

func (b *BoltBackend) Name() string { return BackendBolt }

func (b *BoltBackend) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(snapshotBucket).Get([]byte(key))
		if v == nil {
			return ErrNotExist
		}
		// values are only valid for the life of the transaction
		out = append([]byte(nil), v...)
		return nil
	})
	return out, err
}

func (b *BoltBackend) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(snapshotBucket).Put([]byte(key), data)
	})
}

func (b *BoltBackend) Close() error {
	return b.db.Close()
}
