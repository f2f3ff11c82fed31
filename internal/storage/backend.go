// Package storage persists whole-kind snapshots.
//
// A backend stores one opaque snapshot per key and always replaces it in full;
// encoding the snapshot is the codec's job.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrNotExist is returned by Load when no snapshot was ever saved for a key
var ErrNotExist = errors.New("snapshot does not exist")

// Backend names accepted by Open
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendBolt     = "bolt"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendS3       = "s3"
)

// Backend reads and writes complete snapshots keyed by a kind's plural stem.
type Backend interface {
	// Name identifies the backend in logs and metrics
	Name() string

	// Load returns the last saved snapshot for key, or ErrNotExist
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the snapshot for key with data
	Save(ctx context.Context, key string, data []byte) error

	// Close releases connections and file locks held by the backend
	Close() error
}

// Options selects and configures a backend
type Options struct {
	Backend     string
	DataDir     string
	Extension   string // file and s3 object suffix, taken from the codec
	PostgresDSN string
	RedisURL    string
	RedisPrefix string
	S3          S3Options
	Logger      *zap.Logger
}

// Backends returns the names Open understands
func Backends() []string {
	return []string{BackendFile, BackendSQLite, BackendBolt, BackendPostgres, BackendRedis, BackendS3}
}

// Open builds the backend named by opts.Backend
func Open(ctx context.Context, opts Options) (Backend, error) {
	switch strings.ToLower(opts.Backend) {
	case "", BackendFile:
		b, err := NewFileBackend(opts.DataDir, opts.Extension)
		if err != nil {
			return nil, err
		}
		b.SetLogger(opts.Logger)
		return b, nil
	case BackendSQLite:
		return OpenSQLite(ctx, filepath.Join(opts.DataDir, "fete.db"))
	case BackendBolt:
		return OpenBolt(filepath.Join(opts.DataDir, "fete.bolt"))
	case BackendPostgres:
		return OpenPostgres(ctx, opts.PostgresDSN)
	case BackendRedis:
		return OpenRedis(ctx, opts.RedisURL, opts.RedisPrefix)
	case BackendS3:
		s3opts := opts.S3
		if s3opts.Extension == "" {
			s3opts.Extension = opts.Extension
		}
		return OpenS3(ctx, s3opts)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (must be one of: %s)", opts.Backend, strings.Join(Backends(), ", "))
	}
}
