package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// syncDir flushes a directory entry; replaced in tests
var syncDir = func(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}

// FileBackend keeps one snapshot file per key under a directory.
// Saves are atomic: a temp file is synced and renamed over the target.
type FileBackend struct {
	dir    string
	ext    string
	logger *zap.Logger
}

// NewFileBackend creates the data directory if needed
func NewFileBackend(dir, ext string) (*FileBackend, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("data directory is required")
	}
	if ext == "" {
		ext = YAMLCodec{}.Extension()
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileBackend{dir: dir, ext: ext, logger: zap.NewNop()}, nil
}

func (b *FileBackend) Name() string { return BackendFile }

// SetLogger sets the logger for warnings that do not fail a save
func (b *FileBackend) SetLogger(l *zap.Logger) {
	if l != nil {
		b.logger = l
	}
}

// Path returns the snapshot file for key
func (b *FileBackend) Path(key string) string {
	return filepath.Join(b.dir, key+b.ext)
}

func (b *FileBackend) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.Path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("failed to read %s: %w", b.Path(key), err)
	}
	return data, nil
}

func (b *FileBackend) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := b.Path(key)
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	// Committed once renamed; a failed directory flush only warns
	if err := syncDir(filepath.Dir(path)); err != nil {
		b.logger.Warn("snapshot directory sync failed",
			zap.String("path", path),
			zap.Error(err))
	}
	return nil
}

func (b *FileBackend) Close() error { return nil }

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
