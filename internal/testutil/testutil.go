// Package testutil provides helpers shared by package tests
package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/thenoetrevino/fete/internal/app"
	"github.com/thenoetrevino/fete/internal/storage"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stdout, fn)
}

// CaptureStderr captures stderr during function execution
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stderr, fn)
}

func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	original := *target

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	*target = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	*target = original

	return <-outC
}

// NewTestApp creates an app over a yaml file backend in a temporary
// directory and returns it with that directory. The app is closed when
// the test ends.
func NewTestApp(t *testing.T, opts ...app.Option) (*app.App, string) {
	t.Helper()

	dir := t.TempDir()
	backend, err := storage.NewFileBackend(dir, storage.YAMLCodec{}.Extension())
	if err != nil {
		t.Fatalf("Failed to create file backend: %v", err)
	}

	opts = append([]app.Option{app.WithAuthor("tester")}, opts...)
	a, err := app.New(context.Background(), backend, storage.YAMLCodec{}, opts...)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	return a, dir
}
