package lifecycle

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestShutdownRunsHooksInReverse(t *testing.T) {
	m := New(time.Second, nil)

	var order []string
	for _, name := range []string{"backend", "logger", "http"} {
		m.Register(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}
	m.Register("ignored", nil)

	if err := m.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if got := strings.Join(order, ","); got != "http,logger,backend" {
		t.Errorf("Expected reverse order, got %s", got)
	}

	// hooks run once
	if err := m.Shutdown(context.Background()); err != nil || len(order) != 3 {
		t.Errorf("Second shutdown re-ran hooks: %v %v", err, order)
	}
}

func TestShutdownJoinsErrors(t *testing.T) {
	m := New(time.Second, nil)
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	ran := false
	m.Register("a", func(context.Context) error { return errA })
	m.Register("ok", func(context.Context) error { ran = true; return nil })
	m.Register("b", func(context.Context) error { return errB })

	err := m.Shutdown(context.Background())
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("Expected both errors, got %v", err)
	}
	if !ran {
		t.Error("A failing hook must not stop the others")
	}
}

func TestShutdownAppliesTimeout(t *testing.T) {
	m := New(10*time.Millisecond, nil)
	m.Register("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	if err := m.Shutdown(context.Background()); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
}

func TestWaitReturnsOnCancel(t *testing.T) {
	m := New(0, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := m.Wait(ctx); err != nil {
		t.Errorf("Wait returned %v", err)
	}
}
