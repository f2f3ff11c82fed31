// Package lifecycle runs shutdown hooks when the process is asked to stop.
package lifecycle

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// ShutdownFunc describes a graceful shutdown callback
type ShutdownFunc func(ctx context.Context) error

type hook struct {
	name string
	fn   ShutdownFunc
}

// Manager coordinates shutdown hooks and reacts to OS signals
type Manager struct {
	timeout time.Duration
	logger  *zap.Logger

	mu    sync.Mutex
	hooks []hook
}

// New creates a manager; a non-positive timeout means 15s
func New(timeout time.Duration, logger *zap.Logger) *Manager {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{timeout: timeout, logger: logger}
}

// Register adds a hook. Hooks run in reverse registration order.
func (m *Manager) Register(name string, fn ShutdownFunc) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, hook{name: name, fn: fn})
}

// Shutdown runs every hook once within the timeout and joins their errors
func (m *Manager) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	m.mu.Lock()
	hooks := m.hooks
	m.hooks = nil
	m.mu.Unlock()

	var result error
	for i := len(hooks) - 1; i >= 0; i-- {
		h := hooks[i]
		if err := h.fn(ctx); err != nil {
			m.logger.Error("shutdown hook failed", zap.String("component", h.name), zap.Error(err))
			result = errors.Join(result, err)
			continue
		}
		m.logger.Info("component stopped", zap.String("component", h.name))
	}
	return result
}

// Wait blocks until SIGINT/SIGTERM arrives or ctx is done.
// A signal returns nil so an errgroup treats it as a clean stop.
func (m *Manager) Wait(ctx context.Context) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		m.logger.Info("shutdown signal received", zap.String("signal", sig.String()))
		return nil
	case <-ctx.Done():
		return nil
	}
}
