package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/thenoetrevino/fete/internal/config"
	"github.com/thenoetrevino/fete/internal/metrics"
	"github.com/thenoetrevino/fete/internal/models"
	recordservice "github.com/thenoetrevino/fete/internal/services/record"
	"github.com/thenoetrevino/fete/internal/storage"
	"github.com/thenoetrevino/fete/internal/store"
	"github.com/thenoetrevino/fete/internal/user"
)

// App holds the six record stores and the service built over them.
// It is created once at start and passed to whichever caller issues operations.
type App struct {
	backend storage.Backend
	codec   storage.Codec
	logger  *zap.Logger
	metrics *metrics.Metrics

	names  map[models.Kind]*store.Store[string]
	events *store.Store[models.Event]

	// Service layer (business logic)
	RecordService recordservice.Service
}

// New constructs every store over backend, loads each snapshot once and
// builds the record service. The app takes ownership of backend.
func New(ctx context.Context, backend storage.Backend, codec storage.Codec, opts ...Option) (*App, error) {
	cfg := appConfig{
		logger: zap.NewNop(),
		retry:  store.DefaultRetry(),
		author: user.GetCurrentUsername(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	storeOpts := []store.Option{
		store.WithLogger(cfg.logger),
		store.WithRetry(cfg.retry),
		store.WithAuthor(cfg.author),
	}
	if cfg.metrics != nil {
		storeOpts = append(storeOpts, store.WithRecorder(cfg.metrics))
	}

	a := &App{
		backend: backend,
		codec:   codec,
		logger:  cfg.logger,
		metrics: cfg.metrics,
		names:   make(map[models.Kind]*store.Store[string]),
	}

	start := time.Now()
	for _, kind := range models.Kinds() {
		if kind == models.KindEvent {
			a.events = store.New[models.Event](kind, backend, codec, storeOpts...)
			if err := a.events.Load(ctx); err != nil {
				return nil, fmt.Errorf("load %s: %w", kind.Plural(), err)
			}
			continue
		}
		st := store.New[string](kind, backend, codec, storeOpts...)
		if err := st.Load(ctx); err != nil {
			return nil, fmt.Errorf("load %s: %w", kind.Plural(), err)
		}
		a.names[kind] = st
	}
	cfg.logger.Info("records loaded",
		zap.String("backend", backend.Name()),
		zap.String("format", codec.Name()),
		zap.Duration("took", time.Since(start)))

	names := make(map[models.Kind]recordservice.NameStore, len(a.names))
	for kind, st := range a.names {
		names[kind] = st
	}
	svcOpts := []recordservice.Option{
		recordservice.WithLogger(cfg.logger),
		recordservice.WithStrictReferences(cfg.strict),
	}
	if cfg.metrics != nil {
		svcOpts = append(svcOpts, recordservice.WithRecorder(cfg.metrics))
	}
	a.RecordService = recordservice.NewService(names, a.events, svcOpts...)

	return a, nil
}

// Open builds the backend and codec named by cfg and loads the app
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*App, error) {
	codec, err := storage.CodecFor(cfg.Format)
	if err != nil {
		return nil, err
	}
	opts := cfg.StorageOptions(codec.Extension())
	opts.Logger = logger
	backend, err := storage.Open(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}

	a, err := New(ctx, backend, codec,
		WithLogger(logger),
		WithMetrics(m),
		WithRetry(store.RetryPolicy{Attempts: cfg.PersistRetries, BaseDelay: store.DefaultRetry().BaseDelay}),
		WithStrictReferences(cfg.StrictReferences),
	)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return a, nil
}

// Backend returns the storage backend the stores write to
func (a *App) Backend() storage.Backend {
	return a.backend
}

// Metrics returns the metrics instance, which may be nil
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}

// Logger returns the application logger
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Count returns the number of records held for kind
func (a *App) Count(kind models.Kind) int {
	if kind == models.KindEvent {
		return a.events.Len()
	}
	if st, ok := a.names[kind]; ok {
		return st.Len()
	}
	return 0
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.backend.Close()
}
