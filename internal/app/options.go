package app

import (
	"go.uber.org/zap"

	"github.com/thenoetrevino/fete/internal/metrics"
	"github.com/thenoetrevino/fete/internal/store"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
	retry   store.RetryPolicy
	strict  bool
	author  string
}

// WithLogger sets the logger for the application
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithMetrics records operation and persistence metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(cfg *appConfig) {
		cfg.metrics = m
	}
}

// WithRetry sets the snapshot save retry policy of every store
func WithRetry(p store.RetryPolicy) Option {
	return func(cfg *appConfig) {
		cfg.retry = p
	}
}

// WithStrictReferences turns on event reference checks
func WithStrictReferences(strict bool) Option {
	return func(cfg *appConfig) {
		cfg.strict = strict
	}
}

// WithAuthor sets the name recorded as snapshot author
func WithAuthor(name string) Option {
	return func(cfg *appConfig) {
		cfg.author = name
	}
}
