package logging

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// Config selects the log destination, level and encoding
type Config struct {
	Level    string
	Encoding string // "json" or "console"
	File     string // empty writes to stderr
}

// New builds a zap logger writing to cfg.File in append mode.
// An unparseable level falls back to info.
func New(cfg Config) (*zap.Logger, func() error, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	default:
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	sink := zapcore.Lock(os.Stderr)
	closeFn := func() error { return nil }
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, err
		}
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		sink = zapcore.Lock(file)
		closeFn = file.Close
	}

	logger := zap.New(zapcore.NewCore(encoder, sink, level), zap.AddCaller())
	return logger, func() error {
		_ = logger.Sync()
		return closeFn()
	}, nil
}

// ContextWithRequestID attaches a request ID to ctx
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request ID stored in ctx, if any
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithRequestID enriches base with the request ID stored in ctx
func WithRequestID(ctx context.Context, base *zap.Logger) *zap.Logger {
	if base == nil {
		return zap.NewNop()
	}
	if id := RequestID(ctx); id != "" {
		return base.With(zap.String("request_id", id))
	}
	return base
}
