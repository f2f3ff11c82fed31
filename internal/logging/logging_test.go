package logging

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fete.log")
	logger, closeFn, err := New(Config{Level: "debug", Encoding: "json", File: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Debug("record added", zap.String("kind", "guest"))
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("Expected one JSON line, got %q: %v", data, err)
	}
	if entry["msg"] != "record added" || entry["kind"] != "guest" {
		t.Errorf("Unexpected entry: %v", entry)
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("Expected timestamp key")
	}
}

func TestNewAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fete.log")
	for i := 0; i < 2; i++ {
		logger, closeFn, err := New(Config{Level: "info", Encoding: "console", File: path})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		logger.Info("started")
		_ = closeFn()
	}

	data, _ := os.ReadFile(path)
	if got := strings.Count(string(data), "started"); got != 2 {
		t.Errorf("Expected 2 lines after reopening, got %d", got)
	}
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fete.log")
	logger, closeFn, err := New(Config{Level: "chatty", File: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer func() { _ = closeFn() }()

	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Debug should be disabled at fallback level")
	}
	if !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("Info should be enabled at fallback level")
	}
}

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	ctx := ContextWithRequestID(context.Background(), "req-42")
	WithRequestID(ctx, base).Info("handled")
	WithRequestID(context.Background(), base).Info("plain")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].ContextMap()["request_id"] != "req-42" {
		t.Errorf("Expected request_id field, got %v", entries[0].ContextMap())
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Error("Logger without request ID should not carry the field")
	}
	if RequestID(ctx) != "req-42" {
		t.Errorf("RequestID = %q", RequestID(ctx))
	}
}
