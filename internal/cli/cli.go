package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/thenoetrevino/fete/internal/app"
	"github.com/thenoetrevino/fete/internal/config"
	"github.com/thenoetrevino/fete/internal/logging"
	"github.com/thenoetrevino/fete/internal/metrics"
	"github.com/thenoetrevino/fete/internal/theme"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with the record service
	Config *config.Config

	closeLog func() error
	owned    bool
}

// NewCLI loads configuration, sets up logging and opens every record store.
// Global flags set on flags override the configuration.
func NewCLI(ctx context.Context, flags *pflag.FlagSet) (*CLI, error) {
	cfg, err := LoadConfig(flags)
	if err != nil {
		return nil, err
	}
	theme.Init(cfg.Theme)

	logger, closeLog, err := logging.New(logging.Config{
		Level:    cfg.Log.Level,
		Encoding: cfg.Log.Encoding,
		File:     cfg.Log.File,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	application, err := app.Open(ctx, cfg, logger, metrics.New())
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	return &CLI{
		App:      application,
		Config:   cfg,
		closeLog: closeLog,
		owned:    true,
	}, nil
}

// LoadConfig reads the configuration and applies the global flag overrides
func LoadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cfg, flags)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyFlagOverrides copies explicitly set global flags into cfg
func applyFlagOverrides(cfg *config.Config, flags *pflag.FlagSet) {
	if flags == nil {
		return
	}
	overrides := map[string]*string{
		"data-dir": &cfg.DataDir,
		"backend":  &cfg.Backend,
		"format":   &cfg.Format,
	}
	for name, target := range overrides {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		*target = f.Value.String()
	}
}

// Logger returns the application logger
func (c *CLI) Logger() *zap.Logger {
	return c.App.Logger()
}

// Close releases storage and flushes the log when the CLI opened them.
// An app injected through the context is left to its owner.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.closeLog != nil {
		err = errors.Join(err, c.closeLog())
	}
	return err
}

// Release closes c and reports a failure on stderr
func Release(c *CLI) {
	if err := c.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing CLI: %v\n", err)
	}
}
