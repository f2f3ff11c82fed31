package cli

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/thenoetrevino/fete/internal/app"
	"github.com/thenoetrevino/fete/internal/config"
)

type contextKey string

const appKey contextKey = "app"

// WithApp returns a context carrying an already loaded app.
// Commands executed with it use that app instead of opening storage.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// AppFromContext returns the app carried by ctx, if any
func AppFromContext(ctx context.Context) (*app.App, bool) {
	if ctx == nil {
		return nil, false
	}
	a, ok := ctx.Value(appKey).(*app.App)
	return a, ok && a != nil
}

// GetCLIFromContext returns a CLI over the app carried by ctx, or opens one
func GetCLIFromContext(ctx context.Context, flags *pflag.FlagSet) (*CLI, error) {
	if a, ok := AppFromContext(ctx); ok {
		return &CLI{App: a, Config: config.Default()}, nil
	}
	return NewCLI(ctx, flags)
}
