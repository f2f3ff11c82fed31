// Package serve runs the HTTP API
//
// e.g., fete serve --addr :8080
package serve

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/fete/internal/app"
	"github.com/thenoetrevino/fete/internal/cli"
	"github.com/thenoetrevino/fete/internal/lifecycle"
	"github.com/thenoetrevino/fete/internal/transport/httpapi"
)

const (
	requestTimeout  = 5 * time.Second
	shutdownTimeout = 15 * time.Second
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the record API over HTTP",
		Long: `Serve add, get and delete for every record kind over HTTP.

Routes:
  GET    /healthz
  POST   /api/v1/{kind}
  GET    /api/v1/{kind}/{id}
  DELETE /api/v1/{kind}/{id}
  GET    /metrics
`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (defaults to http.addr from config)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := &cli.OutputFormatter{}

	cliInstance, err := cli.GetCLIFromContext(ctx, cmd.Flags())
	if err != nil {
		return formatter.InitError(err)
	}
	defer cli.Release(cliInstance)

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cliInstance.Config.HTTP.Addr
	}

	return Run(ctx, cliInstance.App, addr)
}

// Run serves the API on addr until ctx is done or SIGINT/SIGTERM arrives
func Run(ctx context.Context, a *app.App, addr string) error {
	srv := newServer(a, addr)
	return run(ctx, a.Logger(), srv, srv.ListenAndServe)
}

// Serve is Run on an existing listener
func Serve(ctx context.Context, a *app.App, ln net.Listener) error {
	srv := newServer(a, ln.Addr().String())
	return run(ctx, a.Logger(), srv, func() error { return srv.Serve(ln) })
}

func newServer(a *app.App, addr string) *httpapi.Server {
	handler := httpapi.NewHandler(a.RecordService, httpapi.NewAdapter(requestTimeout), a.Logger())
	r := httpapi.NewRouter(handler, a.Metrics().Handler())
	return httpapi.NewServer(addr, r.Handler, a.Logger())
}

func run(ctx context.Context, logger *zap.Logger, srv *httpapi.Server, serve func() error) error {
	manager := lifecycle.New(shutdownTimeout, logger)
	manager.Register("http_server", srv.Shutdown)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(serve)
	g.Go(func() error {
		_ = manager.Wait(gctx)
		return manager.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
