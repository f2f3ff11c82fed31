package httpapi

import (
	"context"
	"net"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Server runs the API on a fasthttp server
type Server struct {
	srv    *fasthttp.Server
	addr   string
	logger *zap.Logger
}

// NewServer creates a server for handler listening on addr
func NewServer(addr string, handler fasthttp.RequestHandler, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		srv: &fasthttp.Server{
			Handler:      handler,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
			Name:         "fete",
		},
		addr:   addr,
		logger: logger,
	}
}

// ListenAndServe blocks serving requests until Shutdown is called
func (s *Server) ListenAndServe() error {
	s.logger.Info("server started", zap.String("address", s.addr))
	return s.srv.ListenAndServe(s.addr)
}

// Serve blocks serving requests from ln until Shutdown is called
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("server started", zap.String("address", ln.Addr().String()))
	return s.srv.Serve(ln)
}

// Shutdown stops accepting connections and waits for open ones to finish
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.ShutdownWithContext(ctx)
}
