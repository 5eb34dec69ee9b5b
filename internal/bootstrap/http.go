package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ecomshop/shop-api/internal/config"
)

const (
	maxHeaderBytes    = 1 << 20 // 1 MB
	readHeaderTimeout = 5 * time.Second
)

// Server owns the HTTP listener lifecycle
type Server struct {
	cfg    *config.Config
	server *http.Server
}

// New creates a server for handler using the configured port and timeouts
func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		cfg: cfg,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.App.Port),
			Handler:           handler,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
			MaxHeaderBytes:    maxHeaderBytes,
		},
	}
}

func (s *Server) Port() int {
	return s.cfg.App.Port
}

func (s *Server) Addr() string {
	return s.server.Addr
}

// Start blocks until the server stops. After Shutdown it returns
// http.ErrServerClosed.
func (s *Server) Start() error {
	slog.Info("서버 시작 중",
		"addr", s.server.Addr,
		"env", s.cfg.App.Env,
		"read_timeout", s.cfg.Server.ReadTimeout,
		"write_timeout", s.cfg.Server.WriteTimeout,
		"idle_timeout", s.cfg.Server.IdleTimeout,
	)

	return s.server.ListenAndServe()
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	slog.Info("HTTP 서버 종료됨", "addr", s.server.Addr)
	return nil
}
