// Package server implements the stackshelf HTTP render service.
//
// The service accepts shelf descriptions in the request body and answers
// with rendered artifacts or the computed layout:
//
//	POST /render?format=dae|svg|json   rendered file
//	POST /layout                       layout and boards as JSON
//	GET  /healthz                      liveness and version
//
// Descriptions may be TOML, YAML or JSON. The format follows from the
// Content-Type header and is sniffed from the body otherwise.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/stackshelf/pkg/pipeline"
)

const (
	// DefaultMaxBodyBytes limits the size of a posted description.
	DefaultMaxBodyBytes = 1 << 20

	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Config configures a [Server].
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// Runner renders descriptions. It is shared by all requests.
	Runner *pipeline.Runner
	// Logger receives request and lifecycle logs. Nil discards them.
	Logger *log.Logger
	// MaxBodyBytes limits request bodies. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// Server is the HTTP render service.
type Server struct {
	addr    string
	runner  *pipeline.Runner
	logger  *log.Logger
	maxBody int64
	server  *http.Server
}

// New creates a server from cfg. It does not start listening.
func New(cfg Config) *Server {
	s := &Server{
		addr:    cfg.Addr,
		runner:  cfg.Runner,
		logger:  cfg.Logger,
		maxBody: cfg.MaxBodyBytes,
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if s.maxBody <= 0 {
		s.maxBody = DefaultMaxBodyBytes
	}
	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// Handler returns the routed handler, for use with httptest or another server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Post("/layout", s.handleLayout)

	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully. It returns
// early with the listen error if the server cannot start.
func (s *Server) Start(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("HTTP server shutdown error", "err", err)
		return s.server.Close()
	}
	return nil
}
