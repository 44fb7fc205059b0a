// Package server exposes the render pipeline over HTTP.
//
// Routes:
//
//	GET /render?size=WxH&ul=RE,IM&lr=RE,IM[&schema=NAME][&format=png|tiff|ppm][&limit=N][&rows=N]
//	GET /render/ws?...   same query, streams band progress then the image over a websocket
//	GET /schemas         available color schemas as JSON
//	GET /healthz         liveness probe
//
// Every response carries an X-Request-ID header. Errors are JSON bodies with
// the error code; INVALID_* codes map to 400, everything else to 500.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/pipeline"
)

// DefaultMaxPixels caps the image area a single request may ask for.
const DefaultMaxPixels = 4000 * 4000

const shutdownTimeout = 10 * time.Second

// Server serves renders from a shared pipeline Runner.
type Server struct {
	runner    *pipeline.Runner
	logger    *log.Logger
	maxPixels int
	router    chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithMaxPixels overrides DefaultMaxPixels.
func WithMaxPixels(n int) Option {
	return func(s *Server) { s.maxPixels = n }
}

// New builds a Server around runner. A nil logger falls back to log.Default().
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:    runner,
		logger:    logger,
		maxPixels: DefaultMaxPixels,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/schemas", s.handleSchemas)
	r.Get("/render", s.handleRender)
	r.Get("/render/ws", s.handleRenderWS)

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then drains in-flight
// requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
