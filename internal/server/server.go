// Package server implements the REST API for Advisor.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mattcarrick/advisor/internal/app"
	"github.com/mattcarrick/advisor/internal/common"
)

// Generation requests can sit on the Gemini API for a while, so the write
// timeout runs well past the per-request model timeout.
const (
	readTimeout  = 30 * time.Second
	writeTimeout = 120 * time.Second
	idleTimeout  = 60 * time.Second
)

// Server owns the HTTP listener and dispatches requests into the application
// services.
type Server struct {
	app          *app.App
	server       *http.Server
	logger       *common.Logger
	shutdownChan chan struct{}
}

// NewServer builds the route table, wraps it in the middleware chain, and
// binds the listener to the configured host and port.
func NewServer(a *app.App) *Server {
	s := &Server{
		app:    a,
		logger: a.Logger,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port),
		Handler:      applyMiddleware(mux, a.Logger, a.Config, a.Storage.InternalStore()),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return s
}

// SetShutdownChannel installs the channel signalled by the /api/shutdown
// endpoint so main can exit gracefully.
func (s *Server) SetShutdownChannel(ch chan struct{}) {
	s.shutdownChan = ch
}

// Handler exposes the full middleware-wrapped handler for httptest use.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start blocks serving requests until the listener closes.
func (s *Server) Start() error {
	s.logger.Info().
		Str("addr", s.server.Addr).
		Msg("Advisor API listening")
	return s.server.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
