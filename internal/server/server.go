// Package server exposes the activity registry over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"activity-registry/internal/common/config"
	errs "activity-registry/internal/common/errors"
	"activity-registry/internal/common/logger"
	"activity-registry/internal/common/observability"
	"activity-registry/internal/events"
	"activity-registry/internal/registry"
)

// Server wires the registry, event publisher, and HTTP routes together.
type Server struct {
	cfg        *config.Config
	registry   *registry.Registry
	publisher  events.Publisher
	logger     logger.Logger
	errHandler *errs.ErrorHandler
	obs        *observability.Observability

	httpServer *http.Server
}

// New builds a server around an already-seeded registry.
func New(cfg *config.Config, reg *registry.Registry, pub events.Publisher, obs *observability.Observability, log logger.Logger) *Server {
	s := &Server{
		cfg:        cfg,
		registry:   reg,
		publisher:  pub,
		logger:     log,
		errHandler: errs.NewErrorHandler(log),
		obs:        obs,
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.Server.StaticDir))))

	mux.HandleFunc("GET /activities", s.handleListActivities)
	mux.HandleFunc("POST /activities/{activity}/signup", s.handleSignup)
	mux.HandleFunc("POST /activities/{activity}/unregister", s.handleUnregister)

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s.withMiddleware(mux)
}

// Start begins serving. It blocks until the listener fails or the
// server is shut down.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", map[string]interface{}{
		"address": s.cfg.Server.Address,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the full route tree, used directly in tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ready",
		"activities": s.registry.Len(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
