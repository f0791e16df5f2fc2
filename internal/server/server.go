// Package server exposes the analyzer over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/sportsline-analyzer/internal/analyzer"
	"github.com/yourusername/sportsline-analyzer/internal/config"
	"github.com/yourusername/sportsline-analyzer/internal/models"
)

// Server is the analyzer HTTP API server.
type Server struct {
	cfg      config.ServerConfig
	analyzer *analyzer.Analyzer
	validate *validator.Validate
	cache    *ResponseCache
	logger   *logrus.Logger
	server   *http.Server
}

// New creates a server. cache may be nil to disable response caching.
func New(cfg config.ServerConfig, a *analyzer.Analyzer, cache *ResponseCache, logger *logrus.Logger) *Server {
	return &Server{
		cfg:      cfg,
		analyzer: a,
		validate: models.NewValidator(),
		cache:    cache,
		logger:   logger,
	}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Duration(s.cfg.WriteTimeoutSeconds) * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Post("/sportsline/analyze", s.handleAnalyze)
	r.Post("/sportsline/analyze/csv/moneyline", s.handleAnalyzeCSVMoneyline)
	r.Post("/sportsline/analyze/csv/spread", s.handleAnalyzeCSVSpread)

	return r
}

// Start runs the server until the context is canceled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.Router(),
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.IdleTimeoutSeconds) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("port", s.cfg.Port).Info("API server starting")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("API server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(s.cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
