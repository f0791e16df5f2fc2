// Package main provides the entry point for the analyzer HTTP service.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/sportsline-analyzer/internal/analyzer"
	"github.com/yourusername/sportsline-analyzer/internal/config"
	"github.com/yourusername/sportsline-analyzer/internal/logger"
	"github.com/yourusername/sportsline-analyzer/internal/metrics"
	"github.com/yourusername/sportsline-analyzer/internal/server"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
	)
	flag.Parse()

	cfg := loadConfig(*configPath)
	log := logger.New(cfg.App.LogLevel, cfg.App.Environment)

	params, weights := analyzer.FromConfig(cfg.Analysis)
	a := analyzer.New(params, weights, log)

	var cache *server.ResponseCache
	if cfg.Cache.Enabled {
		cache = server.NewResponseCache(
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
			cfg.Cache.MaxEntries,
		)
	}

	srv := server.New(cfg.Server, a, cache, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel, log)

	if cfg.Metrics.Enabled {
		startMetricsServer(ctx, cfg.Metrics.Port, log)
	}

	log.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"port":        cfg.Server.Port,
	}).Info("Starting sportsline-analyzer")

	if err := srv.Start(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func handleSignals(cancel context.CancelFunc, log *logrus.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.WithField("signal", sig.String()).Info("Shutdown signal received")
	cancel()
}

func startMetricsServer(ctx context.Context, port int, log *logrus.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go func() {
		log.WithField("port", port).Info("Metrics server starting")
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Metrics server error")
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		metricsServer.Shutdown(shutdownCtx)
	}()
}
