package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/snake-showdown/internal/config"
	"github.com/snake-showdown/internal/handler"
	"github.com/snake-showdown/internal/metrics"
	"github.com/snake-showdown/internal/session"
	"github.com/snake-showdown/internal/store"
	"github.com/snake-showdown/internal/websocket"
	"github.com/snake-showdown/internal/worker"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("failed to load config file, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Seed the in-memory store; a seeding failure is fatal
	st := store.New(logger)
	if err := st.Seed(); err != nil {
		logger.Error("failed to seed store", "error", err)
		os.Exit(1)
	}

	// Session manager backing the bearer-token identity layer
	sessions := session.NewManager()

	// Metrics
	var collector *metrics.Collector
	registry := prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(registry)
	}

	// Spectator websocket hub
	hub := websocket.NewHub(spectatorObserver(collector), logger)
	go hub.Run()

	// Spectator feed worker
	feedWorker := worker.NewFeedWorker(hub, st, &cfg.Spectate, logger)
	if cfg.Spectate.Enabled {
		if err := feedWorker.Start(ctx); err != nil {
			logger.Error("failed to start feed worker", "error", err)
			os.Exit(1)
		}
	}

	// HTTP handler
	httpHandler := handler.NewHandler(st, sessions, hub, collector, logger)
	mux := http.NewServeMux()
	mux.Handle("/", httpHandler.Router())
	if cfg.Metrics.Enabled {
		mux.Handle("/metrics", metrics.Handler(registry))
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("starting HTTP server", "port", cfg.Server.Port)
		logger.Info("spectator websocket available at /spectate/ws")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	hub.Stop()

	if err := feedWorker.Stop(); err != nil {
		logger.Error("failed to stop feed worker", "error", err)
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	}

	logger.Info("server stopped")
}

// spectatorObserver converts the collector to the hub's observer
// interface. With metrics disabled the collector pointer is nil and
// must become a nil interface; an interface holding a typed nil would
// pass the hub's nil check and panic on the first connection.
func spectatorObserver(collector *metrics.Collector) websocket.ConnectionObserver {
	if collector == nil {
		return nil
	}
	return collector
}
