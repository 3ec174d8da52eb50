package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/concierge-dev/concierge/internal/api"
	"github.com/concierge-dev/concierge/internal/app"
	"github.com/concierge-dev/concierge/internal/config"
)

// runIngestd initializes and starts the ingestion server.
func runIngestd() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	addr, err := parseAddr("ingestd", "127.0.0.1:8081")
	if err != nil {
		return fmt.Errorf("parsing address: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := slog.Default()
	logger.Info("starting ingestion server", "version", Version)

	a, err := app.Setup(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			logger.Warn("shutdown error", "error", closeErr)
		}
	}()

	ingestServer, err := api.NewIngestServer(api.IngestServerConfig{
		Logger:   logger,
		Ingester: a.Ingest,
		Pool:     a.DBPool,
	})
	if err != nil {
		return fmt.Errorf("creating ingest server: %w", err)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           ingestServer.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	logger.Info("ingestion server ready",
		"addr", addr,
		"events", "POST /",
		"health", "/health, /ready",
	)

	return serveUntilShutdown(ctx, srv, logger)
}
