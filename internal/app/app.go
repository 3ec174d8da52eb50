// Package app provides application initialization and dependency wiring.
//
// App is the container built once at startup: Genkit, the database
// pool, the stores, and the pipeline orchestrators, with cleanup
// embedded. Both binaries (chat API and ingest server) build the same
// App and mount different HTTP surfaces on top of it.
package app

import (
	"context"
	"log/slog"

	"github.com/firebase/genkit/go/genkit"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/concierge-dev/concierge/internal/chat"
	"github.com/concierge-dev/concierge/internal/config"
	"github.com/concierge-dev/concierge/internal/conversation"
	"github.com/concierge-dev/concierge/internal/ingest"
	"github.com/concierge-dev/concierge/internal/knowledge"
	"github.com/concierge-dev/concierge/internal/llm"
)

// App is the core application container.
type App struct {
	// Configuration
	Config *config.Config

	// Core services
	Genkit    *genkit.Genkit
	DBPool    *pgxpool.Pool
	LLM       *llm.Client
	Knowledge *knowledge.Store
	Sessions  *conversation.Store

	// Pipelines
	Chat   *chat.Orchestrator
	Ingest *ingest.Orchestrator

	// Lifecycle management
	otelCleanup func()
	cancel      context.CancelFunc
}

// Close gracefully shuts down all resources.
func (a *App) Close() error {
	slog.Info("shutting down application")

	if a.cancel != nil {
		a.cancel()
	}

	if a.DBPool != nil {
		a.DBPool.Close()
		slog.Info("database pool closed")
	}

	if a.otelCleanup != nil {
		a.otelCleanup()
	}

	return nil
}
