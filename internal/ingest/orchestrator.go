// Package ingest handles object-storage events: a finalized document is
// summarized by the model and the summary is upserted into the
// knowledge base.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/concierge-dev/concierge/internal/summarize"
)

// Summarizer produces a text summary for a stored document.
// Satisfied by *summarize.Summarizer.
type Summarizer interface {
	Summarize(ctx context.Context, sourceRef, mimeType string) (string, error)
}

// KnowledgeWriter persists summaries. Satisfied by *knowledge.Store.
type KnowledgeWriter interface {
	Upsert(ctx context.Context, id, summary, sourceFile string) error
}

// Orchestrator runs the ingestion pipeline for one event at a time.
type Orchestrator struct {
	summarizer Summarizer
	store      KnowledgeWriter
	// entryID, when non-empty, keys every document under one well-known
	// id; otherwise each document is keyed by its object name
	entryID string
	// scheme is the URI scheme of the backing object store (usually "gs")
	scheme string
	logger *slog.Logger
}

// Config holds orchestrator wiring options.
type Config struct {
	// EntryID keys all documents under a single knowledge entry when set
	EntryID string
	// Scheme is the object-store URI scheme (default "gs")
	Scheme string
}

// New creates an ingestion orchestrator.
// If logger is nil, slog.Default() is used.
func New(summarizer Summarizer, store KnowledgeWriter, cfg Config, logger *slog.Logger) *Orchestrator {
	if cfg.Scheme == "" {
		cfg.Scheme = "gs"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		summarizer: summarizer,
		store:      store,
		entryID:    cfg.EntryID,
		scheme:     cfg.Scheme,
		logger:     logger,
	}
}

// Ingest summarizes the document named by the event and upserts the
// summary into the knowledge base.
func (o *Orchestrator) Ingest(ctx context.Context, ev Event) error {
	sourceRef := fmt.Sprintf("%s://%s/%s", o.scheme, ev.Bucket, ev.Name)
	mimeType := summarize.MimeType(ev.Name)

	o.logger.Info("ingesting document",
		"bucket", ev.Bucket,
		"name", ev.Name,
		"mime_type", mimeType)

	summary, err := o.summarizer.Summarize(ctx, sourceRef, mimeType)
	if err != nil {
		return fmt.Errorf("ingesting %q: %w", sourceRef, err)
	}

	id := o.entryID
	if id == "" {
		id = ev.Name
	}

	if err := o.store.Upsert(ctx, id, summary, sourceRef); err != nil {
		return fmt.Errorf("storing summary for %q: %w", sourceRef, err)
	}

	o.logger.Info("document ingested", "entry_id", id, "source", sourceRef)
	return nil
}
