// Package knowledge persists document summaries used as answer context.
//
// The store is a thin layer over PostgreSQL: upserts are last-write-wins
// on the entry id, and reads return every entry in stable id order so
// prompt assembly is deterministic.
package knowledge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/concierge-dev/concierge/internal/sqlc"
)

// Querier defines the database operations the store needs.
// Consumer-defined interface satisfied by *sqlc.Queries.
type Querier interface {
	UpsertKnowledgeEntry(ctx context.Context, arg sqlc.UpsertKnowledgeEntryParams) error
	ListKnowledgeEntries(ctx context.Context) ([]sqlc.KnowledgeEntry, error)
}

// Store provides knowledge entry persistence.
type Store struct {
	queries Querier
	logger  *slog.Logger
}

// New creates a knowledge store.
// If logger is nil, slog.Default() is used.
func New(querier Querier, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		queries: querier,
		logger:  logger,
	}
}

// Upsert writes an entry, replacing any existing entry with the same id.
func (s *Store) Upsert(ctx context.Context, id, summary, sourceFile string) error {
	if id == "" {
		return fmt.Errorf("entry id cannot be empty")
	}

	err := s.queries.UpsertKnowledgeEntry(ctx, sqlc.UpsertKnowledgeEntryParams{
		ID:         id,
		Summary:    summary,
		SourceFile: sourceFile,
	})
	if err != nil {
		return fmt.Errorf("upserting knowledge entry %q: %w", id, err)
	}

	s.logger.Info("knowledge entry upserted",
		"entry_id", id,
		"source_file", sourceFile,
		"summary_length", len(summary))

	return nil
}

// ListAll returns every entry ordered by id.
// An empty knowledge base returns an empty slice and no error.
func (s *Store) ListAll(ctx context.Context) ([]Entry, error) {
	rows, err := s.queries.ListKnowledgeEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing knowledge entries: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			ID:         row.ID,
			Summary:    row.Summary,
			SourceFile: row.SourceFile,
			UpdatedAt:  row.UpdatedAt.Time,
		})
	}
	return entries, nil
}
