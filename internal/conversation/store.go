// Package conversation persists per-session dialogue history.
//
// Each session row holds its turns as a single JSONB array. Appends go
// through a server-side array concatenation (turns || new), so two
// concurrent appends to the same session both land; there is no
// read-modify-write cycle to lose.
package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/concierge-dev/concierge/internal/sqlc"
)

// Querier defines the database operations the store needs.
// Consumer-defined interface satisfied by *sqlc.Queries.
type Querier interface {
	GetConversationSession(ctx context.Context, sessionID string) (sqlc.ConversationSession, error)
	AppendConversationTurns(ctx context.Context, arg sqlc.AppendConversationTurnsParams) error
}

// Store provides conversation history persistence.
type Store struct {
	queries Querier
	logger  *slog.Logger
}

// New creates a conversation store.
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

// Turns returns the full history for a session in append order.
// An unknown session returns an empty slice and no error.
func (s *Store) Turns(ctx context.Context, sessionID string) ([]Turn, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id cannot be empty")
	}

	row, err := s.queries.GetConversationSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []Turn{}, nil
		}
		return nil, fmt.Errorf("getting session %q: %w", sessionID, err)
	}

	var turns []Turn
	if err := json.Unmarshal(row.Turns, &turns); err != nil {
		return nil, fmt.Errorf("decoding turns for session %q: %w", sessionID, err)
	}
	if turns == nil {
		turns = []Turn{}
	}
	return turns, nil
}

// AppendTurn appends one turn to a session, creating the session on
// first use. The append is atomic in the database, so concurrent
// appends to the same session never overwrite each other.
func (s *Store) AppendTurn(ctx context.Context, sessionID string, turn Turn) error {
	if sessionID == "" {
		return fmt.Errorf("session id cannot be empty")
	}

	data, err := json.Marshal([]Turn{turn})
	if err != nil {
		return fmt.Errorf("encoding turn: %w", err)
	}

	err = s.queries.AppendConversationTurns(ctx, sqlc.AppendConversationTurnsParams{
		SessionID: sessionID,
		Turns:     data,
	})
	if err != nil {
		return fmt.Errorf("appending turn to session %q: %w", sessionID, err)
	}

	s.logger.Debug("conversation turn appended", "session_id", sessionID)
	return nil
}
