// Package chat answers user questions against the knowledge base.
//
// One Answer call runs the whole query pipeline: validate the request,
// load knowledge and history, assemble the prompt, generate, then
// record the completed turn. Recording is best-effort; a persistence
// failure after a successful generation is logged, not surfaced, so
// the user still gets their answer.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/concierge-dev/concierge/internal/conversation"
	"github.com/concierge-dev/concierge/internal/knowledge"
)

var (
	// ErrInvalidRequest indicates a request missing a session id or query.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrGenerationFailed indicates the model call failed or returned nothing.
	ErrGenerationFailed = errors.New("generation failed")
)

// KnowledgeStore is the knowledge capability the orchestrator needs.
// Satisfied by *knowledge.Store.
type KnowledgeStore interface {
	ListAll(ctx context.Context) ([]knowledge.Entry, error)
}

// ConversationStore is the history capability the orchestrator needs.
// Satisfied by *conversation.Store.
type ConversationStore interface {
	Turns(ctx context.Context, sessionID string) ([]conversation.Turn, error)
	AppendTurn(ctx context.Context, sessionID string, turn conversation.Turn) error
}

// Assembler builds the system instruction and user prompt.
// Satisfied by *prompt.Assembler.
type Assembler interface {
	Assemble(entries []knowledge.Entry, history []conversation.Turn, question string) (system, userPrompt string)
}

// Generator runs the model call. Satisfied by *llm.Client.
type Generator interface {
	Generate(ctx context.Context, system, userPrompt string) (string, error)
}

// Orchestrator runs the query pipeline.
type Orchestrator struct {
	knowledge KnowledgeStore
	sessions  ConversationStore
	assembler Assembler
	generator Generator
	logger    *slog.Logger
}

// New creates a chat orchestrator.
// If logger is nil, slog.Default() is used.
func New(ks KnowledgeStore, cs ConversationStore, asm Assembler, gen Generator, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		knowledge: ks,
		sessions:  cs,
		assembler: asm,
		generator: gen,
		logger:    logger,
	}
}

// Answer produces a grounded answer for one user query and records the
// turn in the session's history.
func (o *Orchestrator) Answer(ctx context.Context, sessionID, query string) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("%w: session_id is required", ErrInvalidRequest)
	}
	if query == "" {
		return "", fmt.Errorf("%w: query is required", ErrInvalidRequest)
	}

	entries, err := o.knowledge.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("loading knowledge: %w", err)
	}

	history, err := o.sessions.Turns(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("loading history: %w", err)
	}

	system, userPrompt := o.assembler.Assemble(entries, history, query)

	answer, err := o.generator.Generate(ctx, system, userPrompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	turn := conversation.Turn{User: query, Model: answer}
	if err := o.sessions.AppendTurn(ctx, sessionID, turn); err != nil {
		// The answer was already generated; losing one history turn is
		// better than failing the whole request
		o.logger.Warn("failed to record conversation turn",
			"session_id", sessionID,
			"error", err)
	}

	o.logger.Info("query answered",
		"session_id", sessionID,
		"knowledge_entries", len(entries),
		"history_turns", len(history),
		"answer_length", len(answer))

	return answer, nil
}
