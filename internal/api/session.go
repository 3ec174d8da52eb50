package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/concierge-dev/concierge/internal/conversation"
)

// TurnReader reads conversation history. Satisfied by *conversation.Store.
type TurnReader interface {
	Turns(ctx context.Context, sessionID string) ([]conversation.Turn, error)
}

// sessionTurnsResponse is the wire shape of GET /api/v1/sessions/{id}/turns.
type sessionTurnsResponse struct {
	SessionID string              `json:"session_id"`
	Turns     []conversation.Turn `json:"turns"`
}

// sessionHandler serves read access to conversation history.
type sessionHandler struct {
	store  TurnReader
	logger *slog.Logger
}

func (h *sessionHandler) getTurns(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		WriteError(w, http.StatusBadRequest, "session id is required", h.logger)
		return
	}

	turns, err := h.store.Turns(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("loading session turns", "session_id", sessionID, "error", err)
		WriteError(w, http.StatusInternalServerError, "service temporarily unavailable", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, sessionTurnsResponse{SessionID: sessionID, Turns: turns})
}
