package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/concierge-dev/concierge/internal/chat"
)

// maxRequestBody bounds chat request bodies at 1MB.
const maxRequestBody = 1 << 20

// Answerer runs the query pipeline. Satisfied by *chat.Orchestrator.
type Answerer interface {
	Answer(ctx context.Context, sessionID, query string) (string, error)
}

// chatRequest is the wire shape of a chat request.
type chatRequest struct {
	SessionID string `json:"session_id"`
	Query     string `json:"query"`
}

// chatResponse is the wire shape of a successful chat reply.
type chatResponse struct {
	Answer string `json:"answer"`
}

// chatHandler serves POST /api/v1/chat.
type chatHandler struct {
	answerer Answerer
	logger   *slog.Logger
}

func (h *chatHandler) send(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	answer, err := h.answerer.Answer(r.Context(), req.SessionID, req.Query)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInvalidRequest):
			WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
		case errors.Is(err, chat.ErrGenerationFailed):
			h.logger.Error("chat generation failed", "session_id", req.SessionID, "error", err)
			WriteError(w, http.StatusInternalServerError, "failed to generate answer", h.logger)
		default:
			h.logger.Error("chat pipeline failed", "session_id", req.SessionID, "error", err)
			WriteError(w, http.StatusInternalServerError, "service temporarily unavailable", h.logger)
		}
		return
	}

	WriteJSON(w, http.StatusOK, chatResponse{Answer: answer})
}
