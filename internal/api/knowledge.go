package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/concierge-dev/concierge/internal/knowledge"
)

// KnowledgeLister reads the knowledge base. Satisfied by *knowledge.Store.
type KnowledgeLister interface {
	ListAll(ctx context.Context) ([]knowledge.Entry, error)
}

// knowledgeEntryResponse is the wire shape of one knowledge entry.
type knowledgeEntryResponse struct {
	ID         string    `json:"id"`
	Summary    string    `json:"summary"`
	SourceFile string    `json:"source_file"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// knowledgeListResponse is the wire shape of GET /api/v1/knowledge.
type knowledgeListResponse struct {
	Entries []knowledgeEntryResponse `json:"entries"`
}

// knowledgeHandler serves read access to the knowledge base for
// operational inspection.
type knowledgeHandler struct {
	store  KnowledgeLister
	logger *slog.Logger
}

func (h *knowledgeHandler) list(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListAll(r.Context())
	if err != nil {
		h.logger.Error("listing knowledge entries", "error", err)
		WriteError(w, http.StatusInternalServerError, "service temporarily unavailable", h.logger)
		return
	}

	resp := knowledgeListResponse{Entries: make([]knowledgeEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, knowledgeEntryResponse{
			ID:         e.ID,
			Summary:    e.Summary,
			SourceFile: e.SourceFile,
			UpdatedAt:  e.UpdatedAt,
		})
	}
	WriteJSON(w, http.StatusOK, resp)
}
