package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/concierge-dev/concierge/internal/ingest"
)

// Ingester runs the ingestion pipeline. Satisfied by *ingest.Orchestrator.
type Ingester interface {
	Ingest(ctx context.Context, ev ingest.Event) error
}

// ingestHandler serves storage event notifications.
//
// The ingest surface speaks plain text, matching what push-style
// storage notification services expect: a 2xx body acknowledges the
// event, any other status triggers redelivery.
type ingestHandler struct {
	ingester Ingester
	logger   *slog.Logger
}

func (h *ingestHandler) handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writePlainError(w, http.StatusBadRequest, fmt.Sprintf("Bad Request: reading body: %v", err))
		return
	}

	ev, err := ingest.ParseEvent(body)
	if err != nil {
		h.logger.Warn("rejected storage event", "error", err)
		writePlainError(w, http.StatusBadRequest, fmt.Sprintf("Bad Request: %v", err))
		return
	}

	if err := h.ingester.Ingest(r.Context(), ev); err != nil {
		h.logger.Error("ingestion failed", "bucket", ev.Bucket, "name", ev.Name, "error", err)
		writePlainError(w, http.StatusInternalServerError, fmt.Sprintf("Internal Server Error: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func writePlainError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}
