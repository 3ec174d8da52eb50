// Package summarize turns stored documents into knowledge-base text.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrEmptySummary indicates the model produced no summary text.
var ErrEmptySummary = errors.New("empty summary")

// extractionInstruction asks the model for a structured schedule
// summary suitable for answering attendee questions later.
const extractionInstruction = `You are a helpful conference assistant.
Analyze the attached document (which is a conference schedule).
Extract a structured summary of the conference schedule, including:
- Key speakers
- Topics covered
- Session times

Format the output as a clean, readable text summary that can be used to answer user questions.`

// Generator is the generation capability the summarizer needs.
// Satisfied by *llm.Client.
type Generator interface {
	GenerateFromDocument(ctx context.Context, uri, mimeType, instruction string) (string, error)
}

// MimeType returns the MIME type for an object name.
// Plain-text files are recognized by suffix; everything else is
// treated as PDF, the dominant format for uploaded schedules.
func MimeType(name string) string {
	if strings.HasSuffix(name, ".txt") {
		return "text/plain"
	}
	return "application/pdf"
}

// Summarizer produces document summaries via an LLM.
type Summarizer struct {
	gen    Generator
	logger *slog.Logger
}

// New creates a summarizer. If logger is nil, slog.Default() is used.
func New(gen Generator, logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{gen: gen, logger: logger}
}

// Summarize extracts a text summary from the document at sourceRef.
func (s *Summarizer) Summarize(ctx context.Context, sourceRef, mimeType string) (string, error) {
	s.logger.Info("summarizing document", "source", sourceRef, "mime_type", mimeType)

	summary, err := s.gen.GenerateFromDocument(ctx, sourceRef, mimeType, extractionInstruction)
	if err != nil {
		return "", fmt.Errorf("summarizing %q: %w", sourceRef, err)
	}
	if summary == "" {
		return "", fmt.Errorf("summarizing %q: %w", sourceRef, ErrEmptySummary)
	}

	s.logger.Info("document summarized",
		"source", sourceRef,
		"summary_length", len(summary))

	return summary, nil
}
