// Package llm wraps Genkit generation behind the two call shapes the
// application needs: plain text completion for chat answers, and
// document-grounded generation for ingestion summaries.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

// ErrEmptyResponse indicates the model returned no usable text.
var ErrEmptyResponse = errors.New("model returned empty response")

// Client issues generation requests against a configured model.
type Client struct {
	g           *genkit.Genkit
	modelName   string
	temperature float32
	maxTokens   int
	logger      *slog.Logger
}

// Config holds the model parameters for a client.
type Config struct {
	// ModelName is the provider-qualified model (e.g. "googleai/gemini-2.5-flash")
	ModelName   string
	Temperature float32
	MaxTokens   int
}

// New creates an LLM client. If logger is nil, slog.Default() is used.
func New(g *genkit.Genkit, cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		g:           g,
		modelName:   cfg.ModelName,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      logger,
	}
}

// Generate runs a text completion with a system instruction.
func (c *Client) Generate(ctx context.Context, system, userPrompt string) (string, error) {
	resp, err := genkit.Generate(ctx, c.g,
		ai.WithModelName(c.modelName),
		ai.WithSystem(system),
		ai.WithMessages(ai.NewUserMessage(ai.NewTextPart(userPrompt))),
		ai.WithConfig(c.generationConfig()),
	)
	if err != nil {
		return "", fmt.Errorf("generating response: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("generation complete",
		"model", c.modelName,
		"response_length", len(text))

	return text, nil
}

// GenerateFromDocument runs a completion over an attached document.
// The document is passed by URI and fetched by the provider, not
// downloaded here.
func (c *Client) GenerateFromDocument(ctx context.Context, uri, mimeType, instruction string) (string, error) {
	resp, err := genkit.Generate(ctx, c.g,
		ai.WithModelName(c.modelName),
		ai.WithMessages(ai.NewUserMessage(
			ai.NewMediaPart(mimeType, uri),
			ai.NewTextPart(instruction),
		)),
		ai.WithConfig(c.generationConfig()),
	)
	if err != nil {
		return "", fmt.Errorf("generating from document %q: %w", uri, err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("document generation complete",
		"model", c.modelName,
		"uri", uri,
		"mime_type", mimeType,
		"response_length", len(text))

	return text, nil
}

// generationConfig returns provider-agnostic generation parameters.
// Genkit plugins map these onto the provider's native config.
func (c *Client) generationConfig() map[string]any {
	return map[string]any{
		"temperature":     c.temperature,
		"maxOutputTokens": c.maxTokens,
	}
}
