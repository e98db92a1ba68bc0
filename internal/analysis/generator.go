package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ErrEmptyReport is returned when the model answers with no text.
var ErrEmptyReport = errors.New("model returned an empty report")

// Generator turns a prompt into report text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator calls the Gemini API through the genai SDK. One request
// per call; no retries.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiGenerator creates the genai client. baseURL overrides the API
// endpoint when non-empty.
func NewGeminiGenerator(ctx context.Context, apiKey, model, baseURL string, logger *zap.Logger) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiGenerator{
		client: client,
		model:  model,
		logger: logger.With(zap.String("component", "gemini"), zap.String("model", model)),
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	g.logger.Info("calling model for analysis", zap.Time("started_at", start))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyReport
	}

	g.logger.Info("model answered",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("chars", len(text)),
	)
	return text, nil
}
