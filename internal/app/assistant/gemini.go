package assistant

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/samuel-avson/retrofolio/internal/domain"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-1.5-flash"

// Generation settings match the tuned persona: low-ish creativity,
// short answers.
const (
	geminiTemperature     = 0.7
	geminiMaxOutputTokens = 500
	geminiTimeout         = 30 * time.Second
)

// GeminiCompleter implements Completer on the Gemini API.
type GeminiCompleter struct {
	client *genai.Client
	model  string
	system string
}

// NewGemini creates a Gemini-backed completer. The catalog is rendered
// once into the persona prompt at construction.
func NewGemini(ctx context.Context, apiKey, model string, data domain.PortfolioData) (*GeminiCompleter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiCompleter{
		client: client,
		model:  model,
		system: systemContext(data),
	}, nil
}

// Complete sends one question and returns the model's text. A timeout
// is applied when the caller did not set a deadline.
func (g *GeminiCompleter) Complete(ctx context.Context, message string) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, geminiTimeout)
		defer cancel()
	}

	prompt := fmt.Sprintf("User's question: %q\n\nRespond in first person, keeping it professional and informative. Be concise but helpful.", message)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(geminiTemperature)),
		MaxOutputTokens:   geminiMaxOutputTokens,
		SystemInstruction: genai.NewContentFromText(g.system, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}
	return resp.Text(), nil
}
