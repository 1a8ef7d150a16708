// Package gemini provides a model wrapper around the official Google genai
// client.
package gemini

import (
	"context"
	"fmt"

	genai "google.golang.org/genai"

	"github.com/draftpipe/draftpipe/model"
)

// Options configures the Gemini model adapter.
type Options struct {
	Model       string
	Temperature float64
	APIKey      string
}

// Model wraps the Gemini GenerateContent API behind the generic model.Model
// interface.
type Model struct {
	client *genai.Client
	opts   Options
}

// NewModel creates a new Gemini model. Credentials default to the client's
// environment lookup unless APIKey is set.
func NewModel(ctx context.Context, optFns ...func(o *Options)) (*Model, error) {
	opts := Options{
		Model:       "gemini-2.0-flash",
		Temperature: 0.7,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Model{client: client, opts: opts}, nil
}

// Invoke implements model.Model with a single GenerateContent request.
func (m *Model) Invoke(ctx context.Context, prompt string) (string, error) {
	temp := float32(m.opts.Temperature)
	resp, err := m.client.Models.GenerateContent(ctx, m.opts.Model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{Temperature: &temp},
	)
	if err != nil {
		return "", fmt.Errorf("gemini api error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// Info implements model.Model.
func (m *Model) Info() model.Info {
	return model.Info{ID: m.opts.Model, Provider: "gemini"}
}
