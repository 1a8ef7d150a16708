// Package openai provides an implementation of model.Model using the OpenAI
// Chat Completions API. Because the pipeline talks to one completion per
// stage, only the non-streaming path is exposed. The adapter also covers
// OpenRouter, whose API is OpenAI-compatible and only differs in base URL and
// credential.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/draftpipe/draftpipe/model"
)

// OpenRouterBaseURL is the OpenAI-compatible endpoint of openrouter.ai.
const OpenRouterBaseURL = "https://openrouter.ai/api/v1"

// Options configure the OpenAI model adapter. Fields mirror a subset of Chat
// Completion parameters intentionally kept minimal; extend via functional
// options without breaking callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
	APIKey              string
	BaseURL             string
}

// Model wraps the OpenAI Chat Completions API behind the generic model.Model
// interface.
type Model struct {
	client *openai.Client
	opts   Options
}

// NewModel creates a new OpenAI model using the official client. Credentials
// default to the SDK's environment lookup unless APIKey is set.
func NewModel(optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}

	client := openai.NewClient(clientOpts...)
	return &Model{client: &client, opts: opts}
}

// NewModelFromClient creates a new OpenAI model from an existing client.
func NewModelFromClient(client *openai.Client, optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts}
}

// NewOpenRouterModel creates a model served through OpenRouter.
func NewOpenRouterModel(apiKey, modelID string, optFns ...func(o *Options)) *Model {
	fns := append([]func(o *Options){func(o *Options) {
		o.APIKey = apiKey
		o.BaseURL = OpenRouterBaseURL
		o.Model = modelID
	}}, optFns...)
	return NewModel(fns...)
}

// Invoke implements model.Model with a single non-streaming completion.
func (m *Model) Invoke(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: m.opts.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(m.opts.Temperature),
		MaxCompletionTokens: openai.Int(m.opts.MaxCompletionTokens),
	}

	resp, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// Info implements model.Model.
func (m *Model) Info() model.Info {
	provider := "openai"
	if m.opts.BaseURL == OpenRouterBaseURL {
		provider = "openrouter"
	}
	return model.Info{ID: m.opts.Model, Provider: provider}
}
