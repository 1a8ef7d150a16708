// Package config loads process-level settings and the user-editable agent
// profiles (persona, task, output format and model per role). Profiles are
// plain values: the pipeline snapshots them at run start, so editing a
// profile never affects a run already in flight.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds the environment-derived settings the module reads at startup.
type Env struct {
	OpenRouterAPIKey string
	AnthropicAPIKey  string
	GeminiAPIKey     string
	TraceDir         string
	CollectorURL     string
	CollectorAPIKey  string
	Models           []string
}

// defaultModels mirror the fallback selection offered when no model list is
// configured.
var defaultModels = []string{
	"qwen/qwen-max",
	"deepseek/deepseek-chat-v3-0324:free",
	"qwen-turbo",
}

// LoadEnv reads a .env file if present, then the process environment.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		TraceDir:         os.Getenv("DRAFTPIPE_TRACE_DIR"),
		CollectorURL:     os.Getenv("DRAFTPIPE_COLLECTOR_URL"),
		CollectorAPIKey:  os.Getenv("DRAFTPIPE_COLLECTOR_API_KEY"),
		Models:           splitModels(os.Getenv("DRAFTPIPE_MODELS")),
	}
}

// ModelList returns the configured model ids, falling back to the default
// selection when none are set.
func (e Env) ModelList() []string {
	if len(e.Models) > 0 {
		return e.Models
	}
	return defaultModels
}

func splitModels(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}
