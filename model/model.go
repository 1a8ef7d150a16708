package model

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Info contains metadata about a model implementation.
type Info struct {
	ID       string `json:"id"`
	Provider string `json:"provider"` // "openai", "openrouter", "anthropic", "gemini", "mock"
}

// Model is the minimal interface required to drive one generation stage:
// a single prompt in, a single completion out. Implementations must honor
// context cancellation and must not retry internally on behalf of the caller.
type Model interface {
	Invoke(ctx context.Context, prompt string) (string, error)

	// Info returns information about the model implementation.
	Info() Info
}

// Registry maps user-facing model ids (as they appear in AgentConfig.ModelID)
// to implementations. It is safe for concurrent use; registration normally
// happens once at startup.
type Registry struct {
	mu     sync.RWMutex
	models map[string]Model
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]Model)}
}

// Register binds id to m, replacing any previous binding.
func (r *Registry) Register(id string, m Model) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[id] = m
}

// Resolve returns the model bound to id.
func (r *Registry) Resolve(id string) (Model, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.models[id]
	return m, ok
}

// IDs returns the registered model ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.models))
	for id := range r.models {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// Responses are matched by prompt substring; calls can be scripted to fail.
type MockModel struct {
	mu        sync.Mutex
	info      Info
	responses []cannedResponse
	failures  map[int]error // 1-based call numbers that fail
	calls     []string
}

type cannedResponse struct {
	match    string
	response string
}

// NewMockModel constructs a MockModel with the given id.
func NewMockModel(id string) *MockModel {
	return &MockModel{
		info:     Info{ID: id, Provider: "mock"},
		failures: make(map[int]error),
	}
}

// AddResponse registers a canned completion returned for any prompt
// containing match. Registrations are checked in insertion order.
func (m *MockModel) AddResponse(match, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, cannedResponse{match: match, response: response})
}

// FailOnCall scripts the n-th Invoke (1-based) to return err.
func (m *MockModel) FailOnCall(n int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[n] = err
}

// Calls returns the prompts received so far in order.
func (m *MockModel) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// Invoke implements Model.
func (m *MockModel) Invoke(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, prompt)
	if err, ok := m.failures[len(m.calls)]; ok {
		return "", err
	}
	for _, c := range m.responses {
		if strings.Contains(prompt, c.match) {
			return c.response, nil
		}
	}
	return fmt.Sprintf("Mock response to %d prompt bytes", len(prompt)), nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
