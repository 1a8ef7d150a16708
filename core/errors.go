package core

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a missing precondition detected before any stage
// starts: no primary document, no API credential, an unresolvable model id.
// The pipeline never begins when one is returned.
type ConfigurationError struct {
	Missing string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration missing: %s", e.Missing)
}

// ModelInvocationError reports a failed model call (transport, auth, quota or
// malformed response). It is fatal to the current pipeline run; the core never
// retries.
type ModelInvocationError struct {
	ModelID string
	Cause   error
}

func (e *ModelInvocationError) Error() string {
	return fmt.Sprintf("model %q invocation failed: %v", e.ModelID, e.Cause)
}

func (e *ModelInvocationError) Unwrap() error { return e.Cause }

// AgentError attributes a stage failure to the role and model that produced
// it, so callers can surface a stage-specific message rather than a generic
// one.
type AgentError struct {
	Role    string
	ModelID string
	Cause   error
}

func (e *AgentError) Error() string {
	return fmt.Sprintf("agent %q (model %q): %v", e.Role, e.ModelID, e.Cause)
}

func (e *AgentError) Unwrap() error { return e.Cause }

// AsAgentError unwraps err to an *AgentError if one is in the chain.
func AsAgentError(err error) (*AgentError, bool) {
	var ae *AgentError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
