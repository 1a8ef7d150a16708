package core

import "time"

// ProgressEvent is emitted at each stage boundary of a pipeline run. Percent
// is monotonically non-decreasing within a run and frozen at the last
// successful value when a stage fails.
type ProgressEvent struct {
	RunID     string    `json:"run_id"`
	Stage     string    `json:"stage,omitempty"`
	Percent   int       `json:"percent"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ProgressFunc receives progress events synchronously in emission order.
// Implementations must be fast or hand off to their own goroutine; the
// orchestrator does not buffer.
type ProgressFunc func(ProgressEvent)

// NopProgress ignores all events.
func NopProgress(ProgressEvent) {}
