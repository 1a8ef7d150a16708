package core

import (
	"context"
	"time"
)

// RunStart describes the beginning of one traceable unit of work. The caller
// generates the id so that a sink failure never leaves a stage without an
// identifier; ParentID links a stage record to its pipeline run.
type RunStart struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parent_id,omitempty"`
	ModelID   string    `json:"model_id,omitempty"`
	Inputs    string    `json:"inputs"`
	StartedAt time.Time `json:"started_at"`
}

// RunEnd closes a previously started run with its outputs or error marker.
type RunEnd struct {
	ID      string    `json:"id"`
	Outputs string    `json:"outputs,omitempty"`
	Error   string    `json:"error,omitempty"`
	EndedAt time.Time `json:"ended_at"`
}

// Telemetry is a best-effort sink for run records. Implementations may block
// on I/O; callers treat every returned error as an advisory warning and never
// let it alter the outcome of the run being recorded.
type Telemetry interface {
	StartRun(ctx context.Context, run RunStart) error
	EndRun(ctx context.Context, run RunEnd) error
}

// NopTelemetry discards all records. It is the default sink so call sites
// never branch on telemetry being configured.
type NopTelemetry struct{}

// StartRun implements Telemetry.
func (NopTelemetry) StartRun(context.Context, RunStart) error { return nil }

// EndRun implements Telemetry.
func (NopTelemetry) EndRun(context.Context, RunEnd) error { return nil }
