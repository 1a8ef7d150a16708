package core

import (
	"time"

	"github.com/google/uuid"
)

// Status describes the lifecycle position of a PipelineRun.
type Status string

const (
	// StatusPending means the run has been created but no stage has started.
	StatusPending Status = "pending"
	// StatusRunning means at least one stage is executing or queued.
	StatusRunning Status = "running"
	// StatusSucceeded means every non-skipped stage completed.
	StatusSucceeded Status = "succeeded"
	// StatusFailed means a stage failed and the chain halted there.
	StatusFailed Status = "failed"
)

// StageResult captures the outcome of a single agent invocation within a run.
// Results are append-only: once recorded on a PipelineRun they are never
// mutated. Err is nil iff the stage succeeded; a failed stage carries no
// Output but keeps the fully assembled Prompt for inspection.
type StageResult struct {
	Role     string        `json:"role"`
	ModelID  string        `json:"model_id"`
	Prompt   string        `json:"prompt"`
	Output   string        `json:"output,omitempty"`
	RunID    string        `json:"run_id"`
	Err      error         `json:"-"`
	Duration time.Duration `json:"duration"`
}

// Succeeded reports whether the stage produced output.
func (s StageResult) Succeeded() bool { return s.Err == nil }

// PipelineRun is one end-to-end execution of a pipeline. It owns its stage
// results exclusively; there is no rollback — a failure leaves the results of
// prior successful stages in place for the caller to inspect.
type PipelineRun struct {
	ID        string        `json:"id"`
	Pipeline  string        `json:"pipeline"`
	Status    Status        `json:"status"`
	Stages    []StageResult `json:"stages"`
	StartedAt time.Time     `json:"started_at"`
	EndedAt   time.Time     `json:"ended_at,omitempty"`
}

// NewPipelineRun creates a pending run with a fresh identifier. The id also
// serves as the parent run id for per-stage telemetry records.
func NewPipelineRun(pipeline string) *PipelineRun {
	return &PipelineRun{
		ID:        NewID(),
		Pipeline:  pipeline,
		Status:    StatusPending,
		StartedAt: time.Now().UTC(),
	}
}

// AddStage appends a stage result in program order.
func (r *PipelineRun) AddStage(s StageResult) { r.Stages = append(r.Stages, s) }

// StageByRole returns the result produced by the named role, if any.
func (r *PipelineRun) StageByRole(role string) (StageResult, bool) {
	for _, s := range r.Stages {
		if s.Role == role {
			return s, true
		}
	}
	return StageResult{}, false
}

// Output returns the output text of the last successful stage, which for a
// completed run is the pipeline's final document.
func (r *PipelineRun) Output() string {
	for i := len(r.Stages) - 1; i >= 0; i-- {
		if r.Stages[i].Succeeded() {
			return r.Stages[i].Output
		}
	}
	return ""
}

// Err returns the error of the failing stage, or nil for a healthy run.
func (r *PipelineRun) Err() error {
	for _, s := range r.Stages {
		if s.Err != nil {
			return s.Err
		}
	}
	return nil
}

// NewID generates a unique identifier for runs and stages.
func NewID() string { return uuid.NewString() }
