// Package agent executes a single pipeline stage: one model invocation
// wrapped in a best-effort telemetry record. The runner never decides how a
// failure affects the rest of the chain — that is the orchestrator's call.
package agent

import (
	"context"
	"time"

	"github.com/draftpipe/draftpipe/core"
	"github.com/draftpipe/draftpipe/logging"
	"github.com/draftpipe/draftpipe/model"
)

// inputs and outputs recorded with the telemetry sink are truncated so a
// large materials bundle cannot bloat the trace backend.
const telemetryTextLimit = 1000

// Options configure a Runner.
type Options struct {
	Telemetry core.Telemetry
	Logger    logging.Logger
}

// Runner resolves model ids and executes single agent stages.
type Runner struct {
	models    *model.Registry
	telemetry core.Telemetry
	logger    logging.Logger
}

// NewRunner creates a Runner over the given registry. Telemetry defaults to
// the no-op sink and logging to the no-op logger.
func NewRunner(models *model.Registry, optFns ...func(o *Options)) *Runner {
	opts := Options{
		Telemetry: core.NopTelemetry{},
		Logger:    logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Runner{models: models, telemetry: opts.Telemetry, logger: opts.Logger}
}

// Resolves reports whether modelID is bound in the registry. The orchestrator
// uses it to fail a run before the first stage rather than mid-chain.
func (r *Runner) Resolves(modelID string) bool {
	_, ok := r.models.Resolve(modelID)
	return ok
}

// Run executes one stage: it generates a fresh run identifier, records the
// run start with the telemetry sink, invokes the model exactly once, and
// records the run end with the output or the error marker. Telemetry failures
// are logged as warnings and never alter the stage outcome. The result's Err
// field carries an *core.AgentError when the model call failed.
func (r *Runner) Run(ctx context.Context, role, modelID, prompt, parentRunID string) core.StageResult {
	result := core.StageResult{
		Role:    role,
		ModelID: modelID,
		Prompt:  prompt,
		RunID:   core.NewID(),
	}

	m, ok := r.models.Resolve(modelID)
	if !ok {
		result.Err = &core.AgentError{
			Role:    role,
			ModelID: modelID,
			Cause:   &core.ConfigurationError{Missing: "model " + modelID},
		}
		return result
	}

	started := time.Now()
	if err := r.telemetry.StartRun(ctx, core.RunStart{
		ID:        result.RunID,
		Name:      role,
		ParentID:  parentRunID,
		ModelID:   modelID,
		Inputs:    truncate(prompt, telemetryTextLimit),
		StartedAt: started.UTC(),
	}); err != nil {
		r.logger.Warn("telemetry start failed", "role", role, "run_id", result.RunID, "error", err)
	}

	output, err := m.Invoke(ctx, prompt)
	result.Duration = time.Since(started)
	if err != nil {
		result.Err = &core.AgentError{
			Role:    role,
			ModelID: modelID,
			Cause:   &core.ModelInvocationError{ModelID: modelID, Cause: err},
		}
	} else {
		result.Output = output
	}

	end := core.RunEnd{
		ID:      result.RunID,
		Outputs: truncate(output, telemetryTextLimit),
		EndedAt: time.Now().UTC(),
	}
	if result.Err != nil {
		end.Error = result.Err.Error()
	}
	if err := r.telemetry.EndRun(ctx, end); err != nil {
		r.logger.Warn("telemetry end failed", "role", role, "run_id", result.RunID, "error", err)
	}

	if result.Err != nil {
		r.logger.Error("stage failed", "role", role, "model", modelID, "error", result.Err)
	} else {
		r.logger.Info("stage completed", "role", role, "model", modelID, "duration", result.Duration)
	}
	return result
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
