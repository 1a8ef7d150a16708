package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/draftpipe/draftpipe/agent"
	"github.com/draftpipe/draftpipe/core"
	"github.com/draftpipe/draftpipe/logging"
)

// BuildFunc assembles a stage's prompt from the run materials and the outputs
// of all prior successful stages, keyed by role.
type BuildFunc func(m core.MaterialsBundle, upstream map[string]string) string

// SkipFunc decides whether a stage runs. The predicate is evaluated once at
// pipeline start against the materials snapshot, so the branch cannot flip
// mid-run.
type SkipFunc func(m core.MaterialsBundle) bool

// StageSpec describes one stage of a chain.
type StageSpec struct {
	// Role names the agent and keys its output for downstream stages.
	Role string
	// Config is the agent configuration snapshot used for every prompt of
	// this stage in this run.
	Config core.AgentConfig
	// Build assembles the stage prompt. Required.
	Build BuildFunc
	// Skip, when non-nil and true for the run's materials, drops the stage.
	Skip SkipFunc
	// Percent is the progress value emitted when the stage begins. Stages
	// must be declared with non-decreasing percentages below 100.
	Percent int
	// StatusText is the human-readable status emitted when the stage begins.
	StatusText string
	// SkipText is emitted instead when the stage is skipped.
	SkipText string
}

// Options configure a Pipeline.
type Options struct {
	Logger   logging.Logger
	Progress core.ProgressFunc
}

// Pipeline executes an ordered chain of agent stages. A Pipeline is immutable
// after construction and safe to reuse across runs; each Run owns its
// materials and results exclusively.
type Pipeline struct {
	name     string
	stages   []StageSpec
	runner   *agent.Runner
	logger   logging.Logger
	progress core.ProgressFunc
}

// New creates a pipeline over the given stages. Stage order is execution
// order.
func New(name string, runner *agent.Runner, stages []StageSpec, optFns ...func(o *Options)) *Pipeline {
	opts := Options{
		Logger:   logging.NoOpLogger{},
		Progress: core.NopProgress,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Pipeline{
		name:     name,
		stages:   stages,
		runner:   runner,
		logger:   opts.Logger,
		progress: opts.Progress,
	}
}

// Name returns the pipeline's name, used as the telemetry run name prefix.
func (p *Pipeline) Name() string { return p.name }

// Run executes the chain against materials. Preconditions (primary text
// present, every active stage's model resolvable) are checked before the
// first stage; a violation returns a *core.ConfigurationError and no run.
//
// Stages execute strictly in order. The first stage failure marks the run
// failed, freezes the progress indicator at the last emitted value and
// returns the run together with the stage's *core.AgentError; results of
// prior successful stages remain on the run. A successful chain returns the
// run in StatusSucceeded with its final output available via run.Output().
func (p *Pipeline) Run(ctx context.Context, materials core.MaterialsBundle) (*core.PipelineRun, error) {
	if err := materials.Validate(); err != nil {
		return nil, err
	}

	// The skip branch is resolved once, up front, so ordering inside the run
	// is unambiguous.
	active := make([]StageSpec, 0, len(p.stages))
	for _, s := range p.stages {
		if s.Skip != nil && s.Skip(materials) {
			continue
		}
		active = append(active, s)
	}
	for _, s := range active {
		if !p.runner.Resolves(s.Config.ModelID) {
			return nil, &core.ConfigurationError{
				Missing: fmt.Sprintf("model %q for role %q", s.Config.ModelID, s.Role),
			}
		}
	}

	run := core.NewPipelineRun(p.name)
	run.Status = core.StatusRunning
	p.logger.Info("pipeline started", "pipeline", p.name, "run_id", run.ID, "stages", len(active))

	upstream := make(map[string]string, len(p.stages))
	lastPercent := 0

	for _, s := range p.stages {
		if s.Skip != nil && s.Skip(materials) {
			lastPercent = p.emit(run.ID, s.Role, s.Percent, s.SkipText, lastPercent)
			p.logger.Info("stage skipped", "pipeline", p.name, "role", s.Role)
			continue
		}

		if err := ctx.Err(); err != nil {
			run.Status = core.StatusFailed
			run.EndedAt = time.Now().UTC()
			return run, err
		}

		lastPercent = p.emit(run.ID, s.Role, s.Percent, s.StatusText, lastPercent)

		result := p.runner.Run(ctx, s.Role, s.Config.ModelID, s.Build(materials, upstream), run.ID)
		run.AddStage(result)

		if result.Err != nil {
			run.Status = core.StatusFailed
			run.EndedAt = time.Now().UTC()
			p.emit(run.ID, s.Role, lastPercent, fmt.Sprintf("处理失败：%s", s.Role), lastPercent)
			return run, result.Err
		}
		upstream[s.Role] = result.Output
	}

	run.Status = core.StatusSucceeded
	run.EndedAt = time.Now().UTC()
	p.emit(run.ID, "", 100, "处理完成！", lastPercent)
	p.logger.Info("pipeline completed", "pipeline", p.name, "run_id", run.ID)
	return run, nil
}

// emit publishes a progress event, clamping the percentage so the reported
// value never decreases within a run. Returns the value actually emitted.
func (p *Pipeline) emit(runID, stage string, percent int, message string, lastPercent int) int {
	if percent < lastPercent {
		percent = lastPercent
	}
	p.progress(core.ProgressEvent{
		RunID:     runID,
		Stage:     stage,
		Percent:   percent,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
	return percent
}
