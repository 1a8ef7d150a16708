// Package draftpipe provides a high-level façade over the drafting pipeline:
// model registry, telemetry sink, logging and text extraction wired together
// so applications can go from uploaded documents to a generated resume or
// recommendation letter in a few calls. Most applications interact with this
// package by:
//  1. Creating a DraftPipe via New() (optionally overriding the defaults)
//  2. Registering one or more models under the ids their agent profiles use
//  3. Building a materials bundle from uploaded files (BuildMaterials)
//  4. Constructing a preset pipeline and running it
//
// All defaults are safe for local development and testing; production
// deployments typically supply a real telemetry sink and a structured logger.
package draftpipe

import (
	"github.com/draftpipe/draftpipe/agent"
	"github.com/draftpipe/draftpipe/config"
	"github.com/draftpipe/draftpipe/core"
	"github.com/draftpipe/draftpipe/extract"
	"github.com/draftpipe/draftpipe/logging"
	"github.com/draftpipe/draftpipe/model"
	"github.com/draftpipe/draftpipe/pipeline"
)

// ExtractFunc converts an uploaded document into plain text. It must never
// fail: unreadable input yields a diagnostic string (see package extract).
type ExtractFunc func(filename string, data []byte) string

// Options configures the DraftPipe instance.
type Options struct {
	// Models resolves AgentConfig.ModelID values. Defaults to an empty
	// registry; register models before running a pipeline.
	Models *model.Registry

	// Telemetry receives best-effort run records. Defaults to the no-op sink.
	Telemetry core.Telemetry

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger

	// Progress receives stage-boundary progress events.
	Progress core.ProgressFunc

	// Extract converts uploaded documents to text. Defaults to extract.Text.
	Extract ExtractFunc
}

// DraftPipe is the high-level façade aggregating the stage runner and the
// services it depends on.
type DraftPipe struct {
	opts   Options
	runner *agent.Runner
}

// New creates a DraftPipe with optional overrides. Any unset service is
// initialized with its default implementation.
func New(optFns ...func(o *Options)) *DraftPipe {
	opts := Options{
		Models:    model.NewRegistry(),
		Telemetry: core.NopTelemetry{},
		Logger:    logging.NoOpLogger{},
		Progress:  core.NopProgress,
		Extract:   extract.Text,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	runner := agent.NewRunner(opts.Models, func(o *agent.Options) {
		o.Telemetry = opts.Telemetry
		o.Logger = opts.Logger
	})

	return &DraftPipe{opts: opts, runner: runner}
}

// Models returns the registry so callers can register or inspect models.
func (d *DraftPipe) Models() *model.Registry { return d.opts.Models }

// RegisterModel binds id to m in the underlying registry.
func (d *DraftPipe) RegisterModel(id string, m model.Model) { d.opts.Models.Register(id, m) }

// SourceFile is one uploaded document: the original filename (used to pick
// the extraction strategy) and the raw bytes.
type SourceFile struct {
	Name string
	Data []byte
}

// BuildMaterials extracts the primary fact sheet and supporting documents
// into a materials bundle. Extraction failures degrade to diagnostic strings
// inside the bundle rather than aborting; validation of the bundle happens
// when a pipeline run starts.
func (d *DraftPipe) BuildMaterials(primary SourceFile, supporting []SourceFile, requirements string) core.MaterialsBundle {
	m := core.MaterialsBundle{
		PrimaryText:          d.opts.Extract(primary.Name, primary.Data),
		FreeformRequirements: requirements,
	}
	for _, f := range supporting {
		m.SupportingTexts = append(m.SupportingTexts, d.opts.Extract(f.Name, f.Data))
	}
	return m
}

// NewResumePipeline constructs the resume topology from a profile.
func (d *DraftPipe) NewResumePipeline(p config.Profile) *pipeline.ResumePipeline {
	return pipeline.NewResume(d.runner, pipeline.ResumeConfigs{
		SupportAnalyst: p.SupportAnalyst,
		Advisor:        p.Writer,
		Generator:      p.Generator,
	}, d.pipelineOptions)
}

// NewLetterPipeline constructs the recommendation-letter topology from a
// profile.
func (d *DraftPipe) NewLetterPipeline(p config.Profile) *pipeline.LetterPipeline {
	return pipeline.NewLetter(d.runner, pipeline.LetterConfigs{
		SupportAnalyst: p.SupportAnalyst,
		Writer:         p.Writer,
		Generator:      p.Generator,
	}, d.pipelineOptions)
}

func (d *DraftPipe) pipelineOptions(o *pipeline.Options) {
	o.Logger = d.opts.Logger
	o.Progress = d.opts.Progress
}
