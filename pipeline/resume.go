package pipeline

import (
	"context"

	"github.com/draftpipe/draftpipe/agent"
	"github.com/draftpipe/draftpipe/core"
	"github.com/draftpipe/draftpipe/prompt"
)

// Agent roles of the two preset topologies. Role names key stage outputs and
// telemetry records, so they are stable identifiers rather than display text.
const (
	RoleSupportAnalyst  = "support_analyst"
	RoleResumeAdvisor   = "cv_assistant"
	RoleResumeGenerator = "resume_generator"
	RoleLetterWriter    = "rl_assistant"
	RoleLetterGenerator = "letter_generator"
)

// ResumeConfigs holds the per-role configuration snapshots of the resume
// topology.
type ResumeConfigs struct {
	SupportAnalyst core.AgentConfig
	Advisor        core.AgentConfig
	Generator      core.AgentConfig
}

// ResumePipeline is the extraction-style topology: an optional
// support-analysis stage followed by the experience-report drafting stage,
// plus an independently triggered formatting stage over the produced report.
type ResumePipeline struct {
	chain  *Pipeline
	format *Pipeline
}

// NewResume builds the resume topology. The support-analysis stage is
// skipped entirely when the materials carry no supporting documents; the
// drafting stage then substitutes a fixed placeholder for the missing
// analysis.
func NewResume(runner *agent.Runner, cfgs ResumeConfigs, optFns ...func(o *Options)) *ResumePipeline {
	chain := New("resume", runner, []StageSpec{
		{
			Role:   RoleSupportAnalyst,
			Config: cfgs.SupportAnalyst,
			Build: func(m core.MaterialsBundle, _ map[string]string) string {
				return prompt.ResumeAnalysis(cfgs.SupportAnalyst, m)
			},
			Skip:       func(m core.MaterialsBundle) bool { return !m.HasSupportingDocs() },
			Percent:    0,
			StatusText: "第一阶段：正在分析支持文件...",
			SkipText:   "未提供支持文件，跳过第一阶段分析",
		},
		{
			Role:   RoleResumeAdvisor,
			Config: cfgs.Advisor,
			Build: func(m core.MaterialsBundle, upstream map[string]string) string {
				return prompt.ResumeSynthesis(cfgs.Advisor, m, upstream[RoleSupportAnalyst])
			},
			Percent:    50,
			StatusText: "第二阶段：正在生成简历...",
		},
	}, optFns...)

	format := New("resume-format", runner, []StageSpec{
		{
			Role:   RoleResumeGenerator,
			Config: cfgs.Generator,
			Build: func(m core.MaterialsBundle, _ map[string]string) string {
				return prompt.ResumeFormat(cfgs.Generator, m.PrimaryText)
			},
			Percent:    50,
			StatusText: "正在生成简历...",
		},
	}, optFns...)

	return &ResumePipeline{chain: chain, format: format}
}

// Run executes the automatic chain over the materials and returns the run
// carrying the experience report as its output.
func (p *ResumePipeline) Run(ctx context.Context, materials core.MaterialsBundle) (*core.PipelineRun, error) {
	return p.chain.Run(ctx, materials)
}

// GenerateResume is the user-triggered formatting stage. It consumes a
// previously produced experience report — not chained automatically — and
// returns a new single-stage run whose output is the formatted resume.
func (p *ResumePipeline) GenerateResume(ctx context.Context, report string) (*core.PipelineRun, error) {
	if report == "" {
		return nil, &core.ConfigurationError{Missing: "experience report"}
	}
	return p.format.Run(ctx, core.MaterialsBundle{PrimaryText: report})
}
