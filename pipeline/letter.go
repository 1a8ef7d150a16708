package pipeline

import (
	"context"

	"github.com/draftpipe/draftpipe/agent"
	"github.com/draftpipe/draftpipe/core"
	"github.com/draftpipe/draftpipe/prompt"
)

// LetterConfigs holds the per-role configuration snapshots of the
// recommendation-letter topology.
type LetterConfigs struct {
	SupportAnalyst core.AgentConfig
	Writer         core.AgentConfig
	Generator      core.AgentConfig
}

// LetterPipeline is the letter-style topology: support analysis always runs
// (with a fixed "no documents" marker substituted as input when none were
// supplied), followed by the report drafting stage, plus an independently
// triggered polish stage over the produced report.
type LetterPipeline struct {
	chain  *Pipeline
	polish *Pipeline
}

// NewLetter builds the recommendation-letter topology.
func NewLetter(runner *agent.Runner, cfgs LetterConfigs, optFns ...func(o *Options)) *LetterPipeline {
	chain := New("letter", runner, []StageSpec{
		{
			Role:   RoleSupportAnalyst,
			Config: cfgs.SupportAnalyst,
			Build: func(m core.MaterialsBundle, _ map[string]string) string {
				return prompt.LetterAnalysis(cfgs.SupportAnalyst, m)
			},
			Percent:    10,
			StatusText: "第一步：分析支持文件...",
		},
		{
			Role:   RoleLetterWriter,
			Config: cfgs.Writer,
			Build: func(m core.MaterialsBundle, upstream map[string]string) string {
				return prompt.LetterSynthesis(cfgs.Writer, m, upstream[RoleSupportAnalyst])
			},
			Percent:    40,
			StatusText: "第二步：生成推荐信报告...",
		},
	}, optFns...)

	polish := New("letter-polish", runner, []StageSpec{
		{
			Role:   RoleLetterGenerator,
			Config: cfgs.Generator,
			Build: func(m core.MaterialsBundle, _ map[string]string) string {
				return prompt.LetterPolish(cfgs.Generator, m.PrimaryText)
			},
			Percent:    50,
			StatusText: "正在生成推荐信...",
		},
	}, optFns...)

	return &LetterPipeline{chain: chain, polish: polish}
}

// Run executes the automatic chain over the materials and returns the run
// carrying the letter report as its output.
func (p *LetterPipeline) Run(ctx context.Context, materials core.MaterialsBundle) (*core.PipelineRun, error) {
	return p.chain.Run(ctx, materials)
}

// GenerateLetter is the user-triggered polish stage. It consumes a previously
// produced letter report and returns a new single-stage run whose output is
// the final letter.
func (p *LetterPipeline) GenerateLetter(ctx context.Context, report string) (*core.PipelineRun, error) {
	if report == "" {
		return nil, &core.ConfigurationError{Missing: "letter report"}
	}
	return p.polish.Run(ctx, core.MaterialsBundle{PrimaryText: report})
}
