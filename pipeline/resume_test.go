package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftpipe/draftpipe/core"
	"github.com/draftpipe/draftpipe/model"
	"github.com/draftpipe/draftpipe/prompt"
)

func resumeConfigs(modelID string) ResumeConfigs {
	cfg := func(persona string) core.AgentConfig {
		return core.AgentConfig{Persona: persona, Task: "任务", OutputFormat: "格式", ModelID: modelID}
	}
	return ResumeConfigs{
		SupportAnalyst: cfg("支持文件分析师"),
		Advisor:        cfg("简历顾问"),
		Generator:      cfg("简历排版师"),
	}
}

func TestResumePipeline_WithSupportingDocs(t *testing.T) {
	mock := model.NewMockModel("m1")
	mock.AddResponse("支持文件内容", "辅助文档分析报告")
	mock.AddResponse("简历素材内容", "经历整理报告正文")
	runner := newChainRunner(t, mock)

	p := NewResume(runner, resumeConfigs("m1"))
	run, err := p.Run(context.Background(), core.MaterialsBundle{
		PrimaryText:     "张三，实习于A公司，负责数据分析",
		SupportingTexts: []string{"项目报告全文"},
	})

	require.NoError(t, err)
	assert.Equal(t, "经历整理报告正文", run.Output())
	require.Len(t, run.Stages, 2)
	assert.Equal(t, RoleSupportAnalyst, run.Stages[0].Role)
	assert.Equal(t, RoleResumeAdvisor, run.Stages[1].Role)

	// The drafting prompt carries the analysis output verbatim.
	calls := mock.Calls()
	require.Len(t, calls, 2)
	assert.Contains(t, calls[1], "辅助文档分析报告")
	assert.NotContains(t, calls[1], prompt.NoAnalysisFallback)
}

func TestResumePipeline_NoSupportingDocsSkipsAnalysis(t *testing.T) {
	mock := model.NewMockModel("m1")
	mock.AddResponse("简历素材内容", "经历整理报告正文")
	runner := newChainRunner(t, mock)

	p := NewResume(runner, resumeConfigs("m1"))
	run, err := p.Run(context.Background(), core.MaterialsBundle{
		PrimaryText: "张三，实习于A公司",
	})

	require.NoError(t, err)
	require.Len(t, run.Stages, 1)
	assert.Equal(t, RoleResumeAdvisor, run.Stages[0].Role)

	// One invocation, with the fixed placeholder where the analysis would be.
	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0], prompt.NoAnalysisFallback)
}

func TestResumePipeline_SkipEmitsProgress(t *testing.T) {
	mock := model.NewMockModel("m1")
	runner := newChainRunner(t, mock)
	rec := &progressRecorder{}

	p := NewResume(runner, resumeConfigs("m1"), func(o *Options) { o.Progress = rec.record })
	_, err := p.Run(context.Background(), core.MaterialsBundle{PrimaryText: "素材"})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(rec.events), 3)
	assert.Equal(t, "未提供支持文件，跳过第一阶段分析", rec.events[0].Message)
	assert.Equal(t, 100, rec.events[len(rec.events)-1].Percent)
}

func TestResumePipeline_GenerateResume(t *testing.T) {
	mock := model.NewMockModel("m1")
	mock.AddResponse("经历整理报告", "# 个人简历\n最终排版结果")
	runner := newChainRunner(t, mock)

	p := NewResume(runner, resumeConfigs("m1"))
	run, err := p.GenerateResume(context.Background(), "经历整理报告正文")

	require.NoError(t, err)
	assert.Equal(t, "# 个人简历\n最终排版结果", run.Output())
	require.Len(t, run.Stages, 1)
	assert.Equal(t, RoleResumeGenerator, run.Stages[0].Role)
}

func TestResumePipeline_GenerateResumeRejectsEmptyReport(t *testing.T) {
	mock := model.NewMockModel("m1")
	runner := newChainRunner(t, mock)

	p := NewResume(runner, resumeConfigs("m1"))
	run, err := p.GenerateResume(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, run)
	var ce *core.ConfigurationError
	assert.ErrorAs(t, err, &ce)
	assert.Empty(t, mock.Calls())
}
