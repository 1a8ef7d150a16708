package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineRun_OutputReturnsLastSuccessfulStage(t *testing.T) {
	run := NewPipelineRun("resume")
	run.AddStage(StageResult{Role: "support_analyst", Output: "analysis"})
	run.AddStage(StageResult{Role: "cv_assistant", Output: "report"})

	assert.Equal(t, "report", run.Output())
}

func TestPipelineRun_OutputSkipsFailedStage(t *testing.T) {
	run := NewPipelineRun("resume")
	run.AddStage(StageResult{Role: "support_analyst", Output: "analysis"})
	run.AddStage(StageResult{Role: "cv_assistant", Err: errors.New("boom")})

	assert.Equal(t, "analysis", run.Output())
	assert.EqualError(t, run.Err(), "boom")
}

func TestPipelineRun_EmptyRun(t *testing.T) {
	run := NewPipelineRun("letter")

	assert.Equal(t, StatusPending, run.Status)
	assert.NotEmpty(t, run.ID)
	assert.Empty(t, run.Output())
	assert.NoError(t, run.Err())
}

func TestPipelineRun_StageByRole(t *testing.T) {
	run := NewPipelineRun("letter")
	run.AddStage(StageResult{Role: "rl_assistant", Output: "draft"})

	got, ok := run.StageByRole("rl_assistant")
	require.True(t, ok)
	assert.Equal(t, "draft", got.Output)

	_, ok = run.StageByRole("absent")
	assert.False(t, ok)
}

func TestMaterialsBundle_Validate(t *testing.T) {
	var ce *ConfigurationError

	err := MaterialsBundle{}.Validate()
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "primary document text", ce.Missing)

	assert.NoError(t, MaterialsBundle{PrimaryText: "素材"}.Validate())
}

func TestErrorChain_UnwrapsThroughAgentError(t *testing.T) {
	cause := errors.New("connection reset")
	err := error(&AgentError{
		Role:    "cv_assistant",
		ModelID: "qwen-turbo",
		Cause:   &ModelInvocationError{ModelID: "qwen-turbo", Cause: cause},
	})

	ae, ok := AsAgentError(err)
	require.True(t, ok)
	assert.Equal(t, "cv_assistant", ae.Role)

	var mie *ModelInvocationError
	require.ErrorAs(t, err, &mie)
	assert.ErrorIs(t, err, cause)
}
