package draftpipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftpipe/draftpipe/config"
	"github.com/draftpipe/draftpipe/extract"
	"github.com/draftpipe/draftpipe/model"
)

func TestBuildMaterials_ExtractsAllDocuments(t *testing.T) {
	pipe := New()

	m := pipe.BuildMaterials(
		SourceFile{Name: "素材表.txt", Data: []byte("张三的素材")},
		[]SourceFile{
			{Name: "报告.txt", Data: []byte("项目报告")},
			{Name: "海报.txt", Data: []byte("活动海报")},
		},
		"语气正式",
	)

	assert.Equal(t, "张三的素材", m.PrimaryText)
	assert.Equal(t, []string{"项目报告", "活动海报"}, m.SupportingTexts)
	assert.Equal(t, "语气正式", m.FreeformRequirements)
}

func TestBuildMaterials_ExtractionFailureDegradesToDiagnostic(t *testing.T) {
	pipe := New()

	m := pipe.BuildMaterials(
		SourceFile{Name: "素材表.txt", Data: []byte("素材")},
		[]SourceFile{{Name: "broken.pdf", Data: []byte("not a pdf")}},
		"",
	)

	require.Len(t, m.SupportingTexts, 1)
	assert.True(t, extract.Failed(m.SupportingTexts[0]))
}

func TestDraftPipe_EndToEndResumeFlow(t *testing.T) {
	pipe := New()
	mock := model.NewMockModel("m1")
	mock.AddResponse("支持文件内容", "辅助文档分析报告")
	mock.AddResponse("简历素材内容", "经历整理报告")
	mock.AddResponse("经历整理报告", "# 个人简历")
	pipe.RegisterModel("m1", mock)

	materials := pipe.BuildMaterials(
		SourceFile{Name: "素材表.txt", Data: []byte("张三，实习于A公司")},
		[]SourceFile{{Name: "报告.txt", Data: []byte("项目报告")}},
		"",
	)

	rp := pipe.NewResumePipeline(config.DefaultResumeProfile().WithModel("m1"))

	run, err := rp.Run(context.Background(), materials)
	require.NoError(t, err)
	assert.Equal(t, "经历整理报告", run.Output())

	final, err := rp.GenerateResume(context.Background(), run.Output())
	require.NoError(t, err)
	assert.Equal(t, "# 个人简历", final.Output())
}

func TestDraftPipe_CustomExtractOverride(t *testing.T) {
	pipe := New(func(o *Options) {
		o.Extract = func(string, []byte) string { return "固定文本" }
	})

	m := pipe.BuildMaterials(SourceFile{Name: "x.bin", Data: []byte{0xff}}, nil, "")
	assert.Equal(t, "固定文本", m.PrimaryText)
}
