package prompt

import (
	"fmt"
	"strings"

	"github.com/draftpipe/draftpipe/core"
)

// Fixed substitution texts for absent optional inputs. Downstream prompts and
// the default agent profiles reference these literals, so they must not
// change between runs.
const (
	// NoSupportDocsMarker replaces the supporting-files section when the user
	// supplied none, so the analyst prompt never contains an empty block.
	NoSupportDocsMarker = "（未上传任何辅助文档）"

	// NoSupportDocsResponse is the reply the support analyst is instructed to
	// give when its input is NoSupportDocsMarker.
	NoSupportDocsResponse = "未检测到辅助文档，无法生成文档分析报告。"

	// NoAnalysisFallback replaces the analysis section of a synthesis prompt
	// when the analysis stage was skipped.
	NoAnalysisFallback = "（无辅助文档分析报告）"

	// NoRequirementsMarker replaces the free-form requirements section when
	// the user supplied none.
	NoRequirementsMarker = "（无特殊写作需求）"
)

// Section is one labeled block of material text appended after the
// configuration blocks of a prompt.
type Section struct {
	Label string
	Text  string
}

// Assemble concatenates, in fixed order, the persona, task and output-format
// blocks of cfg followed by the given material sections.
func Assemble(cfg core.AgentConfig, sections ...Section) string {
	var sb strings.Builder
	sb.WriteString("人物设定：")
	sb.WriteString(cfg.Persona)
	sb.WriteString("\n\n任务描述：")
	sb.WriteString(cfg.Task)
	sb.WriteString("\n\n输出格式：")
	sb.WriteString(cfg.OutputFormat)
	sb.WriteString("\n")
	for _, s := range sections {
		sb.WriteString("\n")
		sb.WriteString(s.Label)
		sb.WriteString("：\n")
		sb.WriteString(s.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// SupportingFiles renders the supporting document texts as one numbered
// block, or NoSupportDocsMarker when none were supplied.
func SupportingFiles(texts []string) string {
	if len(texts) == 0 {
		return NoSupportDocsMarker
	}
	var sb strings.Builder
	for i, t := range texts {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(fmt.Sprintf("--- 支持文件 %d ---\n", i+1))
		sb.WriteString(t)
	}
	return sb.String()
}

// ResumeAnalysis builds the prompt for the resume pipeline's support-analysis
// stage. The analysis role sees only the supporting documents, never the
// primary fact sheet.
func ResumeAnalysis(cfg core.AgentConfig, m core.MaterialsBundle) string {
	return Assemble(cfg, Section{Label: "支持文件内容", Text: SupportingFiles(m.SupportingTexts)})
}

// ResumeSynthesis builds the prompt for the resume pipeline's main drafting
// stage. analysis is the support-analysis output; when the analysis stage was
// skipped pass the empty string and NoAnalysisFallback is substituted.
func ResumeSynthesis(cfg core.AgentConfig, m core.MaterialsBundle, analysis string) string {
	if analysis == "" {
		analysis = NoAnalysisFallback
	}
	return Assemble(cfg,
		Section{Label: "简历素材内容", Text: m.PrimaryText},
		Section{Label: "支持文件分析结果", Text: analysis},
	)
}

// ResumeFormat builds the prompt for the user-triggered resume formatting
// stage, which consumes only the drafting stage's report.
func ResumeFormat(cfg core.AgentConfig, report string) string {
	return Assemble(cfg, Section{Label: "经历整理报告", Text: report})
}

// LetterAnalysis builds the prompt for the letter pipeline's support-analysis
// stage. Unlike the resume variant this stage always runs and also sees the
// fact sheet, so cross references between sheet and documents can be resolved.
func LetterAnalysis(cfg core.AgentConfig, m core.MaterialsBundle) string {
	return Assemble(cfg,
		Section{Label: "推荐信素材表内容", Text: m.PrimaryText},
		Section{Label: "支持文件内容", Text: SupportingFiles(m.SupportingTexts)},
	)
}

// LetterSynthesis builds the prompt for the letter drafting stage from the
// fact sheet, the analysis output and the user's free-form requirements.
func LetterSynthesis(cfg core.AgentConfig, m core.MaterialsBundle, analysis string) string {
	if analysis == "" {
		analysis = NoAnalysisFallback
	}
	requirements := m.FreeformRequirements
	if requirements == "" {
		requirements = NoRequirementsMarker
	}
	return Assemble(cfg,
		Section{Label: "推荐信素材表内容", Text: m.PrimaryText},
		Section{Label: "支持文件分析", Text: analysis},
		Section{Label: "写作需求", Text: requirements},
	)
}

// LetterPolish builds the prompt for the user-triggered polish stage, which
// consumes only the drafting stage's report.
func LetterPolish(cfg core.AgentConfig, report string) string {
	return Assemble(cfg, Section{Label: "推荐信报告", Text: report})
}
