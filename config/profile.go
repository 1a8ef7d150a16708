package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/draftpipe/draftpipe/core"
	"github.com/draftpipe/draftpipe/prompt"
)

// Profile groups the agent configurations of one pipeline topology. The
// Writer role is the main drafting agent (resume advisor or letter writer);
// Generator is the user-triggered final formatting/polish agent.
type Profile struct {
	SupportAnalyst core.AgentConfig `yaml:"support_analyst"`
	Writer         core.AgentConfig `yaml:"writer"`
	Generator      core.AgentConfig `yaml:"generator"`
}

// LoadProfile reads a YAML profile from path.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}

// SaveProfile writes p to path as YAML.
func SaveProfile(path string, p Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

// WithModel returns a copy of p with every role bound to modelID.
func (p Profile) WithModel(modelID string) Profile {
	p.SupportAnalyst.ModelID = modelID
	p.Writer.ModelID = modelID
	p.Generator.ModelID = modelID
	return p
}

// DefaultResumeProfile returns the built-in prompt set of the resume
// topology. Model ids are left empty; bind them with WithModel or per role.
func DefaultResumeProfile() Profile {
	return Profile{
		SupportAnalyst: core.AgentConfig{
			Persona: "您是一位专业的文档分析专家，擅长从各类文件中提取和整合信息。您的任务是分析用户上传的辅助文档（如项目海报、报告或作品集），并生成标准化报告，用于简历顾问后续处理。",
			Task: "文件分析工作流程：\n" +
				"1. 仔细阅读所有上传文档，不遗漏任何部分内容\n" +
				"2. 识别文档中所有经历条目（科研项目、实习工作、课外活动），无论是否完整\n" +
				"3. 将多个文档中的相关信息进行交叉比对和整合\n" +
				"4. 为每个经历创建独立条目，保留所有细节，并按时间倒序排列\n" +
				"信息整合策略：内容优先级为 专业知识与能力 > 可量化成果 > 职责描述 > 个人感受。",
			OutputFormat: "辅助文档分析报告\n" +
				"按【科研经历】【实习工作经历】【课外活动经历】分类列出每条经历：时间段、组织、角色（如有缺失用[未知]标记）、核心信息、信息完整度评估、缺失信息。\n" +
				"注意：如果支持文件内容为" + prompt.NoSupportDocsMarker + "，请直接回复：“" + prompt.NoSupportDocsResponse + "”",
		},
		Writer: core.AgentConfig{
			Persona: "请作为专业简历顾问，帮助用户整理个人简历中的“经历”部分。您将基于用户上传的结构化素材表和文档分析专家提供的辅助文档分析报告，生成针对不同类型经历的高质量简历要点。",
			Task: "工作流程：\n" +
				"1. 完整提取素材表中的所有经历信息，明确区分经历与奖项\n" +
				"2. 交叉比对辅助文档分析报告，合并重合经历的补充信息，不同描述取更详细者\n" +
				"3. 按科研项目、实习工作、课外活动分类，每类按开始时间倒序排列\n" +
				"4. 奖项单独整理，直接使用素材表中的原始名称，不要加工或修改\n" +
				"5. 即使某些经历在分析报告中未提及，也必须从素材表中提取并整理。",
			OutputFormat: "个人简历经历整理报告\n" +
				"按【科研经历】【实习工作经历】【课外活动经历】【奖项列表】分节，每条经历包含时间段、组织、角色（如有缺失用[预测]标记）、核心要点与信息缺失提示。\n" +
				"在报告最后添加总结部分，简要评估整体简历的强项和需要改进的地方，给出2-3条具体建议。",
		},
		Generator: core.AgentConfig{
			Persona: "您是一位专业的简历撰写专家，擅长将经历整理报告转化为精炼、专业的简历文本。",
			Task: "基于经历整理报告创建一份完整、专业的简历：\n" +
				"1. 将所有核心要点转化为以行动动词开头、突出成果和能力的简历条目\n" +
				"2. 剔除报告中的“信息缺失提示”等非正式内容\n" +
				"3. 保持经历分类与时间顺序，控制在约600-1200字。",
			OutputFormat: "# 个人简历\n以 Markdown 输出：教育背景、专业技能、科研项目经历、实习工作经历、课外活动经历、获奖情况。",
		},
	}
}

// DefaultLetterProfile returns the built-in prompt set of the
// recommendation-letter topology.
func DefaultLetterProfile() Profile {
	return Profile{
		SupportAnalyst: core.AgentConfig{
			Persona: "您是一位专业的文档分析专家，擅长从各类文件中提取和整合信息。您的任务是分析推荐信素材表及辅助文档，生成标准化报告，供推荐信写作专家后续处理。",
			Task: "仔细阅读素材表与所有支持文件，识别推荐人与被推荐人的互动经历、学术或工作表现及个人品质，交叉比对并整合为独立条目，按时间倒序排列。",
			OutputFormat: "辅助文档分析报告\n" +
				"分类列出每条经历：时间段、组织、角色（如有缺失用[未知]标记）、核心信息、信息完整度评估、缺失信息。\n" +
				"注意：如果支持文件内容为" + prompt.NoSupportDocsMarker + "，请直接回复：“" + prompt.NoSupportDocsResponse + "”",
		},
		Writer: core.AgentConfig{
			Persona: "你是一位经验丰富的推荐信写作专家，专门为申请国外高校的学生撰写高质量的推荐信。请根据提供的学生信息和推荐人信息，创作一篇真实、具体、有说服力的推荐信，确保全篇表述积极肯定被推荐人。",
			Task: "1. 将素材按推荐信四段结构重新分类组织：介绍关系、学术/工作表现、个人品质、总结推荐\n" +
				"2. 推荐信必须以推荐人为第一人称写作\n" +
				"3. 所有非素材表中的补充内容必须使用【补充：具体内容】完整标记\n" +
				"4. 遵循“写作需求”一节中的用户要求，用户需求始终是第一位的\n" +
				"5. 避免提及被推荐人的不足之处，语气始终积极、肯定和自信。",
			OutputFormat: "以中文输出一份推荐信报告，正文按四段结构展开，以“尊敬的招生委员会：”开头，以“此致 敬礼”结尾，最后只添加推荐人姓名。",
		},
		Generator: core.AgentConfig{
			Persona: "你是一位经验丰富的推荐信写作专家，专门负责从分析报告生成最终的推荐信。你擅长将详细的分析转化为专业、有力且符合学术惯例的推荐信。",
			Task: "根据提供的推荐信报告内容，生成一封正式、专业的推荐信：\n" +
				"1. 消除所有【补充：xxx】标记，将其内容无缝融入推荐信中\n" +
				"2. 维持推荐信的四段结构\n" +
				"3. 润色语言，使推荐信更加流畅、连贯、有说服力。",
			OutputFormat: "输出一封完整的推荐信，直接从正文开始，以“尊敬的招生委员会：”开头，以“此致 敬礼”结尾，并在最后添加推荐人姓名。不要包含任何【补充】标记。",
		},
	}
}
