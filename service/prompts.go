package service

import (
	"strings"
)

// 标准改进标签集合
// 模型只能从这里选择 patch 的 tag，校验时按同一份常量做白名单检查
const (
	TagAmbiguity      = "模糊/指令不明确"   // 目标、角色、动作不清晰
	TagScope          = "范围/需求过多或不足" // 范围过大或指定过少
	TagRedundancy     = "结构/长度冗余"    // 啰嗦、重复、赘述
	TagOutputFormat   = "输出格式/结构未定义" // 缺少 JSON、表格、代码等形式要求
	TagCriteria       = "评估标准/约束不足"  // 缺少长度、水平、精度等质量标准
	TagMissingContext = "数据/上下文缺失"   // 缺少对象、领域、示例，模型容易泛泛而答
	TagStyle          = "表达/文体改进"    // 语句流畅度、语气、自然度等表达问题
	TagSafety         = "安全/政策风险"    // 需要改写为安全的学习/分析性表述
)

// AllTags 返回标准标签集合（与系统提示词中的列表一致）
func AllTags() []string {
	return []string{
		TagAmbiguity,
		TagScope,
		TagRedundancy,
		TagOutputFormat,
		TagCriteria,
		TagMissingContext,
		TagStyle,
		TagSafety,
	}
}

// IsKnownTag 判断标签是否在标准集合内
func IsKnownTag(tag string) bool {
	for _, t := range AllTags() {
		if t == tag {
			return true
		}
	}
	return false
}

// GenerateSystemPrompt RTF 模板化系统提示词（generate-prompt 接口）
const GenerateSystemPrompt = `你是提示词结构化专家。
分析用户输入的问题提示词，把它改写为 RTF 模板格式。
输出必须且只能包含以下三行，禁止任何其他文字、说明、代码块、引号：

Role : <角色定义>
Task : <要执行的任务>
Format : <结果形式>

### 规则
1. 输出只包含 Role / Task / Format 三行。
2. 根据输入意图推断最自然、具体的角色。例："帮我写代码" → "你是一名资深软件工程师"。
3. Task 要把用户请求改写成明确、可执行的指令句，去掉"稍微""尽量"之类的模糊修饰，只保留一个核心目的。
4. Format 明确指定结果形式（如"代码块加简短注释"、"表格整理"、"返回 JSON"）；输入未提及形式时默认"以简洁明确的叙述形式作答"。
5. 保持输入语言（中文输入输出中文，英文输入输出英文，韩文输入输出韩文）。
6. 存在安全/政策风险时改写为安全的学习、分析性表述。`

// RecommendSystemPrompt 推荐提示词系统提示词（recommended-prompts 接口）
const RecommendSystemPrompt = `你是提示词推荐助手。
输入是某个用户最近的会话话题列表（JSON 数组，按时间从新到旧）。
根据这些话题推断用户的兴趣方向，生成用户接下来可能想问的提示词建议。
只返回一个 JSON 对象，禁止任何其他文字、说明、代码块：

{
  "recommendations": [
    { "id": 1, "title": string, "content": string }
  ]
}

### 规则
1. 最多 3 条，按推荐优先级排序，id 从 1 递增。
2. title 是简短标题（15 字以内），content 是可以直接发送给模型的完整提示词。
3. 使用话题列表的主要语言作答。
4. 话题之间若无关联，按最近话题优先。`

// RepairSystemPrompt JSON 修复重试时附加的系统提示词
const RepairSystemPrompt = `上一次输出不是合法的 JSON。只返回一个符合规范的 JSON 对象，禁止任何其他内容。`

// ImproveSystemPrompt 提示词分析系统提示词（analyze-prompt 接口）
// 标准标签列表由常量集合注入，保证提示词与校验白名单一致
func ImproveSystemPrompt() string {
	var b strings.Builder
	b.WriteString(`你是提示词编辑。分析用户给出的输入提示词，只返回一个符合以下结构的 JSON 对象。

### 输出结构
{
  "topic": string,                       // 概括输入主题的短标签，30 字以内
  "patches": [                           // 按实际改进顺序排列，1~30 条
    { "tag": string, "from": string, "to": string }
  ],
  "full_suggestion": string              // 反映全部 patch 的完整改写建议
}

### 通用规则
- 输出只有一个 JSON 对象。禁止说明、句子、代码块、注释、markdown。
- 保持输入语言作答（中文输入→中文输出，韩文→韩文，英文→英文）。
- "tag" 只能从下面的标准标签集合中选择，仅在必要时使用，禁止重复。
- "from" 必须是原文中实际存在的连续片段（尽量取最小范围），且各 patch 的片段在原文中从左到右依次出现、互不重叠。
- "to" 是替换该片段的简洁、祈使式建议。
- "full_suggestion" 是把全部修改融入后的自然完整改写。
- 检测到安全/政策问题时改写为安全的替代表述，并加入对应标签。

### 标准标签集合
`)
	for _, tag := range AllTags() {
		b.WriteString("- \"")
		b.WriteString(tag)
		b.WriteString("\"\n")
	}
	b.WriteString(`
### 编写指南
- 优先解决"` + TagOutputFormat + `"，在建议中明确机器可解析的输出要求。
- 过于宽泛的要求用"前 N 个"之类的限定具体化。
- 数字、单位、时间要明确（如"3 句话"、"不超过 150 字"）。

遵循以上要求，分析接下来的用户输入，只返回规范的 JSON 对象。`)
	return b.String()
}
