package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextCard_Render_Empty(t *testing.T) {
	assert.Equal(t, "none", ContextCard{}.Render())
}

func TestContextCard_Render_Fields(t *testing.T) {
	card := ContextCard{
		Domain:              "ecommerce",
		DesiredOutputFormat: "JSON",
		StyleGuide:          "正式语气",
		UserContext:         "跨境电商运营",
		EnableRAG:           true,
		EnableWeb:           true,
	}
	out := card.Render()
	assert.Contains(t, out, "domain: ecommerce")
	assert.Contains(t, out, "desired_output_format: JSON")
	assert.Contains(t, out, "style_guide: 正式语气")
	assert.Contains(t, out, "user_context: 跨境电商运营")
	assert.Contains(t, out, "rag: true")
	assert.Contains(t, out, "web_search: true")
	// 未提供的字段不出现
	assert.NotContains(t, out, "additional_constraints")
	assert.NotContains(t, out, "examples")
}

func TestContextCard_Render_SnippetLimits(t *testing.T) {
	long := strings.Repeat("知", 2000)
	card := ContextCard{
		Examples:          long,
		KnowledgeSnippets: []string{long, "short", long, "fourth"},
	}
	out := card.Render()

	// 示例截断到 1200 字
	assert.Contains(t, out, "examples: "+strings.Repeat("知", snippetMaxRunes))
	assert.NotContains(t, out, strings.Repeat("知", snippetMaxRunes+1))

	// 知识片段最多 3 条，用 --- 分隔
	assert.Equal(t, 2, strings.Count(out, "\n---\n"))
	assert.NotContains(t, out, "fourth")
}

func TestBuildUserTurn(t *testing.T) {
	out := BuildUserTurn("ko", ContextCard{Domain: "edu"}, "React에 대해 요약해 줘")
	assert.Contains(t, out, "[language]: ko")
	assert.Contains(t, out, "[context]:\ndomain: edu")
	assert.Contains(t, out, "[original_prompt]:\nReact에 대해 요약해 줘")

	// 语言缺省为 zh
	out = BuildUserTurn("", ContextCard{}, "p")
	assert.Contains(t, out, "[language]: zh")
	assert.Contains(t, out, "[context]:\nnone")
}
