package service

import (
	"fmt"
	"strings"
)

// 示例与知识片段的截断上限（按字符），避免上下文卡片撑爆 token
const snippetMaxRunes = 1200

// 知识片段最多取前几条
const snippetsMax = 3

// ContextCard 随原始提示词一起发给模型的扁平上下文卡片
// 字段均可选，只在有值时写入；没有任何字段时渲染为 "none"
type ContextCard struct {
	Domain                string
	DesiredOutputFormat   string
	StyleGuide            string
	AdditionalConstraints string
	UserContext           string
	Examples              string
	EnableRAG             bool
	EnableWeb             bool
	KnowledgeSnippets     []string
}

// Render 将上下文卡片渲染为逐行文本
func (c ContextCard) Render() string {
	var items []string
	if c.Domain != "" {
		items = append(items, "domain: "+c.Domain)
	}
	if c.DesiredOutputFormat != "" {
		items = append(items, "desired_output_format: "+c.DesiredOutputFormat)
	}
	if c.StyleGuide != "" {
		items = append(items, "style_guide: "+c.StyleGuide)
	}
	if c.AdditionalConstraints != "" {
		items = append(items, "additional_constraints: "+c.AdditionalConstraints)
	}
	if c.UserContext != "" {
		items = append(items, "user_context: "+c.UserContext)
	}
	if c.EnableRAG {
		items = append(items, "rag: true (if beneficial)")
	}
	if c.EnableWeb {
		items = append(items, "web_search: true (if recency/ambiguity)")
	}
	if c.Examples != "" {
		items = append(items, "examples: "+truncateRunes(c.Examples, snippetMaxRunes))
	}
	if len(c.KnowledgeSnippets) > 0 {
		snips := c.KnowledgeSnippets
		if len(snips) > snippetsMax {
			snips = snips[:snippetsMax]
		}
		truncated := make([]string, len(snips))
		for i, s := range snips {
			truncated[i] = truncateRunes(s, snippetMaxRunes)
		}
		items = append(items, "knowledge_snippets:\n"+strings.Join(truncated, "\n---\n"))
	}
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, "\n")
}

// BuildUserTurn 组装发给模型的用户轮文本：语言 + 上下文卡片 + 原始提示词
func BuildUserTurn(language string, card ContextCard, prompt string) string {
	if language == "" {
		language = "zh"
	}
	return fmt.Sprintf("[language]: %s\n[context]:\n%s\n[original_prompt]:\n%s",
		language, card.Render(), prompt)
}

// truncateRunes 按字符截断字符串
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
