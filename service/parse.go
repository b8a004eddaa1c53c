package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrParse 模型输出无法解析为 JSON（上游形状错误，对外映射为 502）
var ErrParse = errors.New("无法从模型输出中解析 JSON")

// ValidationError 模型输出结构或落地校验失败（对外映射为 422）
// PatchIndex 为 -1 表示与具体 patch 无关的结构错误
type ValidationError struct {
	PatchIndex int
	Fragment   string
	Reason     string
}

func (e *ValidationError) Error() string {
	if e.PatchIndex >= 0 {
		return fmt.Sprintf("patch[%d] 校验失败: %s (片段: %q)", e.PatchIndex, e.Reason, e.Fragment)
	}
	return "校验失败: " + e.Reason
}

// Patch 一条结构化修改建议：标签 + 原文片段 + 替换片段
type Patch struct {
	Tag  string `json:"tag"`
	From string `json:"from"`
	To   string `json:"to"`
}

// ImprovedPrompt 校验通过的分析结果，是返回给调用方和写入审计的规范形态
type ImprovedPrompt struct {
	Topic          string  `json:"topic"`
	Patches        []Patch `json:"patches"`
	FullSuggestion string  `json:"full_suggestion"`
}

// Recommendation 推荐提示词条目
type Recommendation struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

const (
	topicMaxRunes = 30
	patchesMax    = 30
	recommendMax  = 3
)

// CoerceJSON 从模型自由文本输出中提取 JSON 对象并反序列化到 v
// 先整体解析；失败则取首个 '{' 到最后一个 '}' 的子串重试；都失败返回 ErrParse
func CoerceJSON(raw string, v any) error {
	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		if err := json.Unmarshal([]byte(raw[start:end+1]), v); err == nil {
			return nil
		}
	}
	return ErrParse
}

// ParseImprovedPrompt 解析并校验 analyze-prompt 的模型输出
// original 为用户原始提示词，用于落地校验；失败时整体拒绝，不做部分接受
func ParseImprovedPrompt(raw, original string) (*ImprovedPrompt, error) {
	var result ImprovedPrompt
	if err := CoerceJSON(raw, &result); err != nil {
		return nil, err
	}
	if err := validateImprovedPrompt(&result, original); err != nil {
		return nil, err
	}
	return &result, nil
}

// validateImprovedPrompt 结构校验 + 标签白名单 + 落地校验
func validateImprovedPrompt(p *ImprovedPrompt, original string) error {
	p.Topic = strings.TrimSpace(p.Topic)
	if p.Topic == "" {
		return &ValidationError{PatchIndex: -1, Reason: "topic 为空"}
	}
	if utf8.RuneCountInString(p.Topic) > topicMaxRunes {
		return &ValidationError{PatchIndex: -1, Fragment: p.Topic,
			Reason: fmt.Sprintf("topic 超过 %d 字", topicMaxRunes)}
	}
	if strings.TrimSpace(p.FullSuggestion) == "" {
		return &ValidationError{PatchIndex: -1, Reason: "full_suggestion 为空"}
	}
	if len(p.Patches) == 0 {
		return &ValidationError{PatchIndex: -1, Reason: "patches 为空"}
	}
	if len(p.Patches) > patchesMax {
		return &ValidationError{PatchIndex: -1,
			Reason: fmt.Sprintf("patches 超过 %d 条", patchesMax)}
	}

	// 落地校验：每条 patch 的 from 必须按从左到右、互不重叠的顺序出现在原文中
	// 游标指向上一条匹配的结束偏移，已被占用的文本不能再次匹配
	cursor := 0
	for i := range p.Patches {
		patch := &p.Patches[i]
		patch.Tag = strings.TrimSpace(patch.Tag)
		patch.From = strings.TrimSpace(patch.From)
		patch.To = strings.TrimSpace(patch.To)

		if patch.Tag == "" || patch.From == "" || patch.To == "" {
			return &ValidationError{PatchIndex: i, Fragment: patch.From,
				Reason: "tag/from/to 不能为空"}
		}
		if !IsKnownTag(patch.Tag) {
			return &ValidationError{PatchIndex: i, Fragment: patch.Tag,
				Reason: "tag 不在标准标签集合内"}
		}

		idx := strings.Index(original[cursor:], patch.From)
		if idx < 0 {
			return &ValidationError{PatchIndex: i, Fragment: patch.From,
				Reason: "片段在原文剩余部分中不存在"}
		}
		cursor += idx + len(patch.From)
	}
	return nil
}

// ParseRecommendations 解析并校验 recommended-prompts 的模型输出
// 与 analyze 路径采用同等的结构校验纪律；落地校验不适用（没有可锚定的原文）
func ParseRecommendations(raw string) ([]Recommendation, error) {
	var result struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	if err := CoerceJSON(raw, &result); err != nil {
		return nil, err
	}

	items := result.Recommendations
	if len(items) > recommendMax {
		items = items[:recommendMax]
	}
	for i := range items {
		items[i].Title = strings.TrimSpace(items[i].Title)
		items[i].Content = strings.TrimSpace(items[i].Content)
		if items[i].Title == "" || items[i].Content == "" {
			return nil, &ValidationError{PatchIndex: i, Reason: "推荐条目的 title/content 不能为空"}
		}
		if items[i].ID == 0 {
			items[i].ID = i + 1
		}
	}
	return items, nil
}
