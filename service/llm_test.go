package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"click/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(upstream *httptest.Server) *LLMClient {
	return NewLLMClient(config.OpenAIConfig{
		APIKey:         "test-key",
		BaseURL:        upstream.URL,
		Model:          "gpt-4o-mini",
		Temperature:    0.3,
		MaxTokens:      900,
		TimeoutSeconds: 5,
	})
}

func completionBody(content string) string {
	resp := map[string]any{
		"model": "gpt-4o-mini",
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
		"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestLLMClient_ChatCompletion(t *testing.T) {
	var gotReq chatCompletionRequest
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("Role : 你是专家")))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	result, err := client.ChatCompletion(context.Background(), []ChatMessage{
		{Role: "system", Content: GenerateSystemPrompt},
		{Role: "user", Content: "帮我写代码"},
	}, ChatOptions{JSONMode: false})

	require.NoError(t, err)
	assert.Equal(t, "Role : 你是专家", result.Content)
	assert.Equal(t, "gpt-4o-mini", result.Model)
	require.NotNil(t, result.Usage)
	assert.Equal(t, 15, result.Usage.TotalTokens)

	// 请求体使用配置默认参数
	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	assert.InDelta(t, 0.3, gotReq.Temperature, 1e-9)
	assert.Equal(t, 900, gotReq.MaxTokens)
	assert.Nil(t, gotReq.ResponseFormat)
}

func TestLLMClient_ChatCompletion_JSONMode(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		// 单次调用的覆盖参数生效
		assert.InDelta(t, 0.7, req.Temperature, 1e-9)
		assert.Equal(t, 500, req.MaxTokens)
		_, _ = w.Write([]byte(completionBody(`{"ok":true}`)))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	result, err := client.ChatCompletion(context.Background(), []ChatMessage{
		{Role: "user", Content: "x"},
	}, ChatOptions{JSONMode: true, Temperature: 0.7, MaxTokens: 500})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, result.Content)
}

func TestLLMClient_ChatCompletion_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	_, err := client.ChatCompletion(context.Background(), []ChatMessage{{Role: "user", Content: "x"}}, ChatOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestLLMClient_ChatCompletion_EmptyReply(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"model":"m","choices":[]}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	_, err := client.ChatCompletion(context.Background(), []ChatMessage{{Role: "user", Content: "x"}}, ChatOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "为空")
}
