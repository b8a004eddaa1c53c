package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"click/config"
	"click/database"
	"click/models"
	"click/service"

	"github.com/gin-gonic/gin"
)

// PromptHandler 提示词处理器
type PromptHandler struct {
	cfg *config.Config
	llm *service.LLMClient
}

// NewPromptHandler 创建提示词处理器
func NewPromptHandler(cfg *config.Config, llm *service.LLMClient) *PromptHandler {
	return &PromptHandler{cfg: cfg, llm: llm}
}

// GeneratePromptRequest 提示词生成请求
type GeneratePromptRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	InputPrompt string `json:"input_prompt" binding:"required"`
}

// GeneratePromptResponse 提示词生成响应
type GeneratePromptResponse struct {
	GeneratedPrompt string `json:"generated_prompt"`
}

// AnalyzePromptRequest 提示词改写请求
type AnalyzePromptRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	InputPrompt string `json:"input_prompt" binding:"required"`
	Language    string `json:"language"`

	Domain                string   `json:"domain"`
	DesiredOutputFormat   string   `json:"desired_output_format"`
	StyleGuide            string   `json:"style_guide"`
	AdditionalConstraints string   `json:"additional_constraints"`
	UserContext           string   `json:"user_context"`
	Examples              string   `json:"examples"`
	EnableRAG             bool     `json:"enable_rag"`
	EnableWeb             bool     `json:"enable_web"`
	KnowledgeSnippets     []string `json:"knowledge_snippets"`

	MaskPII     bool     `json:"mask_pii"`
	Temperature *float64 `json:"temperature"`
	MaxTokens   *int     `json:"max_tokens"`
}

// AnalyzePromptResponse 提示词改写响应
type AnalyzePromptResponse struct {
	Topic          string          `json:"topic"`
	Patches        []service.Patch `json:"patches"`
	FullSuggestion string          `json:"full_suggestion"`
	Model          string          `json:"model"`
	Usage          *service.Usage  `json:"usage,omitempty"`
}

// GeneratePrompt 根据用户描述生成一条结构化提示词
// @Summary 生成提示词
// @Description 将用户的自然语言描述改写为 角色/任务/格式 结构的提示词
// @Tags 提示词
// @Accept json
// @Produce json
// @Param request body GeneratePromptRequest true "生成请求"
// @Success 200 {object} GeneratePromptResponse
// @Failure 400 {object} Response
// @Failure 502 {object} Response
// @Router /api/v1/generate-prompt [post]
func (h *PromptHandler) GeneratePrompt(c *gin.Context) {
	var req GeneratePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	prompt := strings.TrimSpace(req.InputPrompt)
	if prompt == "" {
		BadRequest(c, "提示词不能为空")
		return
	}

	deviceUUID, err := parseDeviceUUID(req.UserID)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	if _, err := getOrCreateUser(deviceUUID); err != nil {
		log.Printf("获取用户失败: %v", err)
		InternalError(c, "内部错误")
		return
	}

	messages := []service.ChatMessage{
		{Role: "system", Content: service.GenerateSystemPrompt},
		{Role: "user", Content: prompt},
	}
	result, err := h.llm.ChatCompletion(c.Request.Context(), messages, service.ChatOptions{})
	if err != nil {
		log.Printf("模型调用失败: %v", err)
		BadGateway(c, SafeErrorMessage(err, "模型服务暂不可用"))
		return
	}

	c.JSON(http.StatusOK, GeneratePromptResponse{GeneratedPrompt: result.Content})
}

// AnalyzePrompt 分析并改写提示词
// @Summary 改写提示词
// @Description 诊断提示词的问题并返回结构化补丁与整体改写建议
// @Tags 提示词
// @Accept json
// @Produce json
// @Param request body AnalyzePromptRequest true "改写请求"
// @Success 200 {object} AnalyzePromptResponse
// @Failure 400 {object} Response
// @Failure 422 {object} Response
// @Failure 502 {object} Response
// @Router /api/v1/analyze-prompt [post]
func (h *PromptHandler) AnalyzePrompt(c *gin.Context) {
	var req AnalyzePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	prompt := strings.TrimSpace(req.InputPrompt)
	if prompt == "" {
		BadRequest(c, "提示词不能为空")
		return
	}

	deviceUUID, err := parseDeviceUUID(req.UserID)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	user, err := getOrCreateUser(deviceUUID)
	if err != nil {
		log.Printf("获取用户失败: %v", err)
		InternalError(c, "内部错误")
		return
	}

	// 开启脱敏时，发给模型的文本与落地校验的文本都是脱敏后的版本，
	// 模型只可能引用它实际看到的文字
	transport := prompt
	if req.MaskPII {
		transport = service.MaskPII(prompt)
	}

	card := service.ContextCard{
		Domain:                req.Domain,
		DesiredOutputFormat:   req.DesiredOutputFormat,
		StyleGuide:            req.StyleGuide,
		AdditionalConstraints: req.AdditionalConstraints,
		UserContext:           req.UserContext,
		Examples:              req.Examples,
		EnableRAG:             req.EnableRAG,
		EnableWeb:             req.EnableWeb,
		KnowledgeSnippets:     req.KnowledgeSnippets,
	}

	opts := service.ChatOptions{JSONMode: true}
	if req.Temperature != nil {
		opts.Temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		opts.MaxTokens = *req.MaxTokens
	}

	messages := []service.ChatMessage{
		{Role: "system", Content: service.ImproveSystemPrompt()},
		{Role: "user", Content: service.BuildUserTurn(req.Language, card, transport)},
	}

	result, err := h.llm.ChatCompletion(c.Request.Context(), messages, opts)
	if err != nil {
		log.Printf("模型调用失败: %v", err)
		BadGateway(c, SafeErrorMessage(err, "模型服务暂不可用"))
		return
	}

	improved, err := service.ParseImprovedPrompt(result.Content, transport)
	if errors.Is(err, service.ErrParse) {
		// 仅重试一次：追加更严格的系统提示，要求只输出 JSON
		retry := append(messages, service.ChatMessage{Role: "system", Content: service.RepairSystemPrompt})
		result, err = h.llm.ChatCompletion(c.Request.Context(), retry, opts)
		if err != nil {
			log.Printf("模型修复重试失败: %v", err)
			BadGateway(c, SafeErrorMessage(err, "模型服务暂不可用"))
			return
		}
		improved, err = service.ParseImprovedPrompt(result.Content, transport)
	}
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			log.Printf("模型输出校验失败: %v", verr)
			UnprocessableEntity(c, verr.Error())
			return
		}
		log.Printf("模型输出解析失败: %v", err)
		BadGateway(c, "模型返回的内容无法解析")
		return
	}

	tags := make([]string, 0, len(improved.Patches))
	for _, p := range improved.Patches {
		tags = append(tags, p.Tag)
	}
	event := models.Event{
		UserID:      user.UserID,
		InputPrompt: prompt,
		FixedPrompt: improved.FullSuggestion,
		Reason:      strings.Join(tags, ","),
	}
	if err := database.DB.Create(&event).Error; err != nil {
		log.Printf("保存改写事件失败: %v", err)
		InternalError(c, "内部错误")
		return
	}

	c.JSON(http.StatusOK, AnalyzePromptResponse{
		Topic:          improved.Topic,
		Patches:        improved.Patches,
		FullSuggestion: improved.FullSuggestion,
		Model:          result.Model,
		Usage:          result.Usage,
	})
}
