package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"click/config"
	"click/database"
	"click/models"
	"click/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 推荐话题批量大小：单房间取最近 5 条，跨房间取最近 20 条
const (
	recommendRoomBatch = 5
	recommendUserBatch = 20
)

// RecommendHandler 推荐提示词处理器
type RecommendHandler struct {
	cfg *config.Config
	llm *service.LLMClient
}

// NewRecommendHandler 创建推荐提示词处理器
func NewRecommendHandler(cfg *config.Config, llm *service.LLMClient) *RecommendHandler {
	return &RecommendHandler{cfg: cfg, llm: llm}
}

// RecommendRequest 推荐请求，room_id 为空时跨房间取话题
type RecommendRequest struct {
	DeviceUUID string `json:"device_uuid" binding:"required"`
	RoomID     string `json:"room_id"`
}

// RecommendPrompts 基于最近对话话题推荐后续提示词
// @Summary 推荐提示词
// @Description 取用户最近的对话话题，让模型生成最多 3 条后续提示词
// @Tags 推荐
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "推荐请求"
// @Success 200 {array} service.Recommendation
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 502 {object} Response
// @Router /api/v1/recommended-prompts [post]
func (h *RecommendHandler) RecommendPrompts(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	deviceUUID, err := parseDeviceUUID(req.DeviceUUID)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	user, err := findUserByDeviceUUID(deviceUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "用户不存在")
			return
		}
		log.Printf("查询用户失败: %v", err)
		InternalError(c, "内部错误")
		return
	}

	query := database.DB.Model(&models.History{}).
		Where("user_id = ?", user.UserID).
		Order("created_at DESC")
	if req.RoomID != "" {
		query = query.Where("room_id = ?", req.RoomID).Limit(recommendRoomBatch)
	} else {
		query = query.Limit(recommendUserBatch)
	}

	var topics []string
	if err := query.Pluck("topic", &topics).Error; err != nil {
		log.Printf("查询对话话题失败: %v", err)
		InternalError(c, "内部错误")
		return
	}

	// 没有任何历史就不调模型，直接回空列表
	if len(topics) == 0 {
		c.JSON(http.StatusOK, []service.Recommendation{})
		return
	}

	payload, err := json.Marshal(gin.H{"topics": topics})
	if err != nil {
		InternalError(c, "内部错误")
		return
	}

	messages := []service.ChatMessage{
		{Role: "system", Content: service.RecommendSystemPrompt},
		{Role: "user", Content: string(payload)},
	}
	result, err := h.llm.ChatCompletion(c.Request.Context(), messages, service.ChatOptions{JSONMode: true})
	if err != nil {
		log.Printf("模型调用失败: %v", err)
		BadGateway(c, SafeErrorMessage(err, "模型服务暂不可用"))
		return
	}

	items, err := service.ParseRecommendations(result.Content)
	if err != nil {
		// 推荐场景下结构问题都是上游的问题，客户端无法修正
		log.Printf("推荐结果解析失败: %v", err)
		BadGateway(c, "模型返回的内容无法解析")
		return
	}

	c.JSON(http.StatusOK, items)
}
