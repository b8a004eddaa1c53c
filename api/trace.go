package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"click/database"
	"click/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TraceHandler 对话轨迹处理器
type TraceHandler struct{}

// NewTraceHandler 创建对话轨迹处理器
func NewTraceHandler() *TraceHandler {
	return &TraceHandler{}
}

// TraceRequest 轨迹上报请求
type TraceRequest struct {
	DeviceUUID  string `json:"device_uuid" binding:"required"`
	RoomID      string `json:"room_id" binding:"required"`
	InputPrompt string `json:"input_prompt" binding:"required"`
}

// TraceInput 记录用户侧输入
// @Summary 上报用户输入
// @Tags 轨迹
// @Accept json
// @Produce json
// @Param request body TraceRequest true "轨迹请求"
// @Success 200 {object} map[string]string
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/trace_input [post]
func (h *TraceHandler) TraceInput(c *gin.Context) {
	h.trace(c, models.RoleUser)
}

// TraceOutputPrompt 记录 AI 侧输出
// @Summary 上报 AI 输出
// @Tags 轨迹
// @Accept json
// @Produce json
// @Param request body TraceRequest true "轨迹请求"
// @Success 200 {object} map[string]string
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/trace_output_prompt [post]
func (h *TraceHandler) TraceOutputPrompt(c *gin.Context) {
	h.trace(c, models.RoleAI)
}

func (h *TraceHandler) trace(c *gin.Context, role string) {
	var req TraceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	text := strings.TrimSpace(req.InputPrompt)
	if text == "" {
		BadRequest(c, "内容不能为空")
		return
	}

	deviceUUID, err := parseDeviceUUID(req.DeviceUUID)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	// 轨迹只为已知用户记录，不隐式建号
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

	history := models.History{
		UserID: user.UserID,
		RoomID: req.RoomID,
		Role:   role,
		Topic:  models.TruncateTopic(text),
	}
	if err := database.DB.Create(&history).Error; err != nil {
		log.Printf("保存对话轨迹失败: %v", err)
		InternalError(c, "内部错误")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
