package api

import (
	"errors"
	"log"
	"time"

	"click/config"
	"click/database"
	"click/middleware"
	"click/models"
	"click/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	cfg   *config.Config
	email *service.EmailService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config, email *service.EmailService) *AuthHandler {
	return &AuthHandler{cfg: cfg, email: email}
}

// RegisterRequest 注册请求，设备号升级为带密码的账号
type RegisterRequest struct {
	DeviceUUID string `json:"device_uuid" binding:"required"`
	Nickname   string `json:"nickname" binding:"required,min=2,max=50"`
	Password   string `json:"password" binding:"required,min=6,max=50"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	DeviceUUID string `json:"device_uuid" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// SendCodeRequest 发送验证码请求
type SendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyCodeRequest 校验验证码请求
type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// Register 将匿名设备升级为带密码的账号
// @Summary 注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册请求"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	deviceUUID, err := parseDeviceUUID(req.DeviceUUID)
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
	if user.Password != "" {
		BadRequest(c, "该设备已注册")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("密码加密失败: %v", err)
		InternalError(c, "内部错误")
		return
	}

	updates := map[string]interface{}{
		"nickname": req.Nickname,
		"password": string(hashed),
	}
	if err := database.DB.Model(&models.User{}).Where("user_id = ?", user.UserID).Updates(updates).Error; err != nil {
		log.Printf("更新用户失败: %v", err)
		InternalError(c, "内部错误")
		return
	}

	user.Nickname = req.Nickname
	SuccessWithMessage(c, "注册成功", user)
}

// Login 使用设备号与密码登录
// @Summary 登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录请求"
// @Success 200 {object} Response{data=LoginResponse}
// @Failure 401 {object} Response
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
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
			Unauthorized(c, "设备号或密码错误")
			return
		}
		log.Printf("查询用户失败: %v", err)
		InternalError(c, "内部错误")
		return
	}

	if user.Password == "" || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		Unauthorized(c, "设备号或密码错误")
		return
	}

	token, err := middleware.GenerateToken(user.UserID, user.Nickname, h.cfg.JWT.ExpireTime)
	if err != nil {
		log.Printf("生成令牌失败: %v", err)
		InternalError(c, "内部错误")
		return
	}

	now := time.Now()
	if err := database.DB.Model(&models.User{}).Where("user_id = ?", user.UserID).
		Update("last_login_at", now).Error; err != nil {
		log.Printf("更新登录时间失败: %v", err)
	}
	user.LastLoginAt = &now

	Success(c, LoginResponse{Token: token, User: user})
}

// GetProfile 获取当前登录用户信息
// @Summary 用户信息
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User}
// @Failure 401 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "用户不存在")
			return
		}
		log.Printf("查询用户失败: %v", err)
		InternalError(c, "内部错误")
		return
	}

	Success(c, &user)
}

// SendVerificationCode 发送邮箱绑定验证码
// @Summary 发送验证码
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendCodeRequest true "发送验证码请求"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/auth/send-code [post]
func (h *AuthHandler) SendVerificationCode(c *gin.Context) {
	var req SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	if !h.cfg.Email.Enabled {
		BadRequest(c, "邮件服务未开启")
		return
	}

	code, err := models.GenerateVerificationCode()
	if err != nil {
		log.Printf("生成验证码失败: %v", err)
		InternalError(c, "内部错误")
		return
	}

	verification := models.EmailVerification{
		Email:     req.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	if err := database.DB.Create(&verification).Error; err != nil {
		log.Printf("保存验证码失败: %v", err)
		InternalError(c, "内部错误")
		return
	}

	if err := h.email.SendVerificationCode(req.Email, code); err != nil {
		log.Printf("发送验证码邮件失败: %v", err)
		InternalError(c, "验证码发送失败，请稍后重试")
		return
	}

	SuccessWithMessage(c, "验证码已发送", nil)
}

// VerifyEmailCode 校验验证码并绑定邮箱
// @Summary 绑定邮箱
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body VerifyCodeRequest true "校验验证码请求"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/auth/verify-code [post]
func (h *AuthHandler) VerifyEmailCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	var verification models.EmailVerification
	err := database.DB.Where("email = ? AND code = ? AND used = ?", req.Email, req.Code, false).
		Order("created_at DESC").First(&verification).Error
	if err != nil {
		BadRequest(c, "验证码错误或已失效")
		return
	}
	if verification.IsExpired() {
		BadRequest(c, "验证码已过期")
		return
	}

	if err := database.DB.Model(&verification).Update("used", true).Error; err != nil {
		log.Printf("更新验证码状态失败: %v", err)
		InternalError(c, "内部错误")
		return
	}

	userID := middleware.GetCurrentUserID(c)
	if err := database.DB.Model(&models.User{}).Where("user_id = ?", userID).
		Update("email", req.Email).Error; err != nil {
		log.Printf("绑定邮箱失败: %v", err)
		InternalError(c, "内部错误")
		return
	}

	SuccessWithMessage(c, "邮箱绑定成功", nil)
}
