package router

import (
	"time"

	"click/api"
	"click/config"
	_ "click/docs"
	"click/middleware"
	"click/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// 模型调用接口的限流参数：同一 IP 每分钟最多 10 次
const (
	modelCallLimit  = 10
	modelCallWindow = time.Minute
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	llm := service.NewLLMClient(cfg.OpenAI)
	emailService := service.NewEmailService(&cfg.Email)

	promptHandler := api.NewPromptHandler(cfg, llm)
	traceHandler := api.NewTraceHandler()
	recommendHandler := api.NewRecommendHandler(cfg, llm)
	authHandler := api.NewAuthHandler(cfg, emailService)
	exportHandler := api.NewExportHandler()

	// API v1 路由组（供客户端使用）
	v1 := r.Group("/api/v1")
	{
		// 模型调用接口单独限流
		modelCall := v1.Group("")
		modelCall.Use(middleware.ModelCallRateLimit(modelCallLimit, modelCallWindow))
		{
			modelCall.POST("/generate-prompt", promptHandler.GeneratePrompt)
			modelCall.POST("/analyze-prompt", promptHandler.AnalyzePrompt)
			modelCall.POST("/recommended-prompts", recommendHandler.RecommendPrompts)
		}

		// 对话轨迹上报
		v1.POST("/trace_input", traceHandler.TraceInput)
		v1.POST("/trace_output_prompt", traceHandler.TraceOutputPrompt)

		// 认证相关路由（无需登录）
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/auth/profile", authHandler.GetProfile)

			// 邮箱绑定
			authorized.POST("/auth/send-code", authHandler.SendVerificationCode)
			authorized.POST("/auth/verify-code", authHandler.VerifyEmailCode)

			// 导出相关
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/excel", exportHandler.ExportExcel)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
