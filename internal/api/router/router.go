package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hey-watchme/api-vibe-aggregator/config"
	"github.com/hey-watchme/api-vibe-aggregator/internal/api/handler"
	"github.com/hey-watchme/api-vibe-aggregator/internal/api/middleware"
	"github.com/hey-watchme/api-vibe-aggregator/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// 路由为平铺结构（无版本前缀），与上游 Lambda / 管线调度器的既有调用路径保持一致
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── 聚合管线 ──
	limited := r.Group("")
	limited.Use(middleware.RateLimit(rdb, 120, time.Minute))
	{
		limited.GET("/generate-mood-prompt-supabase", h.Prompt.GenerateMoodPrompt)
		limited.GET("/generate-dashboard-summary", h.Summary.GenerateDashboardSummary)
		limited.POST("/create-failed-record", h.Summary.CreateFailedRecord)
	}

	return r
}
