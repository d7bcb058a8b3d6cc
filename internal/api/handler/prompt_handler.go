package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hey-watchme/api-vibe-aggregator/internal/dto"
	"github.com/hey-watchme/api-vibe-aggregator/internal/service"
	"github.com/hey-watchme/api-vibe-aggregator/internal/timegrid"
	"github.com/hey-watchme/api-vibe-aggregator/pkg/response"
)

// PromptHandler 转写聚合管线 HTTP 处理器
type PromptHandler struct {
	promptSvc service.WhisperPromptService
}

// NewPromptHandler 创建 PromptHandler
func NewPromptHandler(promptSvc service.WhisperPromptService) *PromptHandler {
	return &PromptHandler{promptSvc: promptSvc}
}

// GenerateMoodPrompt 聚合一日转写并生成心理グラフ用プロンプト
// GET /generate-mood-prompt-supabase?device_id=xxx&date=YYYY-MM-DD
func (h *PromptHandler) GenerateMoodPrompt(c *gin.Context) {
	var query dto.GeneratePromptQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "device_id と date は必須パラメータです")
		return
	}

	result, err := h.promptSvc.Generate(c.Request.Context(), query.DeviceID, query.Date)
	if err != nil {
		handleAggregatorError(c, err)
		return
	}

	response.OK(c, result)
}

// handleAggregatorError 业务错误到 HTTP 状态码的统一映射
func handleAggregatorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, timegrid.ErrInvalidDate):
		response.BadRequest(c, "無効な日付形式です。YYYY-MM-DD形式で入力してください。")
	case errors.Is(err, timegrid.ErrInvalidTimeBlock):
		response.BadRequest(c, "無効な時間ブロック形式です。HH-MM形式（例: 14-30）で入力してください。")
	default:
		response.InternalError(c, err.Error())
	}
}
