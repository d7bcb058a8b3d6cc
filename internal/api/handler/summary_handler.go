package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hey-watchme/api-vibe-aggregator/internal/dto"
	"github.com/hey-watchme/api-vibe-aggregator/internal/service"
	"github.com/hey-watchme/api-vibe-aggregator/pkg/response"
)

// SummaryHandler 累积日报管线 HTTP 处理器
type SummaryHandler struct {
	summarySvc service.SummaryService
	failedSvc  service.FailedRecordService
}

// NewSummaryHandler 创建 SummaryHandler
func NewSummaryHandler(summarySvc service.SummaryService, failedSvc service.FailedRecordService) *SummaryHandler {
	return &SummaryHandler{summarySvc: summarySvc, failedSvc: failedSvc}
}

// GenerateDashboardSummary 合成累積評価プロンプト并落库
// GET /generate-dashboard-summary?device_id=xxx&date=YYYY-MM-DD
func (h *SummaryHandler) GenerateDashboardSummary(c *gin.Context) {
	var query dto.GeneratePromptQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "device_id と date は必須パラメータです")
		return
	}

	result, err := h.summarySvc.Generate(c.Request.Context(), query.DeviceID, query.Date)
	if err != nil {
		handleAggregatorError(c, err)
		return
	}

	response.OK(c, result)
}

// CreateFailedRecord 为处理失败的时间块写入占位记录
// POST /create-failed-record?device_id=xxx&date=YYYY-MM-DD&time_block=HH-MM
func (h *SummaryHandler) CreateFailedRecord(c *gin.Context) {
	var query dto.CreateFailedRecordQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "device_id・date・time_block は必須パラメータです")
		return
	}

	result, err := h.failedSvc.Create(c.Request.Context(),
		query.DeviceID, query.Date, query.TimeBlock, query.FailureReason, query.ErrorMessage)
	if err != nil {
		handleAggregatorError(c, err)
		return
	}

	response.OK(c, result)
}
