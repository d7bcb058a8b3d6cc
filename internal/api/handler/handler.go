package handler

import "github.com/hey-watchme/api-vibe-aggregator/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Prompt  *PromptHandler
	Summary *SummaryHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Prompt:  NewPromptHandler(svc.WhisperPrompt),
		Summary: NewSummaryHandler(svc.Summary, svc.FailedRecord),
	}
}
