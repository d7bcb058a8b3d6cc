package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/hey-watchme/api-vibe-aggregator/config"
	"github.com/hey-watchme/api-vibe-aggregator/internal/repository"
	"github.com/hey-watchme/api-vibe-aggregator/pkg/redis"
)

// ── 跨模块业务错误 ──

var (
	// ErrPersistFailed 最终产物落库失败（已渲染内容不丢弃，整个请求可幂等重试）
	ErrPersistFailed = errors.New("データベース保存エラー")
	// ErrStoreQuery 数据读取失败
	ErrStoreQuery = errors.New("データベース読み取りエラー")
)

// Service 所有 Service 的聚合入口
type Service struct {
	WhisperPrompt WhisperPromptService
	Summary       SummaryService
	FailedRecord  FailedRecordService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		WhisperPrompt: NewWhisperPromptService(repo, cfg.Aggregator.FetchConcurrency, logger),
		Summary:       NewSummaryService(cfg, repo, rdb, logger),
		FailedRecord:  NewFailedRecordService(repo, logger),
	}
}
