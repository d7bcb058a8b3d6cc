package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hey-watchme/api-vibe-aggregator/internal/dto"
	"github.com/hey-watchme/api-vibe-aggregator/internal/model"
	"github.com/hey-watchme/api-vibe-aggregator/internal/repository"
	"github.com/hey-watchme/api-vibe-aggregator/internal/timegrid"
)

// DefaultFailureReason 未指定失败原因时的默认值
const DefaultFailureReason = "quota_exceeded"

// userMessages 失败原因到用户可读文案的映射；未知原因走兜底文案
var userMessages = map[string]string{
	"quota_exceeded": "音声の文字起こしに失敗しました。再処理を行っていますので、しばらくお待ちください。",
	"api_error":      "一時的なエラーが発生しました。再処理を行っていますので、しばらくお待ちください。",
}

const fallbackUserMessage = "処理に失敗しました。再処理を行っていますので、しばらくお待ちください。"

// FailedRecordService 失败记录业务接口
type FailedRecordService interface {
	// Create 为上游处理失败的时间块写入占位记录，避免仪表盘出现空洞
	// 重复调用覆盖同一 (device_id, date, time_block) 记录，幂等
	Create(ctx context.Context, deviceID, date, timeBlock, failureReason, errorMessage string) (*dto.FailedRecordResponse, error)
}

type failedRecordService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewFailedRecordService 创建 FailedRecordService 实例
func NewFailedRecordService(repo *repository.Repository, logger *zap.Logger) FailedRecordService {
	return &failedRecordService{repo: repo, logger: logger, now: time.Now}
}

func (s *failedRecordService) Create(ctx context.Context, deviceID, date, timeBlock, failureReason, errorMessage string) (*dto.FailedRecordResponse, error) {
	day, err := timegrid.ValidateDate(date)
	if err != nil {
		return nil, err
	}
	if err := timegrid.ValidateTimeBlock(timeBlock); err != nil {
		return nil, err
	}

	if failureReason == "" {
		failureReason = DefaultFailureReason
	}
	userMessage, ok := userMessages[failureReason]
	if !ok {
		userMessage = fallbackUserMessage
	}

	// 占位记录以中性分 0 落库并标记为已完成，使累积管线无需特判失败块
	// processed_at 保持 NULL：该时间块并未真正完成分析
	zero := 0
	behavior := "不明"
	record := &model.Dashboard{
		DeviceID:  deviceID,
		Date:      day,
		TimeBlock: timeBlock,
		Summary:   &userMessage,
		VibeScore: &zero,
		Status:    model.DashboardStatusCompleted,
		Behavior:  &behavior,
		UpdatedAt: s.now(),
	}
	if err := s.repo.Dashboard.Upsert(ctx, record); err != nil {
		s.logger.Error("失敗レコード保存に失敗", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	s.logger.Info("失敗レコード作成",
		zap.String("device_id", deviceID),
		zap.String("date", date),
		zap.String("time_block", timeBlock),
		zap.String("failure_reason", failureReason),
		zap.String("error_message", errorMessage),
	)

	return &dto.FailedRecordResponse{
		Status:        "success",
		Message:       "失敗レコードを作成しました",
		DeviceID:      deviceID,
		Date:          date,
		TimeBlock:     timeBlock,
		FailureReason: failureReason,
		UserMessage:   userMessage,
	}, nil
}
