package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hey-watchme/api-vibe-aggregator/config"
	"github.com/hey-watchme/api-vibe-aggregator/internal/daycontext"
	"github.com/hey-watchme/api-vibe-aggregator/internal/dto"
	"github.com/hey-watchme/api-vibe-aggregator/internal/model"
	"github.com/hey-watchme/api-vibe-aggregator/internal/prompt"
	"github.com/hey-watchme/api-vibe-aggregator/internal/repository"
	"github.com/hey-watchme/api-vibe-aggregator/internal/timegrid"
	"github.com/hey-watchme/api-vibe-aggregator/internal/timeline"
	"github.com/hey-watchme/api-vibe-aggregator/pkg/redis"
)

// SummaryService 累积日报管线业务接口
type SummaryService interface {
	// Generate 读取当日已完成的情绪分析结果，合成累積評価プロンプト并落库
	// 无已完成记录时返回 warning 且不做任何写入
	Generate(ctx context.Context, deviceID, date string) (*dto.DashboardSummaryResponse, error)
}

type summaryService struct {
	repo           *repository.Repository
	rdb            *redis.Client
	burstThreshold int
	subjectTTL     time.Duration
	logger         *zap.Logger
	now            func() time.Time
}

// NewSummaryService 创建 SummaryService 实例
// rdb 允许为 nil：无缓存时每次请求直接联表查询
func NewSummaryService(cfg *config.Config, repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) SummaryService {
	return &summaryService{
		repo:           repo,
		rdb:            rdb,
		burstThreshold: cfg.Aggregator.BurstThreshold,
		subjectTTL:     time.Duration(cfg.Aggregator.SubjectCacheTTLMinutes) * time.Minute,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *summaryService) Generate(ctx context.Context, deviceID, date string) (*dto.DashboardSummaryResponse, error) {
	day, err := timegrid.ValidateDate(date)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Dashboard.ListCompleted(ctx, deviceID, date)
	if err != nil {
		s.logger.Error("情绪分析记录の読み取りに失敗", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStoreQuery, err)
	}
	if len(rows) == 0 {
		return &dto.DashboardSummaryResponse{
			Status: "warning",
			Message: fmt.Sprintf(
				"処理済みデータが見つかりません。device_id: %s, date: %s", deviceID, date),
		}, nil
	}

	entries := make([]timeline.Entry, 0, len(rows))
	for _, row := range rows {
		summary := ""
		if row.Summary != nil {
			summary = *row.Summary
		}
		entries = append(entries, timeline.Entry{
			TimeBlock: row.TimeBlock,
			Summary:   summary,
			Score:     row.VibeScore,
		})
	}

	series := timeline.BuildSeries(entries)
	scores := series.Scores()
	stats := timeline.Compute(scores)
	bursts := timeline.DetectBursts(&series, s.burstThreshold)

	lastTimeBlock := rows[len(rows)-1].TimeBlock

	promptText := prompt.BuildDailySummary(prompt.DailyInput{
		Date:          date,
		Timeline:      entries,
		TotalBlocks:   len(rows),
		LastTimeBlock: lastTimeBlock,
		Subject:       s.resolveSubject(ctx, deviceID),
		Bursts:        bursts,
		Weekday:       daycontext.Weekday(day),
		Holiday:       daycontext.Holiday(day),
		Season:        daycontext.Season(day.Month()),
	})

	record := &model.DashboardSummary{
		DeviceID:       deviceID,
		Date:           day,
		Prompt:         promptText,
		VibeScores:     model.ScoreArray(scores),
		AverageVibe:    stats.MeanOrNil(),
		ProcessedCount: len(rows),
		LastTimeBlock:  &lastTimeBlock,
		UpdatedAt:      s.now(),
	}
	if err := s.repo.Summary.Upsert(ctx, record); err != nil {
		s.logger.Error("累積プロンプト保存に失敗", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	s.logger.Info("累積プロンプト生成完了",
		zap.String("device_id", deviceID),
		zap.String("date", date),
		zap.Int("processed_count", len(rows)),
		zap.Int("burst_events", len(bursts)),
	)

	return &dto.DashboardSummaryResponse{
		Status: "success",
		Message: fmt.Sprintf(
			"ダッシュボードサマリープロンプトを生成し、データベースに保存しました。処理済み: %d個", len(rows)),
		DeviceID:        deviceID,
		Date:            date,
		Prompt:          promptText,
		ProcessedCount:  len(rows),
		LastTimeBlock:   &lastTimeBlock,
		VibeScoresCount: stats.ValidCount,
		AverageVibe:     stats.MeanOrNil(),
		Statistics: &dto.SummaryStatistics{
			AvgVibeScore:    stats.MeanOrNil(),
			PositiveBlocks:  stats.PositiveBlocks,
			NegativeBlocks:  stats.NegativeBlocks,
			NeutralBlocks:   stats.NeutralBlocks,
			ValidScoreCount: stats.ValidCount,
			PositiveHours:   stats.PositiveHours,
			NegativeHours:   stats.NegativeHours,
			NeutralHours:    stats.NeutralHours,
		},
	}, nil
}

// resolveSubject 解析设备关联的观测对象者信息
// 任何失败都降级为 nil（プロンプト中回退到「情報なし」），绝不中断主流程
func (s *summaryService) resolveSubject(ctx context.Context, deviceID string) *prompt.SubjectInfo {
	if s.rdb != nil {
		if b, err := s.rdb.GetSubject(ctx, deviceID); err != nil {
			s.logger.Warn("観測対象者キャッシュの読み取りに失敗（処理は継続）", zap.Error(err))
		} else if b != nil {
			var info prompt.SubjectInfo
			if err := json.Unmarshal(b, &info); err != nil {
				s.logger.Warn("観測対象者キャッシュの解析に失敗（処理は継続）", zap.Error(err))
			} else {
				return &info
			}
		}
	}

	device, err := s.repo.Device.GetWithSubject(ctx, deviceID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("観測対象者情報の取得に失敗（処理は継続）",
				zap.String("device_id", deviceID), zap.Error(err))
		}
		return nil
	}
	if device.Subject == nil {
		return nil
	}

	info := &prompt.SubjectInfo{
		Age:    device.Subject.Age,
		Gender: device.Subject.Gender,
		Notes:  device.Subject.Notes,
	}
	if s.rdb != nil {
		if b, err := json.Marshal(info); err == nil {
			if err := s.rdb.SetSubject(ctx, deviceID, b, s.subjectTTL); err != nil {
				s.logger.Warn("観測対象者キャッシュの書き込みに失敗（処理は継続）", zap.Error(err))
			}
		}
	}
	return info
}
