package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hey-watchme/api-vibe-aggregator/internal/dto"
	"github.com/hey-watchme/api-vibe-aggregator/internal/model"
	"github.com/hey-watchme/api-vibe-aggregator/internal/prompt"
	"github.com/hey-watchme/api-vibe-aggregator/internal/repository"
	"github.com/hey-watchme/api-vibe-aggregator/internal/timegrid"
)

// missingFetchErrorSuffix 拉取失败（而非真缺口）的时间块标签后缀
const missingFetchErrorSuffix = " (取得エラー)"

// WhisperPromptService 转写聚合管线业务接口
type WhisperPromptService interface {
	// Generate 聚合一日 48 个时间块的转写并生成心理グラフ用プロンプト
	// 落库以 (device_id, date) 覆盖写入，重复调用幂等
	Generate(ctx context.Context, deviceID, date string) (*dto.WhisperPromptResponse, error)
}

type whisperPromptService struct {
	repo        *repository.Repository
	concurrency int
	logger      *zap.Logger
	now         func() time.Time
}

// NewWhisperPromptService 创建 WhisperPromptService 实例
func NewWhisperPromptService(repo *repository.Repository, concurrency int, logger *zap.Logger) WhisperPromptService {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &whisperPromptService{
		repo:        repo,
		concurrency: concurrency,
		logger:      logger,
		now:         time.Now,
	}
}

// slotFetch 单个时间块的拉取结果
// 三态互斥：processed（有记录，含无发话）/ 真缺口 / 拉取失败
type slotFetch struct {
	line      string
	processed bool
	missing   string
}

func (s *whisperPromptService) Generate(ctx context.Context, deviceID, date string) (*dto.WhisperPromptResponse, error) {
	day, err := timegrid.ValidateDate(date)
	if err != nil {
		return nil, err
	}

	blocks := timegrid.Blocks()

	// 48 个时间块相互独立，按配置做有界并发拉取
	// 结果按下标写入固定数组，输出顺序与并发度无关
	var results [timegrid.SlotsPerDay]slotFetch
	var wg sync.WaitGroup
	sem := make(chan struct{}, s.concurrency)

	for i, block := range blocks {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, block string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = s.fetchSlot(ctx, deviceID, date, block)
		}(i, block)
	}
	wg.Wait()

	var (
		lines          []string
		processedCount int
		missing        []string
	)
	for _, r := range results {
		if r.processed {
			lines = append(lines, r.line)
			processedCount++
		} else {
			missing = append(missing, r.missing)
		}
	}

	s.logger.Info("転写集計完了",
		zap.String("device_id", deviceID),
		zap.String("date", date),
		zap.Int("processed", processedCount),
		zap.Int("missing", len(missing)),
	)

	promptText := prompt.BuildTranscript(date, lines)

	record := &model.VibeWhisperPrompt{
		DeviceID:       deviceID,
		Date:           day,
		Prompt:         promptText,
		ProcessedFiles: processedCount,
		MissingFiles:   model.StringArray(missing),
		GeneratedAt:    s.now(),
	}
	if err := s.repo.WhisperPrompt.Upsert(ctx, record); err != nil {
		s.logger.Error("プロンプト保存に失敗", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	return &dto.WhisperPromptResponse{
		Status: "success",
		Message: fmt.Sprintf(
			"プロンプトが正常に生成され、データベースに保存されました。処理済み: %d個、欠損: %d個",
			processedCount, len(missing)),
	}, nil
}

// fetchSlot 拉取单个时间块并分类
// 个别拉取失败降级为带错误后缀的缺损，绝不中断其余时间块的聚合
func (s *whisperPromptService) fetchSlot(ctx context.Context, deviceID, date, block string) slotFetch {
	row, err := s.repo.Whisper.GetByTimeBlock(ctx, deviceID, date, block)
	switch {
	case err == nil:
		transcription := ""
		if row.Transcription != nil {
			transcription = *row.Transcription
		}
		return slotFetch{line: prompt.TranscriptLine(block, transcription), processed: true}
	case errors.Is(err, gorm.ErrRecordNotFound):
		return slotFetch{missing: block}
	default:
		s.logger.Warn("時間帯の取得エラー",
			zap.String("time_block", block),
			zap.Error(err),
		)
		return slotFetch{missing: block + missingFetchErrorSuffix}
	}
}
