package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hey-watchme/api-vibe-aggregator/internal/model"
)

// WhisperPromptRepository 转写聚合产物数据访问接口
type WhisperPromptRepository interface {
	// Upsert 以 (device_id, date) 为冲突键写入，已存在时覆盖
	Upsert(ctx context.Context, p *model.VibeWhisperPrompt) error
}

// whisperPromptRepo WhisperPromptRepository 的 GORM 实现
type whisperPromptRepo struct {
	db *gorm.DB
}

// NewWhisperPromptRepo 创建 WhisperPromptRepository 实例
func NewWhisperPromptRepo(db *gorm.DB) WhisperPromptRepository {
	return &whisperPromptRepo{db: db}
}

func (r *whisperPromptRepo) Upsert(ctx context.Context, p *model.VibeWhisperPrompt) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "device_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"prompt", "processed_files", "missing_files", "generated_at",
		}),
	}).Create(p).Error
}
