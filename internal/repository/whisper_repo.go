package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hey-watchme/api-vibe-aggregator/internal/model"
)

// WhisperRepository 语音转写数据访问接口
type WhisperRepository interface {
	// GetByTimeBlock 返回指定时间块的转写记录；无记录时返回 gorm.ErrRecordNotFound
	GetByTimeBlock(ctx context.Context, deviceID, date, timeBlock string) (*model.VibeWhisper, error)
}

// whisperRepo WhisperRepository 的 GORM 实现
type whisperRepo struct {
	db *gorm.DB
}

// NewWhisperRepo 创建 WhisperRepository 实例
func NewWhisperRepo(db *gorm.DB) WhisperRepository {
	return &whisperRepo{db: db}
}

func (r *whisperRepo) GetByTimeBlock(ctx context.Context, deviceID, date, timeBlock string) (*model.VibeWhisper, error) {
	var row model.VibeWhisper
	err := r.db.WithContext(ctx).
		Where("device_id = ? AND date = ? AND time_block = ?", deviceID, date, timeBlock).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
