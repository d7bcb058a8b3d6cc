package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hey-watchme/api-vibe-aggregator/internal/model"
)

// SummaryRepository 累积日报产物数据访问接口
type SummaryRepository interface {
	// Upsert 以 (device_id, date) 为冲突键写入，已存在时覆盖
	Upsert(ctx context.Context, s *model.DashboardSummary) error
}

// summaryRepo SummaryRepository 的 GORM 实现
type summaryRepo struct {
	db *gorm.DB
}

// NewSummaryRepo 创建 SummaryRepository 实例
func NewSummaryRepo(db *gorm.DB) SummaryRepository {
	return &summaryRepo{db: db}
}

func (r *summaryRepo) Upsert(ctx context.Context, s *model.DashboardSummary) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "device_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"prompt", "vibe_scores", "average_vibe", "processed_count",
			"last_time_block", "updated_at",
		}),
	}).Create(s).Error
}
