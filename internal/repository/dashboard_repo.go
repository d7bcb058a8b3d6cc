package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hey-watchme/api-vibe-aggregator/internal/model"
)

// DashboardRepository 情绪分析结果数据访问接口
type DashboardRepository interface {
	// ListCompleted 按时间块升序返回当日全部已完成记录
	ListCompleted(ctx context.Context, deviceID, date string) ([]model.Dashboard, error)
	// Upsert 以 (device_id, date, time_block) 为冲突键写入，再处理时覆盖
	Upsert(ctx context.Context, d *model.Dashboard) error
}

// dashboardRepo DashboardRepository 的 GORM 实现
type dashboardRepo struct {
	db *gorm.DB
}

// NewDashboardRepo 创建 DashboardRepository 实例
func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db: db}
}

func (r *dashboardRepo) ListCompleted(ctx context.Context, deviceID, date string) ([]model.Dashboard, error) {
	var rows []model.Dashboard
	err := r.db.WithContext(ctx).
		Where("device_id = ? AND date = ? AND status = ?", deviceID, date, model.DashboardStatusCompleted).
		Order("time_block ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dashboardRepo) Upsert(ctx context.Context, d *model.Dashboard) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "device_id"}, {Name: "date"}, {Name: "time_block"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"summary", "vibe_score", "status", "behavior", "prompt",
			"analysis_result", "processed_at", "updated_at",
		}),
	}).Create(d).Error
}
