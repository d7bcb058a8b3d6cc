package model

import "time"

// DashboardSummary 累积日报产物 — 对应 dashboard_summary
// 以 (device_id, date) 为自然键 UPSERT，重复生成直接覆盖
type DashboardSummary struct {
	DeviceID string    `gorm:"type:uuid;primaryKey" json:"device_id"`
	Date     time.Time `gorm:"type:date;primaryKey" json:"date"`
	Prompt   string    `gorm:"not null"             json:"prompt"`
	// VibeScores 固定 48 元素（图表绘制用），缺测槽位为 null
	VibeScores ScoreArray `gorm:"type:jsonb" json:"vibe_scores"`
	// AverageVibe 有效分均值；全缺测时为 nil（与测定均值 0 区分）
	AverageVibe    *float64  `json:"average_vibe,omitempty"`
	ProcessedCount int       `gorm:"not null;default:0" json:"processed_count"`
	LastTimeBlock  *string   `gorm:"type:varchar(5)"    json:"last_time_block,omitempty"`
	UpdatedAt      time.Time `gorm:"not null"           json:"updated_at"`
}

// TableName 指定表名
func (DashboardSummary) TableName() string { return "dashboard_summary" }
