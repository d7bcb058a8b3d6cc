package model

import "time"

// Dashboard 状态枚举
const (
	DashboardStatusPending   = "pending"
	DashboardStatusCompleted = "completed"
)

// Dashboard 30 分钟粒度的情绪分析结果 — 对应 dashboard
// VibeScore 为 nil 表示已完成处理但情绪分未测定；测定值 0 是合法的中性分
type Dashboard struct {
	DeviceID       string     `gorm:"type:uuid;primaryKey"       json:"device_id"`
	Date           time.Time  `gorm:"type:date;primaryKey"       json:"date"`
	TimeBlock      string     `gorm:"type:varchar(5);primaryKey" json:"time_block"`
	Summary        *string    `json:"summary,omitempty"`
	VibeScore      *int       `json:"vibe_score,omitempty"`
	Status         string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Behavior       *string    `json:"behavior,omitempty"`
	Prompt         *string    `json:"prompt,omitempty"`
	AnalysisResult *string    `gorm:"type:jsonb" json:"analysis_result,omitempty"`
	ProcessedAt    *time.Time `json:"processed_at,omitempty"`
	CreatedAt      time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName 指定表名
func (Dashboard) TableName() string { return "dashboard" }
