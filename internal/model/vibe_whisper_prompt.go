package model

import "time"

// VibeWhisperPrompt 转写聚合产物 — 对应 vibe_whisper_prompt
// 以 (device_id, date) 为自然键 UPSERT，每设备每日至多一条，不保留历史
type VibeWhisperPrompt struct {
	DeviceID       string    `gorm:"type:uuid;primaryKey" json:"device_id"`
	Date           time.Time `gorm:"type:date;primaryKey" json:"date"`
	Prompt         string    `gorm:"not null"             json:"prompt"`
	ProcessedFiles int       `gorm:"not null;default:0"   json:"processed_files"`
	// MissingFiles 缺损时间块标签；拉取失败的块带 " (取得エラー)" 后缀以区别于真缺口
	MissingFiles StringArray `gorm:"type:jsonb" json:"missing_files"`
	GeneratedAt  time.Time   `gorm:"not null"   json:"generated_at"`
}

// TableName 指定表名
func (VibeWhisperPrompt) TableName() string { return "vibe_whisper_prompt" }
