package model

import "time"

// VibeWhisper 30 分钟粒度的语音转写 — 对应 vibe_whisper
// Transcription 为 nil 或空串表示录音成功但无发话；整行缺失才是缺测
type VibeWhisper struct {
	DeviceID      string    `gorm:"type:uuid;primaryKey"       json:"device_id"`
	Date          time.Time `gorm:"type:date;primaryKey"       json:"date"`
	TimeBlock     string    `gorm:"type:varchar(5);primaryKey" json:"time_block"`
	Transcription *string   `json:"transcription,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (VibeWhisper) TableName() string { return "vibe_whisper" }
