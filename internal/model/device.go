package model

import "time"

// Device 录音设备 — 对应 devices
type Device struct {
	DeviceID  string    `gorm:"type:uuid;primaryKey" json:"device_id"`
	SubjectID *string   `gorm:"type:uuid"            json:"subject_id,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// 关联
	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
}

// TableName 指定表名
func (Device) TableName() string { return "devices" }
