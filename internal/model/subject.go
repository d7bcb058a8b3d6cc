package model

import "time"

// Subject 观测对象者 — 对应 subjects
type Subject struct {
	SubjectID string    `gorm:"type:uuid;primaryKey" json:"subject_id"`
	Age       *int      `json:"age,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName 指定表名
func (Subject) TableName() string { return "subjects" }
