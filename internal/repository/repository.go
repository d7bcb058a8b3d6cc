package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Whisper       WhisperRepository
	WhisperPrompt WhisperPromptRepository
	Dashboard     DashboardRepository
	Summary       SummaryRepository
	Device        DeviceRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Whisper:       NewWhisperRepo(db),
		WhisperPrompt: NewWhisperPromptRepo(db),
		Dashboard:     NewDashboardRepo(db),
		Summary:       NewSummaryRepo(db),
		Device:        NewDeviceRepo(db),
	}
}
