package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hey-watchme/api-vibe-aggregator/internal/model"
)

// DeviceRepository 设备数据访问接口
type DeviceRepository interface {
	// GetWithSubject 返回设备及其关联的观测对象者（未绑定时 Subject 为 nil）
	GetWithSubject(ctx context.Context, deviceID string) (*model.Device, error)
}

// deviceRepo DeviceRepository 的 GORM 实现
type deviceRepo struct {
	db *gorm.DB
}

// NewDeviceRepo 创建 DeviceRepository 实例
func NewDeviceRepo(db *gorm.DB) DeviceRepository {
	return &deviceRepo{db: db}
}

func (r *deviceRepo) GetWithSubject(ctx context.Context, deviceID string) (*model.Device, error) {
	var device model.Device
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Where("device_id = ?", deviceID).
		First(&device).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}
