package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/hey-watchme/api-vibe-aggregator/internal/model"
)

// ── Mock Repositories ──

var errMockDB = errors.New("mock db error")

type mockWhisperRepo struct {
	// rows key: device|date|time_block
	rows map[string]*model.VibeWhisper
	// errBlocks 命中的时间块返回数据库错误（模拟部分拉取失败）
	errBlocks map[string]bool
}

func newMockWhisperRepo() *mockWhisperRepo {
	return &mockWhisperRepo{
		rows:      make(map[string]*model.VibeWhisper),
		errBlocks: make(map[string]bool),
	}
}

func whisperKey(deviceID, date, timeBlock string) string {
	return fmt.Sprintf("%s|%s|%s", deviceID, date, timeBlock)
}

func (m *mockWhisperRepo) GetByTimeBlock(_ context.Context, deviceID, date, timeBlock string) (*model.VibeWhisper, error) {
	if m.errBlocks[timeBlock] {
		return nil, errMockDB
	}
	if row, ok := m.rows[whisperKey(deviceID, date, timeBlock)]; ok {
		return row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type mockWhisperPromptRepo struct {
	mu       sync.Mutex
	saved    *model.VibeWhisperPrompt
	saveErr  error
	upserted int
}

func newMockWhisperPromptRepo() *mockWhisperPromptRepo {
	return &mockWhisperPromptRepo{}
}

func (m *mockWhisperPromptRepo) Upsert(_ context.Context, p *model.VibeWhisperPrompt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = p
	m.upserted++
	return nil
}

type mockDashboardRepo struct {
	// completed 按 ListCompleted 的返回顺序预置（time_block 升序）
	completed []model.Dashboard
	listErr   error
	saved     *model.Dashboard
	saveErr   error
}

func newMockDashboardRepo() *mockDashboardRepo {
	return &mockDashboardRepo{}
}

func (m *mockDashboardRepo) ListCompleted(_ context.Context, _, _ string) ([]model.Dashboard, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.completed, nil
}

func (m *mockDashboardRepo) Upsert(_ context.Context, d *model.Dashboard) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = d
	return nil
}

type mockSummaryRepo struct {
	saved   *model.DashboardSummary
	saveErr error
}

func newMockSummaryRepo() *mockSummaryRepo {
	return &mockSummaryRepo{}
}

func (m *mockSummaryRepo) Upsert(_ context.Context, s *model.DashboardSummary) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = s
	return nil
}

type mockDeviceRepo struct {
	devices map[string]*model.Device
	getErr  error
}

func newMockDeviceRepo() *mockDeviceRepo {
	return &mockDeviceRepo{devices: make(map[string]*model.Device)}
}

func (m *mockDeviceRepo) GetWithSubject(_ context.Context, deviceID string) (*model.Device, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if d, ok := m.devices[deviceID]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── 测试辅助 ──

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }
