package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/hey-watchme/api-vibe-aggregator/config"
	"github.com/hey-watchme/api-vibe-aggregator/internal/model"
	"github.com/hey-watchme/api-vibe-aggregator/internal/repository"
	"github.com/hey-watchme/api-vibe-aggregator/internal/timegrid"
	"github.com/hey-watchme/api-vibe-aggregator/internal/timeline"
)

func setupSummaryService() (SummaryService, *mockDashboardRepo, *mockSummaryRepo, *mockDeviceRepo) {
	dashboardRepo := newMockDashboardRepo()
	summaryRepo := newMockSummaryRepo()
	deviceRepo := newMockDeviceRepo()
	repo := &repository.Repository{
		Whisper:       newMockWhisperRepo(),
		WhisperPrompt: newMockWhisperPromptRepo(),
		Dashboard:     dashboardRepo,
		Summary:       summaryRepo,
		Device:        deviceRepo,
	}
	cfg := &config.Config{}
	cfg.Aggregator.BurstThreshold = timeline.DefaultBurstThreshold
	cfg.Aggregator.SubjectCacheTTLMinutes = 60
	svc := NewSummaryService(cfg, repo, nil, zap.NewNop())
	return svc, dashboardRepo, summaryRepo, deviceRepo
}

func completedRow(timeBlock, summary string, score *int) model.Dashboard {
	return model.Dashboard{
		DeviceID:  testDeviceID,
		TimeBlock: timeBlock,
		Summary:   strPtr(summary),
		VibeScore: score,
		Status:    model.DashboardStatusCompleted,
	}
}

func TestSummaryService_Generate_Success(t *testing.T) {
	svc, dashboardRepo, summaryRepo, _ := setupSummaryService()
	dashboardRepo.completed = []model.Dashboard{
		completedRow("08-00", "朝食を楽しむ", intPtr(40)),
		completedRow("08-30", "忘れ物に気づき慌てる", intPtr(-10)),
		completedRow("09-00", "友達と登園", intPtr(30)),
	}

	result, err := svc.Generate(context.Background(), testDeviceID, testDate)
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	if result.Status != "success" {
		t.Errorf("期望 status=success，实际=%s", result.Status)
	}
	if result.ProcessedCount != 3 {
		t.Errorf("期望 processed_count=3，实际=%d", result.ProcessedCount)
	}
	if result.LastTimeBlock == nil || *result.LastTimeBlock != "09-00" {
		t.Errorf("期望 last_time_block=09-00，实际=%v", result.LastTimeBlock)
	}
	// vibe_scores_count 为有效分个数，非 48 元素数组长度
	if result.VibeScoresCount != 3 {
		t.Errorf("期望 vibe_scores_count=3，实际=%d", result.VibeScoresCount)
	}
	if result.AverageVibe == nil || *result.AverageVibe != 20.0 {
		t.Errorf("期望 average_vibe=20.0，实际=%v", result.AverageVibe)
	}

	st := result.Statistics
	if st == nil {
		t.Fatal("应返回统计信息")
	}
	if st.ValidScoreCount != 3 {
		t.Errorf("期望 valid_score_count=3，实际=%d", st.ValidScoreCount)
	}
	// 块数口径：>20 为 positive，<-20 为 negative，其余为 neutral
	if st.PositiveBlocks != 2 || st.NegativeBlocks != 0 || st.NeutralBlocks != 1 {
		t.Errorf("块数分布不正确: +%d/-%d/0:%d",
			st.PositiveBlocks, st.NegativeBlocks, st.NeutralBlocks)
	}
	// 时长口径：>0 / <0 / ==0，每块 0.5 小时
	if st.PositiveHours != 1.0 || st.NegativeHours != 0.5 {
		t.Errorf("时长分布不正确: +%.1f/-%.1f", st.PositiveHours, st.NegativeHours)
	}

	saved := summaryRepo.saved
	if saved == nil {
		t.Fatal("应有落库记录")
	}
	if len(saved.VibeScores) != timegrid.SlotsPerDay {
		t.Errorf("落库 vibe_scores 应为 48 元素，实际=%d", len(saved.VibeScores))
	}
	if saved.Prompt != result.Prompt {
		t.Error("落库プロンプト应与响应一致")
	}
	if !strings.Contains(saved.Prompt, "[08:00]  +40 | 朝食を楽しむ") {
		t.Error("プロンプト中应包含时间线行")
	}
}

func TestSummaryService_Generate_NoData(t *testing.T) {
	svc, _, summaryRepo, _ := setupSummaryService()

	result, err := svc.Generate(context.Background(), testDeviceID, testDate)
	if err != nil {
		t.Fatalf("无数据不是错误: %v", err)
	}
	if result.Status != "warning" {
		t.Errorf("期望 status=warning，实际=%s", result.Status)
	}
	if !strings.Contains(result.Message, testDeviceID) || !strings.Contains(result.Message, testDate) {
		t.Errorf("警告消息应包含 device_id 与 date: %s", result.Message)
	}
	if summaryRepo.saved != nil {
		t.Error("无数据时不应有任何落库")
	}
}

func TestSummaryService_Generate_BurstInPrompt(t *testing.T) {
	svc, dashboardRepo, _, _ := setupSummaryService()
	dashboardRepo.completed = []model.Dashboard{
		completedRow("09-00", "静かに遊ぶ", intPtr(10)),
		completedRow("09-30", "誕生日を祝うシーン", intPtr(45)),
	}

	result, err := svc.Generate(context.Background(), testDeviceID, testDate)
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	// 突变事件报告在较早时间块的时刻
	if !strings.Contains(result.Prompt, "- 09:00: スコアが10から45へ変化（変化量: +35）") {
		t.Errorf("プロンプト中应包含突变事件行:\n%s", result.Prompt)
	}
	if !strings.Contains(result.Prompt, "状況: 誕生日を祝うシーン") {
		t.Error("突变事件应附带后块概要")
	}
}

func TestSummaryService_Generate_TrivialFilteredButCounted(t *testing.T) {
	svc, dashboardRepo, _, _ := setupSummaryService()
	dashboardRepo.completed = []model.Dashboard{
		completedRow("02-00", "睡眠中", intPtr(0)),
		completedRow("08-00", "朝食を楽しむ", intPtr(40)),
	}

	result, err := svc.Generate(context.Background(), testDeviceID, testDate)
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	// 自明内容不进时间线，但仍参与统计
	if strings.Contains(result.Prompt, "睡眠中") {
		t.Error("自明内容不应出现在时间线中")
	}
	if result.Statistics.ValidScoreCount != 2 {
		t.Errorf("自明内容的分值仍应计入统计，实际 valid=%d", result.Statistics.ValidScoreCount)
	}
}

func TestSummaryService_Generate_ValidScoreCount(t *testing.T) {
	svc, dashboardRepo, summaryRepo, _ := setupSummaryService()
	dashboardRepo.completed = []model.Dashboard{
		completedRow("08-00", "朝食を楽しむ", intPtr(40)),
		completedRow("08-30", "散歩の様子", nil),
		completedRow("09-00", "友達と登園", intPtr(30)),
	}

	result, err := svc.Generate(context.Background(), testDeviceID, testDate)
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	// 未测定（nil）分值不计入 vibe_scores_count
	if result.VibeScoresCount != 2 {
		t.Errorf("期望 vibe_scores_count=2，实际=%d", result.VibeScoresCount)
	}
	if result.ProcessedCount != 3 {
		t.Errorf("期望 processed_count=3，实际=%d", result.ProcessedCount)
	}
	// 落库数组长度不受影响，仍为固定 48 槽位
	if len(summaryRepo.saved.VibeScores) != timegrid.SlotsPerDay {
		t.Errorf("落库 vibe_scores 应为 48 元素，实际=%d", len(summaryRepo.saved.VibeScores))
	}
}

func TestSummaryService_Generate_AllScoresNil(t *testing.T) {
	svc, dashboardRepo, summaryRepo, _ := setupSummaryService()
	dashboardRepo.completed = []model.Dashboard{
		completedRow("10-00", "散歩の様子", nil),
	}

	result, err := svc.Generate(context.Background(), testDeviceID, testDate)
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	// 全缺测时均值为 nil（与测定均值 0 区分）
	if result.AverageVibe != nil {
		t.Errorf("全缺测时 average_vibe 应为 nil，实际=%v", *result.AverageVibe)
	}
	if summaryRepo.saved.AverageVibe != nil {
		t.Error("落库 average_vibe 应为 nil")
	}
}

func TestSummaryService_Generate_SubjectFromDevice(t *testing.T) {
	svc, dashboardRepo, _, deviceRepo := setupSummaryService()
	dashboardRepo.completed = []model.Dashboard{
		completedRow("08-00", "朝食を楽しむ", intPtr(40)),
	}
	deviceRepo.devices[testDeviceID] = &model.Device{
		DeviceID: testDeviceID,
		Subject: &model.Subject{
			Age:    intPtr(7),
			Gender: strPtr("男の子"),
			Notes:  strPtr("活発な性格"),
		},
	}

	result, err := svc.Generate(context.Background(), testDeviceID, testDate)
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	if !strings.Contains(result.Prompt, "7歳の男の子（活発な性格）") {
		t.Error("プロンプト中应包含観測対象者描述")
	}
}

func TestSummaryService_Generate_SubjectLookupFailureDegrades(t *testing.T) {
	svc, dashboardRepo, _, deviceRepo := setupSummaryService()
	dashboardRepo.completed = []model.Dashboard{
		completedRow("08-00", "朝食を楽しむ", intPtr(40)),
	}
	deviceRepo.getErr = errMockDB

	result, err := svc.Generate(context.Background(), testDeviceID, testDate)
	if err != nil {
		t.Fatalf("観測対象者取得失败不应中断主流程: %v", err)
	}
	if !strings.Contains(result.Prompt, "観測対象者情報なし") {
		t.Error("取得失败时应回退到「情報なし」")
	}
}

func TestSummaryService_Generate_ListFailure(t *testing.T) {
	svc, dashboardRepo, _, _ := setupSummaryService()
	dashboardRepo.listErr = errMockDB

	_, err := svc.Generate(context.Background(), testDeviceID, testDate)
	if !errors.Is(err, ErrStoreQuery) {
		t.Errorf("期望 ErrStoreQuery，实际: %v", err)
	}
}

func TestSummaryService_Generate_PersistFailure(t *testing.T) {
	svc, dashboardRepo, summaryRepo, _ := setupSummaryService()
	dashboardRepo.completed = []model.Dashboard{
		completedRow("08-00", "朝食を楽しむ", intPtr(40)),
	}
	summaryRepo.saveErr = errMockDB

	_, err := svc.Generate(context.Background(), testDeviceID, testDate)
	if !errors.Is(err, ErrPersistFailed) {
		t.Errorf("期望 ErrPersistFailed，实际: %v", err)
	}
}

func TestSummaryService_Generate_InvalidDate(t *testing.T) {
	svc, _, _, _ := setupSummaryService()

	_, err := svc.Generate(context.Background(), testDeviceID, "08-30-2025")
	if !errors.Is(err, timegrid.ErrInvalidDate) {
		t.Errorf("期望 ErrInvalidDate，实际: %v", err)
	}
}
