package dto

// ── 转写聚合管线响应 ──

// WhisperPromptResponse 转写聚合结果
type WhisperPromptResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ── 累积日报管线响应 ──

// SummaryStatistics 累积管线的统计信息
// 时长口径（hours）与块数口径（blocks）阈值不同，分别服务不同消费方
type SummaryStatistics struct {
	AvgVibeScore    *float64 `json:"avg_vibe_score"`
	PositiveBlocks  int      `json:"positive_blocks"`
	NegativeBlocks  int      `json:"negative_blocks"`
	NeutralBlocks   int      `json:"neutral_blocks"`
	ValidScoreCount int      `json:"valid_score_count"`
	PositiveHours   float64  `json:"positive_hours"`
	NegativeHours   float64  `json:"negative_hours"`
	NeutralHours    float64  `json:"neutral_hours"`
}

// DashboardSummaryResponse 累积日报生成结果
// Prompt 字段为上游 Lambda 所依赖，不可省略
type DashboardSummaryResponse struct {
	Status         string  `json:"status"`
	Message        string  `json:"message"`
	DeviceID       string  `json:"device_id,omitempty"`
	Date           string  `json:"date,omitempty"`
	Prompt         string  `json:"prompt,omitempty"`
	ProcessedCount int     `json:"processed_count"`
	LastTimeBlock  *string `json:"last_time_block,omitempty"`
	// VibeScoresCount 有效（非 null）分值个数，非数组长度
	VibeScoresCount int                `json:"vibe_scores_count,omitempty"`
	AverageVibe     *float64           `json:"average_vibe,omitempty"`
	Statistics      *SummaryStatistics `json:"statistics,omitempty"`
}

// ── 失败记录响应 ──

// FailedRecordResponse 失败记录写入结果
type FailedRecordResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	DeviceID      string `json:"device_id"`
	Date          string `json:"date"`
	TimeBlock     string `json:"time_block"`
	FailureReason string `json:"failure_reason"`
	UserMessage   string `json:"user_message"`
}
