package dto

// ── 请求参数（查询串绑定）──

// GeneratePromptQuery 两条聚合管线共用的请求参数
type GeneratePromptQuery struct {
	DeviceID string `form:"device_id" binding:"required"`
	Date     string `form:"date"      binding:"required"`
}

// CreateFailedRecordQuery 失败记录写入参数
// FailureReason 缺省为 quota_exceeded（与上游调度器的默认值一致）
type CreateFailedRecordQuery struct {
	DeviceID      string `form:"device_id"  binding:"required"`
	Date          string `form:"date"       binding:"required"`
	TimeBlock     string `form:"time_block" binding:"required"`
	FailureReason string `form:"failure_reason"`
	ErrorMessage  string `form:"error_message"`
}
