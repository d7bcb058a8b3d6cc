package timeline

import (
	"github.com/hey-watchme/api-vibe-aggregator/internal/timegrid"
)

// DefaultBurstThreshold 默认突变阈值（相邻槽位分差的绝对值）
const DefaultBurstThreshold = 30

// BurstEvent 检测出的情绪突变点（请求级派生数据，不独立持久化）
type BurstEvent struct {
	// Time 变化前槽位的时刻标签（"HH:MM"）
	Time      string
	FromScore int
	ToScore   int
	// Change 带符号变化量 = ToScore - FromScore
	Change int
	// Summary 变化后槽位的概要文本
	Summary string
}

// DetectBursts 扫描日序列中相邻槽位对的分差，按时序返回突变事件
// 任一侧为缺测或未测定（nil）的槽位对直接跳过：数据缺口不会合成虚假突变
// 返回全部事件，展示条数上限由渲染方裁剪
func DetectBursts(s *Series, threshold int) []BurstEvent {
	if threshold <= 0 {
		threshold = DefaultBurstThreshold
	}

	var events []BurstEvent
	for i := 1; i < timegrid.SlotsPerDay; i++ {
		prev, curr := s[i-1], s[i]
		if prev == nil || curr == nil || prev.Score == nil || curr.Score == nil {
			continue
		}

		change := *curr.Score - *prev.Score
		abs := change
		if abs < 0 {
			abs = -abs
		}
		if abs >= threshold {
			label, _ := timegrid.SlotLabel(i - 1)
			events = append(events, BurstEvent{
				Time:      label,
				FromScore: *prev.Score,
				ToScore:   *curr.Score,
				Change:    change,
				Summary:   curr.Summary,
			})
		}
	}
	return events
}
