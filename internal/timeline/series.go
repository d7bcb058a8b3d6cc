package timeline

import (
	"github.com/hey-watchme/api-vibe-aggregator/internal/timegrid"
)

// Entry 一个已完成时间块的情绪观测
// Score 为 nil 表示该时间块完成了处理但情绪分未测定（与测定值 0 严格区分）
type Entry struct {
	TimeBlock string
	Summary   string
	Score     *int
}

// Series 固定 48 槽位的日序列，槽位为 nil 表示该时间块缺测
// 请求级临时结构，不落库；仅最终产物持久化
type Series [timegrid.SlotsPerDay]*Entry

// BuildSeries 将已完成时间块的记录按槽位下标放入日序列
// 标签非法的记录跳过（上游数据异常不阻断聚合）
func BuildSeries(entries []Entry) Series {
	var s Series
	for i := range entries {
		idx, err := timegrid.BlockIndex(entries[i].TimeBlock)
		if err != nil {
			continue
		}
		s[idx] = &entries[i]
	}
	return s
}

// Scores 返回 48 元素的情绪分数组（缺测与未测定槽位为 nil），用于图表绘制
func (s *Series) Scores() []*int {
	scores := make([]*int, timegrid.SlotsPerDay)
	for i, e := range s {
		if e != nil {
			scores[i] = e.Score
		}
	}
	return scores
}
