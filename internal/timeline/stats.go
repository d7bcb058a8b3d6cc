package timeline

import "math"

// Stats 日序列的统计汇总
// 两套分类口径并存，分别服务不同的下游：
//   - 时长口径（>0 / <0 / ==0，单位 0.5 小时）供原始时长核算
//   - 块数口径（>20 / <-20 / 其余）供定性分布统计
//
// 两者阈值不同是有意设计，不得合并
type Stats struct {
	Sum        int
	ValidCount int
	// Average 有效分的平均值，四舍五入到 1 位小数；全缺测时显式定义为 0.0
	Average float64

	PositiveHours float64
	NegativeHours float64
	NeutralHours  float64

	PositiveBlocks int
	NegativeBlocks int
	NeutralBlocks  int
}

// Compute 对情绪分数组计算统计量，nil 元素不参与任何计数
func Compute(scores []*int) Stats {
	var st Stats
	for _, s := range scores {
		if s == nil {
			continue
		}
		v := *s
		st.Sum += v
		st.ValidCount++

		switch {
		case v > 0:
			st.PositiveHours += 0.5
		case v < 0:
			st.NegativeHours += 0.5
		default:
			st.NeutralHours += 0.5
		}

		switch {
		case v > 20:
			st.PositiveBlocks++
		case v < -20:
			st.NegativeBlocks++
		default:
			st.NeutralBlocks++
		}
	}

	if st.ValidCount > 0 {
		st.Average = math.Round(float64(st.Sum)/float64(st.ValidCount)*10) / 10
	}
	return st
}

// MeanOrNil 返回未取整的平均值；全缺测时返回 nil（持久化字段 average_vibe 的口径）
func (st Stats) MeanOrNil() *float64 {
	if st.ValidCount == 0 {
		return nil
	}
	mean := float64(st.Sum) / float64(st.ValidCount)
	return &mean
}
