package daycontext

import (
	"time"

	holidayjp "github.com/holiday-jp/holiday_jp-go"
)

// 日付コンテキスト（曜日・季節・祝日・時間帯）の純関数群
// 渲染层只消费这里的计算结果，不直接触碰日历库

// WeekdayInfo 曜日信息
type WeekdayInfo struct {
	Weekday   string // 月曜日 .. 日曜日
	DayType   string // 平日 | 週末
	IsWeekend bool
}

// HolidayInfo 祝日与连休信息
type HolidayInfo struct {
	IsHoliday   bool
	HolidayName string
	// ConsecutiveContext 连休语境，按前后两日的祝日/周末状态推导
	// 取值：3連休の中日 | 連休初日 | 連休最終日 | 祝日 | 週末 | 空串
	ConsecutiveContext string
	IsWeekend          bool
}

var weekdayNames = [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"}

// Weekday 返回日期的曜日信息
func Weekday(t time.Time) WeekdayInfo {
	wd := t.Weekday()
	isWeekend := wd == time.Saturday || wd == time.Sunday
	dayType := "平日"
	if isWeekend {
		dayType = "週末"
	}
	return WeekdayInfo{
		Weekday:   weekdayNames[wd],
		DayType:   dayType,
		IsWeekend: isWeekend,
	}
}

// Season 返回月份对应的季节
func Season(month time.Month) string {
	switch {
	case month >= time.March && month <= time.May:
		return "春"
	case month >= time.June && month <= time.August:
		return "夏"
	case month >= time.September && month <= time.November:
		return "秋"
	default:
		return "冬"
	}
}

// Holiday 返回日期的祝日与连休信息（日本の祝日）
func Holiday(t time.Time) HolidayInfo {
	isHoliday := holidayjp.IsHoliday(t)

	var name string
	if isHoliday {
		if n, err := holidayjp.HolidayName(t); err == nil {
			name = n
		}
	}

	before := t.AddDate(0, 0, -1)
	after := t.AddDate(0, 0, 1)

	offBefore := holidayjp.IsHoliday(before) || isWeekend(before)
	offAfter := holidayjp.IsHoliday(after) || isWeekend(after)
	weekendToday := isWeekend(t)

	// 优先级从上到下，命中即止
	var consecutive string
	switch {
	case offBefore && offAfter:
		consecutive = "3連休の中日"
	case offAfter:
		consecutive = "連休初日"
	case offBefore:
		consecutive = "連休最終日"
	case isHoliday:
		consecutive = "祝日"
	case weekendToday:
		consecutive = "週末"
	}

	return HolidayInfo{
		IsHoliday:          isHoliday,
		HolidayName:        name,
		ConsecutiveContext: consecutive,
		IsWeekend:          weekendToday,
	}
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Compose 合成日付コンテキスト标签（祝日优先于周末，再退到 day_type）
func Compose(w WeekdayInfo, h HolidayInfo) string {
	switch {
	case h.IsHoliday:
		ctx := "祝日（" + h.HolidayName + "）"
		if h.ConsecutiveContext != "" {
			ctx += "・" + h.ConsecutiveContext
		}
		return ctx
	case h.IsWeekend:
		ctx := w.DayType
		if h.ConsecutiveContext != "" {
			ctx += "（" + h.ConsecutiveContext + "）"
		}
		return ctx
	default:
		return w.DayType
	}
}

// TimeOfDay 将小时映射为时间帯标签
func TimeOfDay(hour int) string {
	switch {
	case hour >= 5 && hour < 9:
		return "早朝"
	case hour >= 9 && hour < 12:
		return "午前"
	case hour >= 12 && hour < 14:
		return "昼"
	case hour >= 14 && hour < 17:
		return "午後"
	case hour >= 17 && hour < 20:
		return "夕方"
	case hour >= 20 && hour < 23:
		return "夜"
	default:
		return "深夜"
	}
}
