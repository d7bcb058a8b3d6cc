package daycontext

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// ── 曜日 ──

func TestWeekday(t *testing.T) {
	// 2025-08-31 是周日
	info := Weekday(date("2025-08-31"))
	if info.Weekday != "日曜日" {
		t.Errorf("期望 日曜日，实际 %s", info.Weekday)
	}
	if !info.IsWeekend || info.DayType != "週末" {
		t.Errorf("周日应为週末: %+v", info)
	}

	// 2025-08-27 是周三
	info = Weekday(date("2025-08-27"))
	if info.Weekday != "水曜日" || info.IsWeekend || info.DayType != "平日" {
		t.Errorf("周三应为平日: %+v", info)
	}
}

// ── 季节 ──

func TestSeason(t *testing.T) {
	cases := map[time.Month]string{
		time.January: "冬", time.February: "冬", time.March: "春",
		time.May: "春", time.June: "夏", time.August: "夏",
		time.September: "秋", time.November: "秋", time.December: "冬",
	}
	for m, want := range cases {
		if got := Season(m); got != want {
			t.Errorf("%v: 期望 %s，实际 %s", m, want, got)
		}
	}
}

// ── 祝日与连休 ──

func TestHoliday_PlainSunday(t *testing.T) {
	// 2025-08-31（周日）：非祝日、是周末；前日周六 → 連休最終日
	info := Holiday(date("2025-08-31"))
	if info.IsHoliday {
		t.Errorf("2025-08-31 不应为祝日")
	}
	if !info.IsWeekend {
		t.Errorf("2025-08-31 应为周末")
	}
	if info.ConsecutiveContext != "連休最終日" {
		t.Errorf("期望 連休最終日，实际 %q", info.ConsecutiveContext)
	}
}

func TestHoliday_MiddleOfBreak(t *testing.T) {
	// 2025-08-30（周六）：前日周五为工作日，翌日周日 → 連休初日
	info := Holiday(date("2025-08-30"))
	if info.ConsecutiveContext != "連休初日" {
		t.Errorf("期望 連休初日，实际 %q", info.ConsecutiveContext)
	}

	// 元日 2025-01-01（周三）：前后均为工作日 → 祝日
	info = Holiday(date("2025-01-01"))
	if !info.IsHoliday {
		t.Fatalf("元日应为祝日")
	}
	if info.HolidayName == "" {
		t.Errorf("祝日应有名称")
	}
	if info.ConsecutiveContext != "祝日" {
		t.Errorf("期望 祝日，实际 %q", info.ConsecutiveContext)
	}
}

func TestHoliday_Workday(t *testing.T) {
	// 2025-08-27（周三）：前后均为工作日且非祝日 → 空语境
	info := Holiday(date("2025-08-27"))
	if info.IsHoliday || info.IsWeekend || info.ConsecutiveContext != "" {
		t.Errorf("普通工作日不应有连休语境: %+v", info)
	}
}

// ── 合成 ──

func TestCompose(t *testing.T) {
	w := WeekdayInfo{Weekday: "月曜日", DayType: "平日"}
	h := HolidayInfo{IsHoliday: true, HolidayName: "海の日", ConsecutiveContext: "3連休の中日"}
	if got := Compose(w, h); got != "祝日（海の日）・3連休の中日" {
		t.Errorf("祝日合成错误: %s", got)
	}

	w = WeekdayInfo{Weekday: "土曜日", DayType: "週末", IsWeekend: true}
	h = HolidayInfo{IsWeekend: true, ConsecutiveContext: "連休初日"}
	if got := Compose(w, h); got != "週末（連休初日）" {
		t.Errorf("周末合成错误: %s", got)
	}

	w = WeekdayInfo{Weekday: "水曜日", DayType: "平日"}
	if got := Compose(w, HolidayInfo{}); got != "平日" {
		t.Errorf("平日合成错误: %s", got)
	}
}

// ── 时间帯 ──

func TestTimeOfDay(t *testing.T) {
	cases := map[int]string{
		0: "深夜", 4: "深夜", 5: "早朝", 8: "早朝",
		9: "午前", 11: "午前", 12: "昼", 13: "昼",
		14: "午後", 16: "午後", 17: "夕方", 19: "夕方",
		20: "夜", 22: "夜", 23: "深夜",
	}
	for hour, want := range cases {
		if got := TimeOfDay(hour); got != want {
			t.Errorf("hour=%d: 期望 %s，实际 %s", hour, want, got)
		}
	}
}
