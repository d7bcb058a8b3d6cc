package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hey-watchme/api-vibe-aggregator/internal/daycontext"
	"github.com/hey-watchme/api-vibe-aggregator/internal/timegrid"
	"github.com/hey-watchme/api-vibe-aggregator/internal/timeline"
)

// MaxBurstEventsShown 累积プロンプト中展示的突变事件上限（渲染方策略，非检测器策略）
const MaxBurstEventsShown = 5

// burstSummaryRunes 突变事件状况文本的最大字数（按 rune 截断）
const burstSummaryRunes = 50

// trivialPatterns 自明内容的过滤词：概要命中任一子串时该行不进入时间线
var trivialPatterns = []string{"静か", "無言", "発話なし", "データなし", "睡眠", "就寝", "起床前", "活動なし"}

// SubjectInfo 观测对象者信息（devices → subjects 联表结果）
type SubjectInfo struct {
	Age    *int
	Gender *string
	Notes  *string
}

// SubjectDescription 合成观测对象者描述；nil 时回退到明式的「情報なし」
func SubjectDescription(s *SubjectInfo) string {
	if s == nil {
		return "観測対象者情報なし"
	}
	age := "不明"
	if s.Age != nil {
		age = strconv.Itoa(*s.Age)
	}
	gender := "不明"
	if s.Gender != nil && *s.Gender != "" {
		gender = *s.Gender
	}
	desc := fmt.Sprintf("%s歳の%s", age, gender)
	if s.Notes != nil && *s.Notes != "" {
		desc += fmt.Sprintf("（%s）", *s.Notes)
	}
	return desc
}

// DailyInput 累积評価プロンプト的渲染输入（全部为已计算的结构化数据）
type DailyInput struct {
	Date          string
	Timeline      []timeline.Entry
	TotalBlocks   int
	LastTimeBlock string
	Subject       *SubjectInfo
	Bursts        []timeline.BurstEvent
	Weekday       daycontext.WeekdayInfo
	Holiday       daycontext.HolidayInfo
	Season        string
}

// BuildDailySummary 渲染 1 日全体の累積評価プロンプト
// 相同输入必须产生字节级相同的输出
func BuildDailySummary(in DailyInput) string {
	hour, minute, err := timegrid.ParseTimeBlock(in.LastTimeBlock)
	if err != nil {
		// 调用方已在边界校验过 time_block，此处仅兜底为 00:00
		hour, minute = 0, 0
	}
	lastTime := fmt.Sprintf("%02d:%02d", hour, minute)

	holidayNote := ""
	if in.Holiday.IsHoliday {
		holidayNote = dailyHolidayNote
	}

	return fmt.Sprintf(dailySummaryTemplate,
		SubjectDescription(in.Subject),
		in.Date,
		in.Weekday.Weekday,
		daycontext.Compose(in.Weekday, in.Holiday),
		in.Season,
		lastTime,
		holidayNote,
		in.TotalBlocks,
		buildTimelineText(in.Timeline),
		buildBurstText(in.Bursts),
		daycontext.TimeOfDay(hour),
	)
}

// buildTimelineText 生成有实质内容的时间线文本（自明内容剔除）
func buildTimelineText(entries []timeline.Entry) string {
	var lines []string
	for _, e := range entries {
		summary := strings.TrimSpace(e.Summary)
		if summary == "" || isTrivial(summary) {
			continue
		}
		lines = append(lines, fmt.Sprintf("[%s] %4s | %s",
			timegrid.ToSlotLabel(e.TimeBlock), scoreString(e.Score), summary))
	}
	if len(lines) == 0 {
		return dailyEmptyTimeline
	}
	return strings.Join(lines, "\n")
}

func isTrivial(summary string) bool {
	for _, p := range trivialPatterns {
		if strings.Contains(summary, p) {
			return true
		}
	}
	return false
}

// scoreString 时间线行的分值表记：正分带 +，未测定与 0 均为 "0"
func scoreString(score *int) string {
	if score == nil || *score == 0 {
		return "0"
	}
	if *score > 0 {
		return "+" + strconv.Itoa(*score)
	}
	return strconv.Itoa(*score)
}

// buildBurstText 生成突变事件段落；无事件时为空串
func buildBurstText(events []timeline.BurstEvent) string {
	if len(events) == 0 {
		return ""
	}
	if len(events) > MaxBurstEventsShown {
		events = events[:MaxBurstEventsShown]
	}

	var b strings.Builder
	b.WriteString(burstSectionHeader)
	for _, e := range events {
		fmt.Fprintf(&b, "- %s: スコアが%dから%dへ変化（変化量: %+d）\n",
			e.Time, e.FromScore, e.ToScore, e.Change)
		if e.Summary != "" {
			b.WriteString("  状況: " + truncateRunes(e.Summary, burstSummaryRunes) + "\n")
		}
	}
	return b.String()
}

// truncateRunes 按字数（非字节）截断，避免切断多字节字符
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
