package timegrid

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// 一天按 30 分钟切分为 48 个时间块
// 时间块标签为 "HH-MM"（数据库键），槽位标签为 "HH:MM"（展示用）
// 标签与下标 0..47 之间为双射：index = hour*2 + (minute==30 ? 1 : 0)

// SlotsPerDay 每日时间块数量
const SlotsPerDay = 48

// DateLayout 日期参数格式
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDate 日期格式校验失败
	ErrInvalidDate = errors.New("无效的日期格式")
	// ErrInvalidTimeBlock 时间块格式校验失败
	ErrInvalidTimeBlock = errors.New("无效的时间块格式")
	// ErrIndexOutOfRange 槽位下标越界
	ErrIndexOutOfRange = errors.New("槽位下标越界")
)

var (
	datePattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeBlockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3])-(00|30)$`)
)

// BlockLabel 返回下标对应的时间块标签（"HH-MM"）
func BlockLabel(index int) (string, error) {
	if index < 0 || index >= SlotsPerDay {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return fmt.Sprintf("%02d-%02d", index/2, 30*(index%2)), nil
}

// SlotLabel 返回下标对应的槽位标签（"HH:MM"）
func SlotLabel(index int) (string, error) {
	if index < 0 || index >= SlotsPerDay {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return fmt.Sprintf("%02d:%02d", index/2, 30*(index%2)), nil
}

// BlockIndex 返回时间块标签对应的下标
func BlockIndex(label string) (int, error) {
	if !timeBlockPattern.MatchString(label) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeBlock, label)
	}
	hour := int(label[0]-'0')*10 + int(label[1]-'0')
	index := hour * 2
	if label[3] == '3' {
		index++
	}
	return index, nil
}

// Blocks 按时序返回全部 48 个时间块标签（"00-00".."23-30"）
func Blocks() []string {
	blocks := make([]string, 0, SlotsPerDay)
	for i := 0; i < SlotsPerDay; i++ {
		label, _ := BlockLabel(i)
		blocks = append(blocks, label)
	}
	return blocks
}

// SlotLabels 按时序返回全部 48 个槽位标签（"00:00".."23:30"）
func SlotLabels() []string {
	labels := make([]string, 0, SlotsPerDay)
	for i := 0; i < SlotsPerDay; i++ {
		label, _ := SlotLabel(i)
		labels = append(labels, label)
	}
	return labels
}

// ToSlotLabel 将时间块标签转换为槽位标签（"14-30" → "14:30"）
// 非法标签原样返回，由调用方先行校验
func ToSlotLabel(block string) string {
	if len(block) != 5 {
		return block
	}
	return block[:2] + ":" + block[3:]
}

// ParseTimeBlock 解析时间块标签，返回小时与分钟
func ParseTimeBlock(label string) (hour, minute int, err error) {
	if !timeBlockPattern.MatchString(label) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeBlock, label)
	}
	hour = int(label[0]-'0')*10 + int(label[1]-'0')
	if label[3] == '3' {
		minute = 30
	}
	return hour, minute, nil
}

// ValidateDate 校验日期参数并解析
// 必须先通过 YYYY-MM-DD 文法再通过日历合法性（如 2025-02-30 被拒绝）
func ValidateDate(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ValidateTimeBlock 校验时间块参数（"HH-MM"，分钟仅允许 00/30）
func ValidateTimeBlock(s string) error {
	if !timeBlockPattern.MatchString(s) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeBlock, s)
	}
	return nil
}
