package timegrid

import (
	"errors"
	"testing"
)

// ── 标签 ↔ 下标双射 ──

func TestBlocks_Enumeration(t *testing.T) {
	blocks := Blocks()
	if len(blocks) != SlotsPerDay {
		t.Fatalf("期望 48 个时间块，实际 %d", len(blocks))
	}
	if blocks[0] != "00-00" {
		t.Errorf("期望首个时间块 00-00，实际 %s", blocks[0])
	}
	if blocks[47] != "23-30" {
		t.Errorf("期望末个时间块 23-30，实际 %s", blocks[47])
	}
	// 严格递增
	for i := 1; i < len(blocks); i++ {
		if blocks[i] <= blocks[i-1] {
			t.Errorf("时间块未严格递增: %s -> %s", blocks[i-1], blocks[i])
		}
	}
}

func TestSlotLabels_Enumeration(t *testing.T) {
	labels := SlotLabels()
	if len(labels) != SlotsPerDay {
		t.Fatalf("期望 48 个槽位标签，实际 %d", len(labels))
	}
	if labels[0] != "00:00" || labels[1] != "00:30" || labels[47] != "23:30" {
		t.Errorf("槽位标签枚举错误: %v", []string{labels[0], labels[1], labels[47]})
	}
}

func TestBlockIndex_Bijection(t *testing.T) {
	for i := 0; i < SlotsPerDay; i++ {
		label, err := BlockLabel(i)
		if err != nil {
			t.Fatalf("BlockLabel(%d) 失败: %v", i, err)
		}
		got, err := BlockIndex(label)
		if err != nil {
			t.Fatalf("BlockIndex(%q) 失败: %v", label, err)
		}
		if got != i {
			t.Errorf("双射破坏: %d -> %s -> %d", i, label, got)
		}
	}
}

func TestBlockLabel_OutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 48, 100} {
		if _, err := BlockLabel(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("BlockLabel(%d) 期望 ErrIndexOutOfRange，实际 %v", idx, err)
		}
		if _, err := SlotLabel(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SlotLabel(%d) 期望 ErrIndexOutOfRange，实际 %v", idx, err)
		}
	}
}

func TestToSlotLabel(t *testing.T) {
	if got := ToSlotLabel("14-30"); got != "14:30" {
		t.Errorf("期望 14:30，实际 %s", got)
	}
	if got := ToSlotLabel("00-00"); got != "00:00" {
		t.Errorf("期望 00:00，实际 %s", got)
	}
}

func TestParseTimeBlock(t *testing.T) {
	hour, minute, err := ParseTimeBlock("22-30")
	if err != nil {
		t.Fatalf("ParseTimeBlock 应成功: %v", err)
	}
	if hour != 22 || minute != 30 {
		t.Errorf("期望 22:30，实际 %02d:%02d", hour, minute)
	}
}

// ── 参数校验 ──

func TestValidateDate(t *testing.T) {
	valid := []string{"2025-08-31", "2024-02-29", "2000-01-01"}
	for _, s := range valid {
		if _, err := ValidateDate(s); err != nil {
			t.Errorf("%q 应通过校验: %v", s, err)
		}
	}

	invalid := []string{"", "2025/08/31", "2025-8-31", "2025-13-01", "2025-02-30", "20250831", "2025-08-31T00:00:00"}
	for _, s := range invalid {
		if _, err := ValidateDate(s); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("%q 期望 ErrInvalidDate，实际 %v", s, err)
		}
	}
}

func TestValidateTimeBlock(t *testing.T) {
	valid := []string{"00-00", "00-30", "14-30", "23-30"}
	for _, s := range valid {
		if err := ValidateTimeBlock(s); err != nil {
			t.Errorf("%q 应通过校验: %v", s, err)
		}
	}

	invalid := []string{"", "24-00", "14-15", "14:30", "1430", "9-30", "14-60"}
	for _, s := range invalid {
		if err := ValidateTimeBlock(s); !errors.Is(err, ErrInvalidTimeBlock) {
			t.Errorf("%q 期望 ErrInvalidTimeBlock，实际 %v", s, err)
		}
	}
}
