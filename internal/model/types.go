package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ── PostgreSQL JSONB 自定义类型 ──

// ScoreArray 48 元素的情绪分数组（nil 元素表示缺测），对应 JSONB 列。
// 实现 GORM Scanner/Valuer 接口；JSON 中缺测元素序列化为 null。
type ScoreArray []*int

// Scan 将 JSONB 字节解析为 []*int。
func (a *ScoreArray) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("ScoreArray.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, a)
}

// Value 将 []*int 序列化为 JSONB 字节。
func (a ScoreArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// StringArray 字符串列表（缺损时间块标签等），对应 JSONB 列。
type StringArray []string

// Scan 将 JSONB 字节解析为 []string。
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = StringArray{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("StringArray.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, a)
}

// Value 将 []string 序列化为 JSONB 字节；nil 序列化为空数组而非 null。
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(a)
}
