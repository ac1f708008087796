package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ── CSV 列类型 ──

// Bool CSV 布尔列
// 读取时仅 "true"（不区分大小写）为真，其余任何文本（"yes"、"1"、空串）均为假；
// 写出为 "True" / "False"。
type Bool bool

// UnmarshalCSV 实现 csvutil.Unmarshaler
func (b *Bool) UnmarshalCSV(data []byte) error {
	*b = Bool(strings.EqualFold(strings.TrimSpace(string(data)), "true"))
	return nil
}

// MarshalCSV 实现 csvutil.Marshaler
func (b Bool) MarshalCSV() ([]byte, error) {
	if b {
		return []byte("True"), nil
	}
	return []byte("False"), nil
}

// NullFloat 可为空的数值列
// 空单元格或无法解析的文本读为 null；写出使用最短十进制表示，null 写为空。
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// NewNullFloat 构造非空值
func NewNullFloat(f float64) NullFloat {
	return NullFloat{Float64: f, Valid: true}
}

// UnmarshalCSV 实现 csvutil.Unmarshaler
func (n *NullFloat) UnmarshalCSV(data []byte) error {
	s := strings.TrimSpace(string(data))
	f, err := strconv.ParseFloat(s, 64)
	if s == "" || err != nil || f != f { // NaN 同样视为 null
		*n = NullFloat{}
		return nil
	}
	*n = NullFloat{Float64: f, Valid: true}
	return nil
}

// MarshalCSV 实现 csvutil.Marshaler
func (n NullFloat) MarshalCSV() ([]byte, error) {
	if !n.Valid {
		return []byte{}, nil
	}
	return []byte(strconv.FormatFloat(n.Float64, 'f', -1, 64)), nil
}

// MarshalJSON null 或数字
func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

// UnmarshalJSON null 或数字
func (n *NullFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullFloat{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = NullFloat{Float64: f, Valid: true}
	return nil
}
