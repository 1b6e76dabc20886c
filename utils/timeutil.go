// file: utils/timeutil.go
package utils

import (
	"time"
)

// EpochMs 毫秒时间戳
func EpochMs(t time.Time) int64 {
	return t.UnixMilli()
}

// EpochMsPtr 可空时间转毫秒时间戳，零值视为无记录
func EpochMsPtr(t *time.Time) *int64 {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.UnixMilli()
	return &v
}
