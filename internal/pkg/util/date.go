package util

import (
	"time"

	"github.com/araddon/dateparse"
)

// DateStringLayout 形如 "Mon Jan 01 2024"
const DateStringLayout = "Mon Jan 02 2006"

// EpochZero 日期区间缺省下界
var EpochZero = time.Unix(0, 0).UTC()

// ParseDate 宽松解析日期，纯日期按 loc 的零点处理
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseEntryDate 运动记录日期：为空时取 now，无法解析时 ok 为 false
func ParseEntryDate(s string, now time.Time, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return now, true
	}
	return ParseDate(s, loc)
}

// FormatDateString 按 loc 输出 DateStringLayout
func FormatDateString(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateStringLayout)
}
