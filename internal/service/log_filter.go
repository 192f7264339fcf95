package service

import (
	"ExerciseTracker/internal/pkg/mongo"
	"ExerciseTracker/internal/pkg/util"
	"time"
)

// LogFilter GET /logs 的日期与条数过滤，均在取出文档后于内存中完成
type LogFilter struct {
	From  string
	To    string
	Limit string

	// LegacyToDefault 缺省 to 时取 1970-01-01 而不是不设上限
	LegacyToDefault bool
	Location        *time.Location
}

// Apply 返回过滤后的切片，不修改原 log
func (f *LogFilter) Apply(log []mongo.ExerciseEntry) []mongo.ExerciseEntry {
	out := log

	if f.From != "" || f.To != "" {
		out = f.filterByDate(out)
	}

	if end, ok := util.LimitEnd(f.Limit, len(out)); ok {
		out = out[:end]
	}

	return out
}

func (f *LogFilter) filterByDate(log []mongo.ExerciseEntry) []mongo.ExerciseEntry {
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}

	fromDate, toDate := util.EpochZero, util.EpochZero
	hasUpper := true

	if f.From != "" {
		d, ok := util.ParseDate(f.From, loc)
		if !ok {
			// 无法解析的边界不匹配任何记录
			return []mongo.ExerciseEntry{}
		}
		fromDate = d
	}

	if f.To != "" {
		d, ok := util.ParseDate(f.To, loc)
		if !ok {
			return []mongo.ExerciseEntry{}
		}
		toDate = d
	} else if !f.LegacyToDefault {
		hasUpper = false
	}

	filtered := make([]mongo.ExerciseEntry, 0, len(log))
	for _, entry := range log {
		if entry.Date.Before(fromDate) {
			continue
		}
		if hasUpper && entry.Date.After(toDate) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}
