package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-01-01", time.UTC)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)

	got, ok = ParseDate("2023-06-15T08:30:00Z", time.UTC)
	assert.True(t, ok)
	assert.Equal(t, 15, got.Day())

	_, ok = ParseDate("not a date", time.UTC)
	assert.False(t, ok)

	_, ok = ParseDate("", time.UTC)
	assert.False(t, ok)
}

func TestParseEntryDate(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

	got, ok := ParseEntryDate("", now, time.UTC)
	assert.True(t, ok)
	assert.Equal(t, now, got)

	got, ok = ParseEntryDate("2024-01-02", now, time.UTC)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), got)

	// 给了日期但无法解析，不回退到 now
	got, ok = ParseEntryDate("garbage", now, time.UTC)
	assert.False(t, ok)
	assert.True(t, got.IsZero())
}

func TestFormatDateString(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mon Jan 01 2024", FormatDateString(d, time.UTC))

	// 按展示时区换算
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	assert.Equal(t, "Sun Dec 31 2023", FormatDateString(d, ny))
}
