package helper

import (
	"errors"
	"strings"
	"time"
)

var ErrBadDate = errors.New("invalid date format, use ISO 8601 (YYYY-MM-DD or YYYY-MM-DDTHH:MM:SSZ)")

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate accepts the ISO 8601 shapes clients actually send.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrBadDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadDate
}

// DayBounds returns [00:00:00, 23:59:59.999999999] of t's calendar day in UTC.
// Attendance duplicate checks use day-level semantics.
func DayBounds(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
