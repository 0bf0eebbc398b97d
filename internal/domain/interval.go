package domain

import (
	"strings"
	"time"
)

type Interval string

const (
	IntervalMinute Interval = "minute"
	IntervalHour   Interval = "hour"
	IntervalDay    Interval = "day"
	IntervalWeek   Interval = "week"
)

var Intervals = []Interval{IntervalMinute, IntervalHour, IntervalDay, IntervalWeek}

func ParseInterval(s string) (Interval, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, iv := range Intervals {
		if string(iv) == s {
			return iv, true
		}
	}
	return "", false
}

// FloorToInterval truncates t down to the start of its bucket in UTC.
// Weeks start on Monday, matching Postgres date_trunc('week', ...).
func FloorToInterval(t time.Time, iv Interval) time.Time {
	t = t.UTC()
	switch iv {
	case IntervalMinute:
		return t.Truncate(time.Minute)
	case IntervalHour:
		return t.Truncate(time.Hour)
	case IntervalDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case IntervalWeek:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		back := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -back)
	}
	return t
}

// Duration is the fixed width of a bucket. Buckets live in UTC, so days and
// weeks never stretch.
func (iv Interval) Duration() time.Duration {
	switch iv {
	case IntervalMinute:
		return time.Minute
	case IntervalHour:
		return time.Hour
	case IntervalDay:
		return 24 * time.Hour
	case IntervalWeek:
		return 7 * 24 * time.Hour
	}
	return 0
}

// NextBucket returns the start of the bucket following the one starting at start.
func NextBucket(start time.Time, iv Interval) time.Time {
	return start.Add(iv.Duration())
}
