package domain_test

import (
	"testing"
	"time"

	"github.com/Egor213/LogHandler/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFloorToInterval(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)

	testCases := []struct {
		name     string
		in       time.Time
		interval domain.Interval
		want     time.Time
	}{
		{
			name:     "minute",
			in:       time.Date(2024, 3, 5, 10, 7, 42, 500, time.UTC),
			interval: domain.IntervalMinute,
			want:     time.Date(2024, 3, 5, 10, 7, 0, 0, time.UTC),
		},
		{
			name:     "hour",
			in:       time.Date(2024, 3, 5, 10, 59, 59, 999, time.UTC),
			interval: domain.IntervalHour,
			want:     time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "hour on boundary",
			in:       time.Date(2024, 3, 5, 11, 0, 0, 0, time.UTC),
			interval: domain.IntervalHour,
			want:     time.Date(2024, 3, 5, 11, 0, 0, 0, time.UTC),
		},
		{
			name:     "day uses utc calendar",
			in:       time.Date(2024, 3, 6, 1, 30, 0, 0, msk),
			interval: domain.IntervalDay,
			want:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "week starts monday",
			in:       time.Date(2024, 3, 7, 15, 0, 0, 0, time.UTC),
			interval: domain.IntervalWeek,
			want:     time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "week on sunday",
			in:       time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC),
			interval: domain.IntervalWeek,
			want:     time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.FloorToInterval(tc.in, tc.interval)
			assert.True(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestNextBucket(t *testing.T) {
	start := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, start.Add(time.Minute), domain.NextBucket(start, domain.IntervalMinute))
	assert.Equal(t, start.Add(time.Hour), domain.NextBucket(start, domain.IntervalHour))
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), domain.NextBucket(start, domain.IntervalDay))
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), domain.NextBucket(start, domain.IntervalWeek))
}

func TestParseInterval(t *testing.T) {
	iv, ok := domain.ParseInterval("HOUR")
	assert.True(t, ok)
	assert.Equal(t, domain.IntervalHour, iv)

	iv, ok = domain.ParseInterval("day")
	assert.True(t, ok)
	assert.Equal(t, domain.IntervalDay, iv)

	_, ok = domain.ParseInterval("fortnight")
	assert.False(t, ok)
}
