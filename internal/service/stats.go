package service

import (
	"context"
	"sort"
	"time"

	"github.com/Egor213/LogHandler/internal/domain"
	"github.com/Egor213/LogHandler/internal/repo"
	"github.com/Egor213/LogHandler/internal/repo/repotypes"
)

type StatsService struct {
	appRepo   repo.Application
	eventRepo repo.Event
}

func NewStatsService(ar repo.Application, er repo.Event) *StatsService {
	return &StatsService{
		appRepo:   ar,
		eventRepo: er,
	}
}

// Timeseries counts events per calendar-aligned bucket over [since, until).
// Every bucket of the grid is present, empty ones with a zero count.
func (s *StatsService) Timeseries(ctx context.Context, in TimeseriesInput) (domain.Timeseries, error) {
	if err := checkWindow(in.Since, in.Until); err != nil {
		return domain.Timeseries{}, err
	}

	interval, ok := domain.ParseInterval(in.Interval)
	if !ok {
		return domain.Timeseries{}, invalid(ErrInvalidInterval, "%q is not one of minute, hour, day, week", in.Interval)
	}
	if n := gridSize(in.Since, in.Until, interval); n > MaxTimeseriesBuckets {
		return domain.Timeseries{}, invalid(ErrInvalidTimeRange,
			"window spans %d %s buckets, at most %d allowed", n, interval, MaxTimeseriesBuckets)
	}

	filter, err := buildFilter(in.ApplicationID, in.Level, &in.Since, &in.Until)
	if err != nil {
		return domain.Timeseries{}, err
	}

	if err := ensureApplication(ctx, s.appRepo, in.ApplicationID); err != nil {
		return domain.Timeseries{}, err
	}

	counts, err := s.eventRepo.CountEventsByBucket(ctx, filter, interval)
	if err != nil {
		return domain.Timeseries{}, storeErr(err)
	}

	return domain.Timeseries{
		Interval: interval,
		Since:    in.Since,
		Until:    in.Until,
		Series:   FillBuckets(in.Since, in.Until, interval, counts),
	}, nil
}

// FillBuckets lays counts onto the complete grid of buckets overlapping
// [since, until), in ascending order.
func FillBuckets(since, until time.Time, interval domain.Interval, counts []domain.Bucket) []domain.Bucket {
	if interval.Duration() <= 0 {
		return []domain.Bucket{}
	}

	byStart := make(map[int64]int64, len(counts))
	for _, b := range counts {
		byStart[domain.FloorToInterval(b.Start, interval).Unix()] += b.Count
	}

	series := make([]domain.Bucket, 0, gridSize(since, until, interval))
	for start := domain.FloorToInterval(since, interval); start.Before(until); start = domain.NextBucket(start, interval) {
		series = append(series, domain.Bucket{Start: start, Count: byStart[start.Unix()]})
	}
	return series
}

func gridSize(since, until time.Time, interval domain.Interval) int {
	width := interval.Duration()
	if width <= 0 || !since.Before(until) {
		return 0
	}
	span := until.Sub(domain.FloorToInterval(since, interval))
	n := span / width
	if span%width != 0 {
		n++
	}
	return int(n)
}

// ByLevel counts events per level over [since, until). Levels without events
// are left out; the rest follow declaration order.
func (s *StatsService) ByLevel(ctx context.Context, in WindowInput) (domain.LevelBreakdown, error) {
	if err := checkWindow(in.Since, in.Until); err != nil {
		return domain.LevelBreakdown{}, err
	}

	filter, err := buildFilter(in.ApplicationID, "", &in.Since, &in.Until)
	if err != nil {
		return domain.LevelBreakdown{}, err
	}

	if err := ensureApplication(ctx, s.appRepo, in.ApplicationID); err != nil {
		return domain.LevelBreakdown{}, err
	}

	counts, err := s.eventRepo.CountEventsByLevel(ctx, filter)
	if err != nil {
		return domain.LevelBreakdown{}, storeErr(err)
	}

	items := make([]domain.LevelCount, 0, len(counts))
	for _, c := range counts {
		if c.Count > 0 {
			items = append(items, c)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Level.Ordinal() < items[j].Level.Ordinal()
	})

	return domain.LevelBreakdown{
		Since: in.Since,
		Until: in.Until,
		Items: items,
	}, nil
}

// TopMessages ranks exact message texts by count, then by most recent
// occurrence, then by text.
func (s *StatsService) TopMessages(ctx context.Context, in TopMessagesInput) (domain.TopMessages, error) {
	if err := checkWindow(in.Since, in.Until); err != nil {
		return domain.TopMessages{}, err
	}
	if in.Limit < 1 {
		return domain.TopMessages{}, invalid(ErrInvalidLimit, "limit must be a positive integer, got %d", in.Limit)
	}

	filter, err := buildFilter(in.ApplicationID, in.Level, &in.Since, &in.Until)
	if err != nil {
		return domain.TopMessages{}, err
	}

	if err := ensureApplication(ctx, s.appRepo, in.ApplicationID); err != nil {
		return domain.TopMessages{}, err
	}

	stats, err := s.eventRepo.TopMessages(ctx, filter, uint64(in.Limit))
	if err != nil {
		return domain.TopMessages{}, storeErr(err)
	}

	items := append([]domain.MessageStat{}, stats...)
	RankMessages(items)
	if len(items) > in.Limit {
		items = items[:in.Limit]
	}

	return domain.TopMessages{
		Limit: in.Limit,
		Items: items,
	}, nil
}

// RankMessages sorts in place by count desc, last_seen desc, message asc.
func RankMessages(items []domain.MessageStat) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if !a.LastSeen.Equal(b.LastSeen) {
			return a.LastSeen.After(b.LastSeen)
		}
		return a.Message < b.Message
	})
}

func checkWindow(since, until time.Time) error {
	if !since.Before(until) {
		return invalid(ErrInvalidTimeRange, "since must be earlier than until")
	}
	return nil
}

// buildFilter is the single place a filter descriptor is assembled.
func buildFilter(appID int64, level string, since, until *time.Time) (repotypes.EventFilter, error) {
	filter := repotypes.EventFilter{
		ApplicationID: appID,
		Since:         since,
		Until:         until,
	}
	if level != "" {
		l, err := ParseLevelParam(level)
		if err != nil {
			return repotypes.EventFilter{}, err
		}
		filter.Level = l
	}
	return filter, nil
}
