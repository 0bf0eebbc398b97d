package pgdb

import (
	"context"
	"time"

	"github.com/Egor213/LogHandler/internal/domain"
	"github.com/Egor213/LogHandler/internal/repo/repoerrs"
	"github.com/Egor213/LogHandler/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogHandler/pkg/errors"
	"github.com/Egor213/LogHandler/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var eventColumns = []string{
	"id", "application_id", "occurred_at", "received_at", "level", "message", "stack", "tags",
}

type eventRow struct {
	ID            int64     `db:"id"`
	ApplicationID int64     `db:"application_id"`
	OccurredAt    time.Time `db:"occurred_at"`
	ReceivedAt    time.Time `db:"received_at"`
	Level         string    `db:"level"`
	Message       string    `db:"message"`
	Stack         []byte    `db:"stack"`
	Tags          []byte    `db:"tags"`
}

func (row eventRow) toDomain() domain.Event {
	return domain.Event{
		ID:            row.ID,
		ApplicationID: row.ApplicationID,
		OccurredAt:    row.OccurredAt.UTC(),
		ReceivedAt:    row.ReceivedAt.UTC(),
		Level:         domain.Level(row.Level),
		Message:       row.Message,
		Stack:         domain.Document(row.Stack),
		Tags:          domain.Document(row.Tags),
	}
}

func listEventsQuery(b sq.StatementBuilderType, filter repotypes.EventFilter, page repotypes.Page) sq.SelectBuilder {
	return b.
		Select(eventColumns...).
		From("event").
		Where(sq.And(BuildEventQueryFilters(filter))).
		OrderBy("received_at DESC", "id DESC").
		Limit(page.Limit).
		Offset(page.Offset)
}

// eventsByBucketQuery groups on the output alias. bucket_start is not an event
// column, so GROUP BY cannot resolve it to an input column first.
func eventsByBucketQuery(b sq.StatementBuilderType, filter repotypes.EventFilter, interval domain.Interval) sq.SelectBuilder {
	return b.
		Select(bucketExpr(interval)+" AS bucket_start", "COUNT(*) AS count").
		From("event").
		Where(sq.And(BuildEventQueryFilters(filter))).
		GroupBy("bucket_start").
		OrderBy("bucket_start")
}

// eventsByLevelQuery groups on the enum column, not the text alias, so the
// rows come back in severity order.
func eventsByLevelQuery(b sq.StatementBuilderType, filter repotypes.EventFilter) sq.SelectBuilder {
	return b.
		Select("level::text AS level", "COUNT(*) AS count").
		From("event").
		Where(sq.And(BuildEventQueryFilters(filter))).
		GroupBy("event.level").
		OrderBy("event.level")
}

func topMessagesQuery(b sq.StatementBuilderType, filter repotypes.EventFilter, limit uint64) sq.SelectBuilder {
	return b.
		Select("message", "COUNT(*) AS count", "MAX(received_at) AS last_seen").
		From("event").
		Where(sq.And(BuildEventQueryFilters(filter))).
		GroupBy("message").
		OrderBy("count DESC", "last_seen DESC", "message ASC").
		Limit(limit)
}

type EventRepo struct {
	*postgres.Postgres
}

func NewEventRepo(pg *postgres.Postgres) *EventRepo {
	return &EventRepo{pg}
}

// InsertEvent stores the event and fills in the id and received_at assigned by
// the database.
func (r *EventRepo) InsertEvent(ctx context.Context, event *domain.Event) error {
	sql, args, err := r.Builder.
		Insert("event").
		Columns("application_id", "occurred_at", "level", "message", "stack", "tags").
		Values(
			event.ApplicationID,
			event.OccurredAt,
			string(event.Level),
			event.Message,
			documentArg(event.Stack),
			documentArg(event.Tags),
		).
		Suffix("RETURNING id, received_at").
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&event.ID, &event.ReceivedAt)
	if err != nil {
		if errorsUtils.IsForeignKeyViolation(err) {
			return repoerrs.ErrNotFound
		}
		return errorsUtils.WrapPathErr(err)
	}
	event.ReceivedAt = event.ReceivedAt.UTC()

	return nil
}

func (r *EventRepo) ListEvents(ctx context.Context, filter repotypes.EventFilter, page repotypes.Page) ([]domain.Event, error) {
	sql, args, err := listEventsQuery(r.Builder, filter, page).ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	stored, err := pgx.CollectRows(rows, pgx.RowToStructByName[eventRow])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	events := make([]domain.Event, 0, len(stored))
	for _, row := range stored {
		events = append(events, row.toDomain())
	}

	return events, nil
}

// CountEventsByBucket returns only the non-empty buckets, ascending.
func (r *EventRepo) CountEventsByBucket(ctx context.Context, filter repotypes.EventFilter, interval domain.Interval) ([]domain.Bucket, error) {
	sql, args, err := eventsByBucketQuery(r.Builder, filter, interval).ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	var buckets []domain.Bucket
	for rows.Next() {
		var b domain.Bucket
		if err := rows.Scan(&b.Start, &b.Count); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		// timestamp without time zone comes back as UTC wall clock
		b.Start = time.Date(b.Start.Year(), b.Start.Month(), b.Start.Day(),
			b.Start.Hour(), b.Start.Minute(), b.Start.Second(), b.Start.Nanosecond(), time.UTC)
		buckets = append(buckets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return buckets, nil
}

func (r *EventRepo) CountEventsByLevel(ctx context.Context, filter repotypes.EventFilter) ([]domain.LevelCount, error) {
	sql, args, err := eventsByLevelQuery(r.Builder, filter).ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	var counts []domain.LevelCount
	for rows.Next() {
		var (
			level string
			count int64
		)
		if err := rows.Scan(&level, &count); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		counts = append(counts, domain.LevelCount{Level: domain.Level(level), Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return counts, nil
}

func (r *EventRepo) TopMessages(ctx context.Context, filter repotypes.EventFilter, limit uint64) ([]domain.MessageStat, error) {
	sql, args, err := topMessagesQuery(r.Builder, filter, limit).ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	var stats []domain.MessageStat
	for rows.Next() {
		var s domain.MessageStat
		if err := rows.Scan(&s.Message, &s.Count, &s.LastSeen); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		s.LastSeen = s.LastSeen.UTC()
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return stats, nil
}
