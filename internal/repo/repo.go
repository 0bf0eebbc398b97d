package repo

import (
	"context"

	"github.com/Egor213/LogHandler/internal/domain"
	"github.com/Egor213/LogHandler/internal/repo/pgdb"
	"github.com/Egor213/LogHandler/internal/repo/repotypes"
	"github.com/Egor213/LogHandler/pkg/postgres"
)

type Application interface {
	CreateApplication(ctx context.Context, name, ingestKey string) (domain.Application, error)
	GetApplication(ctx context.Context, id int64) (domain.Application, error)
	ListApplications(ctx context.Context) ([]domain.Application, error)
}

type Event interface {
	InsertEvent(ctx context.Context, event *domain.Event) error
	ListEvents(ctx context.Context, filter repotypes.EventFilter, page repotypes.Page) ([]domain.Event, error)
	CountEventsByBucket(ctx context.Context, filter repotypes.EventFilter, interval domain.Interval) ([]domain.Bucket, error)
	CountEventsByLevel(ctx context.Context, filter repotypes.EventFilter) ([]domain.LevelCount, error)
	TopMessages(ctx context.Context, filter repotypes.EventFilter, limit uint64) ([]domain.MessageStat, error)
}

type Repositories struct {
	Application
	Event
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Application: pgdb.NewApplicationRepo(pg),
		Event:       pgdb.NewEventRepo(pg),
	}
}
