package service

import (
	"context"

	"github.com/Egor213/LogHandler/internal/domain"
	"github.com/Egor213/LogHandler/internal/repo"
)

// TxManager runs fn inside a transaction carried by ctx.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Application interface {
	CreateApplication(ctx context.Context, name string) (domain.Application, error)
	GetApplication(ctx context.Context, id int64) (domain.Application, error)
	ListApplications(ctx context.Context) ([]domain.Application, error)
}

type Event interface {
	IngestEvent(ctx context.Context, appID int64, ingestKey string, payload []byte) (domain.Event, error)
	ListEvents(ctx context.Context, in ListEventsInput) (domain.EventPage, error)
}

type Stats interface {
	Timeseries(ctx context.Context, in TimeseriesInput) (domain.Timeseries, error)
	ByLevel(ctx context.Context, in WindowInput) (domain.LevelBreakdown, error)
	TopMessages(ctx context.Context, in TopMessagesInput) (domain.TopMessages, error)
}

type Services struct {
	Application
	Event
	Stats
}

type ServicesDependencies struct {
	Repos     *repo.Repositories
	TrManager TxManager
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Application: NewApplicationService(deps.Repos.Application),
		Event:       NewEventService(deps.Repos.Application, deps.Repos.Event, deps.TrManager),
		Stats:       NewStatsService(deps.Repos.Application, deps.Repos.Event),
	}
}
