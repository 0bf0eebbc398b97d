package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/Egor213/LogHandler/internal/domain"
	"github.com/Egor213/LogHandler/internal/repo"
	"github.com/Egor213/LogHandler/internal/repo/repoerrs"
	"github.com/Egor213/LogHandler/internal/repo/repotypes"
)

type EventService struct {
	appRepo   repo.Application
	eventRepo repo.Event
	trManager TxManager
}

func NewEventService(ar repo.Application, er repo.Event, trm TxManager) *EventService {
	return &EventService{
		appRepo:   ar,
		eventRepo: er,
		trManager: trm,
	}
}

// IngestEvent validates the payload, authenticates the ingest key and stores
// the event in one transaction. On any error nothing is written.
func (s *EventService) IngestEvent(ctx context.Context, appID int64, ingestKey string, payload []byte) (domain.Event, error) {
	event, err := ValidateEventPayload(payload)
	if err != nil {
		return domain.Event{}, err
	}
	event.ApplicationID = appID

	err = s.trManager.Do(ctx, func(ctx context.Context) error {
		app, err := s.appRepo.GetApplication(ctx, appID)
		if err != nil {
			if errors.Is(err, repoerrs.ErrNotFound) {
				return ErrUnknownApplication
			}
			return storeErr(err)
		}

		if !ingestKeyMatches(app.IngestKey, ingestKey) {
			return ErrInvalidIngestKey
		}

		if err := s.eventRepo.InsertEvent(ctx, &event); err != nil {
			if errors.Is(err, repoerrs.ErrNotFound) {
				return ErrUnknownApplication
			}
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return domain.Event{}, err
	}

	return event, nil
}

func ingestKeyMatches(want, got string) bool {
	if want == "" || got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}

// ListEvents returns one page, newest first. NextOffset is set only when the
// page came back full; concurrent inserts can shift later pages.
func (s *EventService) ListEvents(ctx context.Context, in ListEventsInput) (domain.EventPage, error) {
	if in.Limit < MinPageLimit || in.Limit > MaxPageLimit {
		return domain.EventPage{}, invalid(ErrInvalidLimit, "limit must be between %d and %d, got %d", MinPageLimit, MaxPageLimit, in.Limit)
	}
	if in.Offset < 0 {
		return domain.EventPage{}, invalid(ErrInvalidOffset, "offset must not be negative, got %d", in.Offset)
	}

	filter, err := buildFilter(in.ApplicationID, in.Level, in.Since, in.Until)
	if err != nil {
		return domain.EventPage{}, err
	}
	if in.Since != nil && in.Until != nil {
		if err := checkWindow(*in.Since, *in.Until); err != nil {
			return domain.EventPage{}, err
		}
	}

	if err := ensureApplication(ctx, s.appRepo, in.ApplicationID); err != nil {
		return domain.EventPage{}, err
	}

	items, err := s.eventRepo.ListEvents(ctx, filter, repotypes.Page{
		Limit:  uint64(in.Limit),
		Offset: uint64(in.Offset),
	})
	if err != nil {
		return domain.EventPage{}, storeErr(err)
	}
	if items == nil {
		items = []domain.Event{}
	}

	return domain.EventPage{
		Items:      items,
		NextOffset: nextOffset(in.Offset, in.Limit, len(items)),
	}, nil
}

func nextOffset(offset, limit, got int) *int {
	if got < limit {
		return nil
	}
	next := offset + got
	return &next
}
