package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/Egor213/LogHandler/internal/domain"
	"github.com/Egor213/LogHandler/internal/repo"
	"github.com/Egor213/LogHandler/internal/repo/repoerrs"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const MaxApplicationNameLength = 255

type ApplicationService struct {
	appRepo repo.Application
	newKey  func() string
}

func NewApplicationService(ar repo.Application) *ApplicationService {
	return &ApplicationService{
		appRepo: ar,
		newKey:  NewIngestKey,
	}
}

// NewIngestKey returns 32 random hex characters.
func NewIngestKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (s *ApplicationService) CreateApplication(ctx context.Context, name string) (domain.Application, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Application{}, invalid(ErrInvalidPayload, "application name must not be empty")
	}
	if !storableText(name) {
		return domain.Application{}, invalid(ErrInvalidPayload, "application name must be valid UTF-8 without NUL characters")
	}
	if utf8.RuneCountInString(name) > MaxApplicationNameLength {
		return domain.Application{}, invalid(ErrInvalidPayload, "application name is longer than %d characters", MaxApplicationNameLength)
	}

	app, err := s.appRepo.CreateApplication(ctx, name, s.newKey())
	if err != nil {
		if errors.Is(err, repoerrs.ErrAlreadyExists) {
			return domain.Application{}, ErrApplicationAlreadyExists
		}
		return domain.Application{}, storeErr(err)
	}

	log.WithFields(log.Fields{"app_id": app.ID, "name": app.Name}).Info("Application registered")

	return app, nil
}

func (s *ApplicationService) GetApplication(ctx context.Context, id int64) (domain.Application, error) {
	app, err := s.appRepo.GetApplication(ctx, id)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.Application{}, ErrUnknownApplication
		}
		return domain.Application{}, storeErr(err)
	}
	return app, nil
}

func (s *ApplicationService) ListApplications(ctx context.Context) ([]domain.Application, error) {
	apps, err := s.appRepo.ListApplications(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	return apps, nil
}

// ensureApplication resolves UnknownApplication for read paths.
func ensureApplication(ctx context.Context, ar repo.Application, id int64) error {
	if _, err := ar.GetApplication(ctx, id); err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return ErrUnknownApplication
		}
		return storeErr(err)
	}
	return nil
}
