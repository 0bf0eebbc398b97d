package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Egor213/LogHandler/internal/domain"
	repository_mock "github.com/Egor213/LogHandler/internal/mocks/repository"
	"github.com/Egor213/LogHandler/internal/repo/repoerrs"
	"github.com/Egor213/LogHandler/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewIngestKey(t *testing.T) {
	a, b := service.NewIngestKey(), service.NewIngestKey()
	assert.Len(t, a, 32)
	assert.NotContains(t, a, "-")
	assert.NotEqual(t, a, b)
}

func TestApplicationService_CreateApplication(t *testing.T) {
	type mockBehavior func(ar *repository_mock.MockApplication)

	const key = "fedcba9876543210fedcba9876543210"

	testCases := []struct {
		name         string
		appName      string
		mockBehavior mockBehavior
		want         domain.Application
		wantErr      error
	}{
		{
			name:    "success trims name",
			appName: "  test-app ",
			mockBehavior: func(ar *repository_mock.MockApplication) {
				ar.EXPECT().CreateApplication(gomock.Any(), "test-app", key).
					Return(domain.Application{ID: 1, Name: "test-app", IngestKey: key}, nil)
			},
			want: domain.Application{ID: 1, Name: "test-app", IngestKey: key},
		},
		{
			name:         "empty name",
			appName:      "   ",
			mockBehavior: func(ar *repository_mock.MockApplication) {},
			wantErr:      service.ErrInvalidPayload,
		},
		{
			name:         "name too long",
			appName:      strings.Repeat("n", service.MaxApplicationNameLength+1),
			mockBehavior: func(ar *repository_mock.MockApplication) {},
			wantErr:      service.ErrInvalidPayload,
		},
		{
			name:         "name with NUL",
			appName:      "bad\x00name",
			mockBehavior: func(ar *repository_mock.MockApplication) {},
			wantErr:      service.ErrInvalidPayload,
		},
		{
			name:         "name with invalid UTF-8",
			appName:      "bad \xff",
			mockBehavior: func(ar *repository_mock.MockApplication) {},
			wantErr:      service.ErrInvalidPayload,
		},
		{
			name:    "duplicate name",
			appName: "test-app",
			mockBehavior: func(ar *repository_mock.MockApplication) {
				ar.EXPECT().CreateApplication(gomock.Any(), "test-app", key).
					Return(domain.Application{}, repoerrs.ErrAlreadyExists)
			},
			wantErr: service.ErrApplicationAlreadyExists,
		},
		{
			name:    "store error",
			appName: "test-app",
			mockBehavior: func(ar *repository_mock.MockApplication) {
				ar.EXPECT().CreateApplication(gomock.Any(), "test-app", key).
					Return(domain.Application{}, errors.New("db error"))
			},
			wantErr: service.ErrStoreUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			appRepo := repository_mock.NewMockApplication(ctrl)
			tc.mockBehavior(appRepo)

			svc := service.NewApplicationService(appRepo)
			svc.SetKeyGenerator(func() string { return key })

			got, err := svc.CreateApplication(context.Background(), tc.appName)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApplicationService_GetApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appRepo := repository_mock.NewMockApplication(ctrl)
	appRepo.EXPECT().GetApplication(gomock.Any(), int64(7)).Return(domain.Application{}, repoerrs.ErrNotFound)

	svc := service.NewApplicationService(appRepo)

	_, err := svc.GetApplication(context.Background(), 7)
	assert.ErrorIs(t, err, service.ErrUnknownApplication)
	assert.Equal(t, "UnknownApplication", service.ErrorKind(err))
}

func TestApplicationService_ListApplications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appRepo := repository_mock.NewMockApplication(ctrl)
	appRepo.EXPECT().ListApplications(gomock.Any()).Return(nil, nil)

	svc := service.NewApplicationService(appRepo)

	apps, err := svc.ListApplications(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)
}
