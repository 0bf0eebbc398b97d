package grpcv1_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	grpcv1 "github.com/Egor213/LogHandler/internal/controller/grpc/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type fakeStore struct {
	mu  sync.Mutex
	err error
}

func (s *fakeStore) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *fakeStore) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func status(t *testing.T, hc *grpcv1.HealthController, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := hc.Server().Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealthController_Probe(t *testing.T) {
	store := &fakeStore{}
	hc := grpcv1.NewHealthController(store, time.Minute)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, hc, ""))

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, hc.Probe(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, hc, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, hc, grpcv1.EventsServiceName))

	store.setErr(errors.New("connection refused"))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, hc.Probe(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, hc, grpcv1.EventsServiceName))
}

func TestHealthController_StartStop(t *testing.T) {
	hc := grpcv1.NewHealthController(&fakeStore{}, 10*time.Millisecond)
	hc.Start()

	assert.Eventually(t, func() bool {
		resp, err := hc.Server().Check(context.Background(), &healthpb.HealthCheckRequest{})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	hc.Stop()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, hc, ""))
}
