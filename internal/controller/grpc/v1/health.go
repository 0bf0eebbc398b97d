package grpcv1

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	EventsServiceName = "loghandler.v1.Events"

	defaultProbeInterval = 10 * time.Second
	probeTimeout         = 2 * time.Second
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves grpc.health.v1 and keeps its status in step with
// the event store.
type HealthController struct {
	server   *health.Server
	store    Pinger
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func NewHealthController(store Pinger, interval time.Duration) *HealthController {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	hc := &HealthController{
		server:   health.NewServer(),
		store:    store,
		interval: interval,
	}
	hc.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return hc
}

func (hc *HealthController) Server() healthpb.HealthServer {
	return hc.server
}

// Probe pings the store once and updates the reported status.
func (hc *HealthController) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := hc.store.Ping(ctx); err != nil {
		log.WithError(err).Warn("Store ping failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	hc.set(status)
	return status
}

func (hc *HealthController) set(status healthpb.HealthCheckResponse_ServingStatus) {
	hc.server.SetServingStatus("", status)
	hc.server.SetServingStatus(EventsServiceName, status)
}

func (hc *HealthController) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	hc.cancel = cancel
	hc.done = make(chan struct{})

	go func() {
		defer close(hc.done)
		ticker := time.NewTicker(hc.interval)
		defer ticker.Stop()

		hc.Probe(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				hc.Probe(ctx)
			}
		}
	}()
}

// Stop ends probing and reports NOT_SERVING to every watcher.
func (hc *HealthController) Stop() {
	if hc.cancel != nil {
		hc.cancel()
		<-hc.done
	}
	hc.server.Shutdown()
}
