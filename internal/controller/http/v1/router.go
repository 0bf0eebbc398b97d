package httpv1

import (
	"github.com/Egor213/LogHandler/internal/metrics"
	"github.com/Egor213/LogHandler/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

const defaultMaxBodyBytes = 64 << 10

type Option func(*routerOptions)

type routerOptions struct {
	maxBodyBytes int64
}

func MaxBodyBytes(n int64) Option {
	return func(o *routerOptions) {
		if n > 0 {
			o.maxBodyBytes = n
		}
	}
}

func ConfigureRouter(handler *echo.Echo, services *service.Services, counters *metrics.Counters, opts ...Option) {
	o := routerOptions{maxBodyBytes: defaultMaxBodyBytes}
	for _, opt := range opts {
		opt(&o)
	}

	handler.HideBanner = true
	handler.JSONSerializer = JSONSerializer{}
	handler.Validator = NewRequestValidator()
	handler.HTTPErrorHandler = ErrorHandler

	handler.Use(middleware.Recover())
	handler.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.WithFields(log.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			}).Debug("Request handled")
			return nil
		},
	}))

	apps := NewApplicationController(services.Application)
	events := NewEventController(services.Event, counters, o.maxBodyBytes)
	stats := NewStatsController(services.Stats)

	g := handler.Group("/apps")
	g.GET("", apps.ListApplications)
	g.POST("/:name", apps.CreateApplication)
	g.GET("/:app_id", apps.GetApplication)

	g.POST("/:app_id/events", events.IngestEvent)
	g.GET("/:app_id/events", events.ListEvents)

	g.GET("/:app_id/stats/timeseries", stats.Timeseries)
	g.GET("/:app_id/stats/by-level", stats.ByLevel)
	g.GET("/:app_id/stats/top-messages", stats.TopMessages)
}
