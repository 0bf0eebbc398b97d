package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/LogHandler/internal/broker"
	kafkabroker "github.com/Egor213/LogHandler/internal/broker/kafka"
	"github.com/Egor213/LogHandler/internal/config"
	grpcv1 "github.com/Egor213/LogHandler/internal/controller/grpc/v1"
	httpv1 "github.com/Egor213/LogHandler/internal/controller/http/v1"
	kafkactrl "github.com/Egor213/LogHandler/internal/controller/kafka"
	"github.com/Egor213/LogHandler/internal/metrics"
	"github.com/Egor213/LogHandler/internal/repo"
	"github.com/Egor213/LogHandler/internal/service"
	errorsUtils "github.com/Egor213/LogHandler/pkg/errors"
	"github.com/Egor213/LogHandler/pkg/grpcserver"
	"github.com/Egor213/LogHandler/pkg/httpserver"
	"github.com/Egor213/LogHandler/pkg/logger"
	"github.com/Egor213/LogHandler/pkg/postgres"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level, cfg.Log.Format)
	log.Info("Logger has been set up")

	// Migrations
	Migrate(cfg.PG.URL)

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(cfg.PG.URL,
		postgres.MaxPoolSize(cfg.PG.MaxPoolSize),
		postgres.QueryTimeout(cfg.PG.QueryTimeout),
	)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Repos
	repositories := repo.NewRepositories(pg)

	// Services
	deps := service.ServicesDependencies{
		Repos:     repositories,
		TrManager: pg.TrManager,
	}
	services := service.NewServices(deps)

	counters := metrics.New()

	// HTTP API server
	log.Infof("Starting HTTP server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	apiHandler := echo.New()
	apiHandler.Use(metrics.Middleware())
	httpv1.ConfigureRouter(apiHandler, services, counters, httpv1.MaxBodyBytes(cfg.HTTP.MaxBodyBytes))
	apiServer := httpserver.New(apiHandler,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)

	// gRPC health server
	log.Infof("Starting gRPC server...")
	log.Debugf("Server port: %s", cfg.GRPC.Port)
	healthController := grpcv1.NewHealthController(pg, cfg.GRPC.ProbeInterval)
	healthController.Start()
	grpcServer, err := grpcserver.New(grpcv1.RegisterServices(healthController), grpcserver.WithPort(cfg.GRPC.Port))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metricsHandler.HideBanner = true
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Kafka ingest
	var (
		consumer       *kafkabroker.Consumer
		deadLetter     broker.Producer
		consumerNotify <-chan error
	)
	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) > 0 {
		log.WithFields(log.Fields{
			"topic":       cfg.Kafka.Topic,
			"dead_letter": cfg.Kafka.DeadLetterTopic,
		}).Info("Starting Kafka consumer...")

		deadLetter = kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.DeadLetterTopic,
		})
		consumer = kafkabroker.NewConsumer(kafkabroker.ConsumerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			GroupID: cfg.Kafka.GroupID,
		})
		consumer.Start(kafkactrl.NewIngestController(services.Event, deadLetter, counters))
		consumerNotify = consumer.Notify()
	}

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-apiServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-grpcServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-consumerNotify:
		log.Error(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	if consumer != nil {
		if err := consumer.Shutdown(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
		if err := deadLetter.Close(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}
	if err := apiServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	healthController.Stop()
	grpcServer.Shutdown()
}
