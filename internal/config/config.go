package config

import (
	"os"
	"time"

	errorsUtils "github.com/Egor213/LogHandler/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"

	"github.com/joho/godotenv"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		PG         `yaml:"postgres"`
		HTTP       `yaml:"http"`
		GRPC       `yaml:"grpc"`
		Prometheus `yaml:"prometheus"`
		Kafka      `yaml:"kafka"`
	}

	App struct {
		Name    string `yaml:"name" env-required:"true"`
		Version string `yaml:"version" env-required:"true"`
	}

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	}

	PG struct {
		MaxPoolSize  int           `env-required:"true" env:"MAX_POOL_SIZE" yaml:"max_pool_size"`
		URL          string        `env-required:"true" env:"PG_URL"`
		QueryTimeout time.Duration `yaml:"query_timeout" env:"PG_QUERY_TIMEOUT" env-default:"5s"`
	}

	HTTP struct {
		Port            string        `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
		MaxBodyBytes    int64         `yaml:"max_body_bytes" env:"HTTP_MAX_BODY_BYTES" env-default:"65536"`
	}

	Prometheus struct {
		Port string `env-required:"true" yaml:"port" env:"PROMETHEUS_PORT"`
	}

	GRPC struct {
		Port          string        `env-required:"true" yaml:"port" env:"GRPC_PORT"`
		ProbeInterval time.Duration `yaml:"probe_interval" env:"GRPC_PROBE_INTERVAL" env-default:"10s"`
	}

	Kafka struct {
		Enabled         bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
		Brokers         []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic           string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"events"`
		GroupID         string   `yaml:"group_id" env:"KAFKA_GROUP_ID" env-default:"loghandler"`
		DeadLetterTopic string   `yaml:"dead_letter_topic" env:"KAFKA_DEAD_LETTER_TOPIC" env-default:"events.dead-letter"`
	}
)

const ENV_PATH = "infra/.env.dev"

func init() {
	if err := godotenv.Load(ENV_PATH); err != nil {
		log.WithField("path", ENV_PATH).Warnf("Env file not loaded: %v", err)
	}
}

func New() (*Config, error) {
	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = "infra/config.yaml"
	}

	return Load(pathToConfig)
}

// Load reads the YAML file at path and lets the environment override it.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}
