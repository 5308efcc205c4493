// Package config loads service settings from the environment: a .env file is
// read first (never overriding real environment variables), envconfig struct
// tags populate the Config, and the result is validated before use.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json text"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`

	// Schedule source.
	ScheduleBaseURL string        `envconfig:"SCHEDULE_BASE_URL" default:"https://statsapi.mlb.com" validate:"url"`
	ScheduleTimeout time.Duration `envconfig:"SCHEDULE_TIMEOUT" default:"10s" validate:"gt=0"`

	// Weather provider.
	MeteoTimeout   time.Duration `envconfig:"METEO_TIMEOUT" default:"10s" validate:"gt=0"`
	MeteoCacheSize int           `envconfig:"METEO_CACHE_SIZE" default:"256" validate:"gt=0"`

	// Slate building.
	SlateConcurrency int `envconfig:"SLATE_CONCURRENCY" default:"4" validate:"gt=0,lte=32"`

	// Kafka publishing (feature-flagged; disabled unless brokers are set).
	KafkaEnabled   bool     `envconfig:"KAFKA_ENABLED"`
	KafkaBrokers   []string `envconfig:"KAFKA_BROKERS"`
	KafkaSinkTopic string   `envconfig:"KAFKA_SINK_TOPIC" default:"game-weather-assessments"`

	// Odds snapshots (cmd/oddsfetch only).
	OddsAPIKey string `envconfig:"ODDS_API_KEY"`
}

// Load reads configuration from the environment, applying defaults where
// unset. A .env file in the working directory is honored but never overrides
// real environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// KAFKA_BROKERS implies enabled unless explicitly switched off, matching
	// how the odds key gates oddsfetch.
	if len(cfg.KafkaBrokers) > 0 && !envSetFalse("KAFKA_ENABLED") {
		cfg.KafkaEnabled = true
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.KafkaEnabled && cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required when Kafka is enabled")
	}

	return &cfg, nil
}

// envSetFalse reports whether the variable is explicitly set to a false value.
func envSetFalse(key string) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && !b
}
