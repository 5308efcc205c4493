// Command server runs the gameday weather service: the slate API plus
// health, readiness, and metrics endpoints, with optional Kafka publishing.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/gameday-weather/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/gameday-weather/internal/adapter/kafka"
	"github.com/couchcryptid/gameday-weather/internal/adapter/meteo"
	"github.com/couchcryptid/gameday-weather/internal/adapter/mlb"
	"github.com/couchcryptid/gameday-weather/internal/config"
	"github.com/couchcryptid/gameday-weather/internal/domain"
	"github.com/couchcryptid/gameday-weather/internal/observability"
	"github.com/couchcryptid/gameday-weather/internal/slate"
	"github.com/couchcryptid/gameday-weather/internal/venues"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	directory, err := venues.Load()
	if err != nil {
		logger.Error("failed to load venue directory", "error", err)
		os.Exit(1)
	}
	logger.Info("venue directory loaded", "venues", directory.Len())

	var weather domain.WeatherSource = meteo.NewClient(cfg.MeteoTimeout, metrics, logger)
	weather = meteo.NewCachedSource(weather, cfg.MeteoCacheSize, metrics)

	schedule := mlb.NewClient(cfg.ScheduleBaseURL, cfg.ScheduleTimeout, logger)

	// Kafka publishing is feature-flagged via KAFKA_ENABLED / KAFKA_BROKERS.
	var publisher slate.Publisher
	var kafkaPub *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		kafkaPub = kafkaadapter.NewPublisher(cfg, logger)
		publisher = kafkaPub
		logger.Info("kafka publishing enabled", "topic", cfg.KafkaSinkTopic)
	} else {
		logger.Info("kafka publishing disabled")
	}

	builder := slate.NewBuilder(schedule, weather, directory, publisher, logger, metrics, cfg.SlateConcurrency)

	srv := httpadapter.NewServer(cfg.HTTPAddr, builder, builder, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPub != nil {
		if err := kafkaPub.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
