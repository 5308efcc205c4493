// Command slate builds the assessed slate for one date and prints it as JSON.
// Useful for spot checks without running the server.
//
// Usage:
//
//	go run ./cmd/slate -date 2024-07-03
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/couchcryptid/gameday-weather/internal/adapter/meteo"
	"github.com/couchcryptid/gameday-weather/internal/adapter/mlb"
	"github.com/couchcryptid/gameday-weather/internal/config"
	"github.com/couchcryptid/gameday-weather/internal/domain"
	"github.com/couchcryptid/gameday-weather/internal/observability"
	"github.com/couchcryptid/gameday-weather/internal/slate"
	"github.com/couchcryptid/gameday-weather/internal/venues"
)

func main() {
	dateFlag := flag.String("date", "", "slate date as YYYY-MM-DD (default today)")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Parse()

	if err := run(*dateFlag, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(dateFlag string, verbose bool) error {
	date := time.Now()
	if dateFlag != "" {
		parsed, err := time.Parse("2006-01-02", dateFlag)
		if err != nil {
			return fmt.Errorf("invalid -date %q: %w", dateFlag, err)
		}
		date = parsed
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logOut := io.Discard
	if verbose {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))
	metrics := observability.NewMetrics()

	directory, err := venues.Load()
	if err != nil {
		return fmt.Errorf("load venue directory: %w", err)
	}

	var weather domain.WeatherSource = meteo.NewClient(cfg.MeteoTimeout, metrics, logger)
	weather = meteo.NewCachedSource(weather, cfg.MeteoCacheSize, metrics)
	schedule := mlb.NewClient(cfg.ScheduleBaseURL, cfg.ScheduleTimeout, logger)

	builder := slate.NewBuilder(schedule, weather, directory, nil, logger, metrics, cfg.SlateConcurrency)

	s, err := builder.Build(context.Background(), date)
	if err != nil {
		return fmt.Errorf("build slate: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
