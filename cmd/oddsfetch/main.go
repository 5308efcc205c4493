// Command oddsfetch pulls the current MLB odds board and writes it to a JSON
// snapshot file. Intended to run on a cron cadence; the write is atomic so
// readers never observe a partial file.
//
// Usage:
//
//	ODDS_API_KEY=... go run ./cmd/oddsfetch -out data/odds.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/gameday-weather/internal/adapter/odds"
	"github.com/couchcryptid/gameday-weather/internal/config"
	"github.com/couchcryptid/gameday-weather/internal/observability"
)

func main() {
	outPath := flag.String("out", "data/odds.json", "snapshot output path")
	timeout := flag.Duration("timeout", 30*time.Second, "overall fetch timeout")
	flag.Parse()

	if err := run(*outPath, *timeout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(outPath string, timeout time.Duration) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.OddsAPIKey == "" {
		return fmt.Errorf("ODDS_API_KEY is required")
	}

	logger := observability.NewLogger(cfg.LogLevel, "text")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client := odds.NewClient(cfg.OddsAPIKey, timeout, logger)
	snap, err := client.FetchSnapshot(ctx)
	if err != nil {
		return err
	}

	if err := writeSnapshot(outPath, snap); err != nil {
		return err
	}

	logger.Info("odds snapshot written", "path", outPath, "games", snap.GameCount)
	return nil
}

// writeSnapshot writes the snapshot to a temp file in the target directory
// and renames it into place.
func writeSnapshot(path string, snap odds.Snapshot) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".odds-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		tmp.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename snapshot into place: %w", err)
	}
	return nil
}
