package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/positions/internal/analysis/frame"
	"github.com/Alias1177/positions/internal/config"
	httpClient "github.com/Alias1177/positions/internal/platform/http"
	"github.com/Alias1177/positions/internal/render"
	"github.com/Alias1177/positions/internal/snapshot"
	"github.com/Alias1177/positions/internal/trading/levels"
	"github.com/Alias1177/positions/internal/trading/position"
)

func main() {
	// Setup context with cancellation for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// 2. Configure logging
	setupLogging(cfg.LogLevel)
	printConfig(cfg)

	// 3. Load the indicator snapshot
	snap, err := newSource(cfg).Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load snapshot")
	}

	// 4. Build position rows
	calc := levels.NewCalculator(frame.SnapshotClassifier{}, cfg.ADXStructuralThreshold)
	assembler := position.NewAssembler(calc, frame.KeyDetector{Order: cfg.Timeframes})
	rows := assembler.Build(snap)

	// 5. Render
	if err := render.Write(os.Stdout, rows, cfg.OutputFormat); err != nil {
		log.Fatal().Err(err).Msg("Failed to render positions")
	}
}

// newSource picks the file or remote snapshot source
func newSource(cfg *config.Config) snapshot.Source {
	if cfg.SnapshotURL == "" {
		return snapshot.File{Path: cfg.SnapshotPath}
	}
	client := httpClient.NewClient(httpClient.ClientOptions{
		Timeout:        time.Duration(cfg.RequestTimeout) * time.Second,
		RequestsPerSec: cfg.RequestsPerSec,
		MaxRetries:     cfg.MaxRetries,
	})
	return snapshot.NewRemote(cfg.SnapshotURL, client)
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}

// printConfig outputs the current configuration
func printConfig(cfg *config.Config) {
	log.Info().
		Str("SnapshotPath", cfg.SnapshotPath).
		Str("SnapshotURL", cfg.SnapshotURL).
		Float64("ADXStructuralThreshold", cfg.ADXStructuralThreshold).
		Strs("Timeframes", cfg.Timeframes).
		Str("OutputFormat", cfg.OutputFormat).
		Msg("Configuration loaded")
}
