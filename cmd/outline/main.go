// Command outline extracts document outlines from directories of PDF files,
// writing one JSON file per input document.
//
// Configuration is resolved in order: built-in defaults, then an optional
// YAML config file, then environment variables, then flags.
//
//	outline -input ./pdfs -output ./outlines -workers 8
//	outline -config outline.yaml
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/tsawler/outline/batch"
)

func main() {
	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	var (
		configPath = flag.String("config", env("OUTLINE_CONFIG", ""), "path to a YAML config file")
		inputDir   = flag.String("input", env("OUTLINE_INPUT", ""), "directory of PDF files to process")
		outputDir  = flag.String("output", env("OUTLINE_OUTPUT", ""), "directory for JSON outlines")
		workers    = flag.Int("workers", envInt("OUTLINE_WORKERS", 0), "number of documents processed concurrently")
		recursive  = flag.Bool("recursive", false, "descend into subdirectories of the input directory")
		skipPre    = flag.Bool("skip-preflight", false, "skip pdfcpu validation before extraction")
	)
	flag.Parse()

	logger := newLogger(env("LOG_LEVEL", "info"))
	slog.SetDefault(logger)

	var cfg batch.Config
	if *configPath != "" {
		loaded, err := batch.LoadConfig(*configPath)
		if err != nil {
			slog.Error("config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags and environment override the config file.
	if *inputDir != "" {
		cfg.InputDir = *inputDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *recursive {
		cfg.Recursive = true
	}
	if *skipPre {
		cfg.SkipPreflight = true
	}
	cfg.Logger = logger

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	summary, err := batch.New(cfg).Run(ctx)
	if err != nil {
		slog.Error("batch run", "error", err)
		os.Exit(1)
	}

	slog.Info("batch complete",
		"processed", summary.Processed,
		"failed", summary.Failed,
		"duration", summary.Duration.Round(time.Millisecond).String())

	// Individual document failures are logged and survive; only a batch
	// that produced nothing at all fails the process.
	if summary.Processed == 0 && summary.Failed > 0 {
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
