package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/refstats/referee-stats/internal/app"
	"github.com/refstats/referee-stats/internal/config"
	"github.com/refstats/referee-stats/internal/observability"
	"github.com/refstats/referee-stats/internal/platform/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.json|file.csv> [more files...]\n", filepath.Base(os.Args[0]))
		return 2
	}

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("shutdown tracing", "error", err)
		}
	}()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		return 1
	}
	defer func() {
		if err := stopProfiler(); err != nil {
			logger.Error("stop profiler", "error", err)
		}
	}()

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return 1
	}
	defer func() { _ = a.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	total := 0
	for _, path := range os.Args[1:] {
		var count int
		if strings.EqualFold(filepath.Ext(path), ".csv") {
			count, err = a.Importer.ImportFromCSV(ctx, path)
		} else {
			count, err = a.Importer.ImportFromJSON(ctx, path)
		}
		if err != nil {
			logger.Error("file import failed", "path", path, "error", err)
			return 1
		}
		total += count
	}

	logger.Info("all files imported", "files", len(os.Args)-1, "records", total)
	return 0
}
