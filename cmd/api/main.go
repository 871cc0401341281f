package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"timetracker/config"
	_ "timetracker/docs" // Swagger docs
	"timetracker/internal/httpserver"
	"timetracker/internal/journal/usecase"
	"timetracker/internal/middleware"
	"timetracker/internal/storage"
	"timetracker/pkg/datemath"
	"timetracker/pkg/log"
)

// @title       Timetracker API
// @description Encrypted local task and time journal with daily reviews and next-day suggestions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load(os.Getenv("TIMETRACKER_CONFIG"))
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting timetracker API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s %s", cfg.Storage.Driver, cfg.Storage.Path)

	// 3. Journal
	clock, err := datemath.NewClock(cfg.Clock.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Clock.Timezone, err)
		clock, _ = datemath.NewClock("UTC")
	}

	repo, err := storage.Open(cfg.Storage, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer repo.Close()

	journalUC := usecase.New(logger, repo, clock)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Host:           cfg.HTTPServer.Host,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		JournalUseCase: journalUC,
		Middleware:     middleware.Config{UnlockRatePerMin: cfg.Security.UnlockRatePerMin},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
