package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"pnlsnap/internal/config"
	applog "pnlsnap/internal/log"
	"pnlsnap/internal/pnlapi"
	"pnlsnap/internal/snapshot"
)

func main() {
	// Load .env file for local development (ignore errors in production)
	_ = godotenv.Load()

	logger := applog.New(applog.ComponentApp, slog.LevelInfo)
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	client := pnlapi.NewClient(cfg.APIURL, cfg.APIToken, cfg.HTTPTimeout, logger)
	svc := snapshot.NewService(client, nil, logger)

	if err := svc.Run(context.Background()); err != nil {
		os.Exit(1)
	}
}
