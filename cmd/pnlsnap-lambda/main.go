package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"

	"pnlsnap/internal/amqp"
	"pnlsnap/internal/config"
	applog "pnlsnap/internal/log"
	"pnlsnap/internal/pnlapi"
	"pnlsnap/internal/snapshot"
)

func main() {
	// Load .env file for local invocation (ignore errors in production)
	_ = godotenv.Load()

	logger := applog.New(applog.ComponentLambda, slog.LevelInfo)
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	client := pnlapi.NewClient(cfg.APIURL, cfg.APIToken, cfg.HTTPTimeout, logger)

	// The AMQP connection outlives a single invocation; the runtime
	// reuses it for every request handled by this execution environment.
	var publisher snapshot.Publisher
	if cfg.PublishEnabled() {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
			os.Exit(1)
		}
		publisher = amqpClient
		logger.Info("Snapshot publishing enabled",
			applog.FieldExchange, cfg.AMQPExchange,
			applog.FieldQueue, cfg.AMQPQueue)
	}

	svc := snapshot.NewService(client, publisher, logger)

	lambda.Start(func(ctx context.Context) (events.APIGatewayProxyResponse, error) {
		return svc.Handle(ctx), nil
	})
}
