package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-webhooks/internal/adapter"
	"github.com/MKhiriev/go-webhooks/internal/client"
	"github.com/MKhiriev/go-webhooks/internal/config"
	"github.com/MKhiriev/go-webhooks/internal/logger"
)

func main() {
	log := logger.NewLogger("webhook-subscriber")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	registry, err := adapter.NewHTTPRegistryClient(cfg.Subscriber, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create registry client")
	}

	app, err := client.NewApp(registry, cfg.Subscriber, log)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid subscriber configuration")
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("subscriber finished with errors")
		os.Exit(1)
	}
}
