package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-webhooks/internal/config"
	"github.com/MKhiriev/go-webhooks/internal/handler"
	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/internal/metrics"
	"github.com/MKhiriev/go-webhooks/internal/server"
	"github.com/MKhiriev/go-webhooks/internal/service"
	"github.com/MKhiriev/go-webhooks/internal/store"
	"github.com/MKhiriev/go-webhooks/internal/workers"
	"github.com/MKhiriev/go-webhooks/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger("webhook-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	if err = storages.RegistryRepository.EnsureEvents(ctx, cfg.Registry.Events...); err != nil {
		log.Fatal().Err(err).Msg("error seeding registry events")
	}

	m := metrics.NewMetrics(nil)

	services, err := service.NewServices(storages, *cfg, buildInfo, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, services.WebhookService, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	go workers.NewWorkers(services, cfg.Workers, log).Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("error running server")
	}
}
