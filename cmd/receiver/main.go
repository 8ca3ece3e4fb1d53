package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-webhooks/internal/config"
	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/internal/receiver"
)

func main() {
	log := logger.NewLogger("webhook-receiver")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Receiver.HTTPAddress,
		Handler:           receiver.NewHandler(log).Init(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Err(err).Msg("receiver Shutdown")
		}
	}()

	log.Info().Str("address", srv.Addr).Msg("receiver listening")
	if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("receiver ListenAndServe")
	}
}
