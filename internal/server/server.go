package server

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-webhooks/internal/config"
	"github.com/MKhiriev/go-webhooks/internal/handler"
	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/internal/service"
)

// shutdownTimeout bounds draining open requests and waiting for triggered
// deliveries once a stop signal arrives.
const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	webhooks   service.WebhookService
	logger     *logger.Logger
}

// NewServer builds the HTTP server for handlers. webhooks is waited on at
// shutdown so fire-and-forget deliveries are not cut off.
func NewServer(handlers *handler.Handlers, webhooks service.WebhookService, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		webhooks:   webhooks,
		logger:     logger,
	}, nil
}

// RunServer serves until ctx is cancelled, then shuts down gracefully.
// A listener failure is returned right away.
func (s *server) RunServer(ctx context.Context) error {
	listener, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		serveErr <- s.httpServer.serve(listener)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err = s.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return <-serveErr
}

// Shutdown stops accepting requests, drains open ones and then waits for
// triggered deliveries still in flight.
func (s *server) Shutdown(ctx context.Context) error {
	err := s.httpServer.shutdown(ctx)

	if s.webhooks != nil {
		if waitErr := s.webhooks.Wait(ctx); waitErr != nil {
			s.logger.Warn().Err(waitErr).Msg("triggered deliveries did not finish before shutdown")
			err = errors.Join(err, waitErr)
		}
	}

	return err
}
