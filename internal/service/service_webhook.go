// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-webhooks/internal/app"
	"github.com/MKhiriev/go-webhooks/internal/config"
	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/internal/store"
	"github.com/MKhiriev/go-webhooks/models"
)

// webhookService implements [WebhookService] on top of a registry repository
// and the delivery engine.
type webhookService struct {
	repository store.RegistryRepository
	delivery   DeliveryService

	pingPayload map[string]string

	// triggers tracks fire-and-forget deliveries still running.
	triggers sync.WaitGroup

	logger *logger.Logger
}

func NewWebhookService(repository store.RegistryRepository, delivery DeliveryService, cfg config.Delivery, logger *logger.Logger) WebhookService {
	return &webhookService{
		repository:  repository,
		delivery:    delivery,
		pingPayload: map[string]string{"ping": cfg.PingMessage},
		logger:      logger,
	}
}

func (s *webhookService) Register(ctx context.Context, request models.WebhookRequest) (models.WebhookResponse, error) {
	if err := s.repository.AddURL(ctx, request.Event, request.URL); err != nil {
		return models.WebhookResponse{}, err
	}

	logger.FromContext(ctx).Info().Str("event", request.Event).Str("url", request.URL).Msg("webhook registered")
	return models.WebhookResponse{
		Message: app.MsgWebhookRegistered,
		URL:     request.URL,
		Event:   request.Event,
	}, nil
}

func (s *webhookService) Unregister(ctx context.Context, request models.WebhookRequest) error {
	if err := s.repository.RemoveURL(ctx, request.Event, request.URL); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("event", request.Event).Str("url", request.URL).Msg("webhook unregistered")
	return nil
}

func (s *webhookService) List(ctx context.Context, event string) (models.RegisteredWebhooksResponse, error) {
	var (
		registry models.Registry
		err      error
	)
	if event == "" {
		registry, err = s.repository.ReadAll(ctx)
	} else {
		registry, err = s.repository.ReadEvent(ctx, event)
	}
	if err != nil {
		return models.RegisteredWebhooksResponse{}, err
	}

	return models.RegisteredWebhooksResponse{Webhooks: registry.Webhooks()}, nil
}

func (s *webhookService) CreateEvent(ctx context.Context, request models.EventRequest) (models.MessageResponse, error) {
	if err := s.repository.CreateEvent(ctx, request.Event); err != nil {
		return models.MessageResponse{}, err
	}

	logger.FromContext(ctx).Info().Str("event", request.Event).Msg("event created")
	return models.MessageResponse{Message: fmt.Sprintf(app.MsgEventCreatedFmt, request.Event)}, nil
}

func (s *webhookService) DeleteEvent(ctx context.Context, event string) error {
	if err := s.repository.DeleteEvent(ctx, event); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("event", event).Msg("event deleted")
	return nil
}

func (s *webhookService) Ping(ctx context.Context) (models.PingResponse, error) {
	registry, err := s.repository.ReadAll(ctx)
	if err != nil {
		return models.PingResponse{}, err
	}

	return models.PingResponse{
		Message:        app.MsgPingCompleted,
		DeliveryReport: s.delivery.Deliver(ctx, registry, s.pingPayload),
	}, nil
}

func (s *webhookService) Simulate(ctx context.Context, request models.TriggerRequest) (models.PingResponse, error) {
	registry, err := s.repository.ReadEvent(ctx, request.Event)
	if err != nil {
		return models.PingResponse{}, err
	}

	payload := request.Data
	if payload == nil {
		payload = app.MsgSamplePayload
	}

	return models.PingResponse{
		Message:        fmt.Sprintf(app.MsgEventSimulatedFmt, request.Event),
		DeliveryReport: s.delivery.Deliver(ctx, registry, payload),
	}, nil
}

// Trigger runs detached from ctx cancellation, so the delivery outlives the
// request that started it. A missing event or one without URLs is logged.
func (s *webhookService) Trigger(ctx context.Context, request models.TriggerRequest) error {
	detached := context.WithoutCancel(ctx)

	s.triggers.Add(1)
	go func() {
		defer s.triggers.Done()

		log := logger.FromContext(detached)
		registry, err := s.repository.ReadEvent(detached, request.Event)
		if err != nil {
			log.Warn().Err(err).Str("event", request.Event).Msg("nothing to trigger")
			return
		}

		s.delivery.Dispatch(detached, registry, request.Data)
	}()

	return nil
}

func (s *webhookService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.triggers.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
