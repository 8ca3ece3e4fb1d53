package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-webhooks/internal/validators"
	"github.com/MKhiriev/go-webhooks/models"
)

// WebhookValidationService lowercases event names and rejects malformed
// events and URLs before they reach the wrapped service.
type WebhookValidationService struct {
	inner     WebhookService
	validator validators.Validator
}

func NewWebhookValidationService() WebhookServiceWrapper {
	return &WebhookValidationService{
		validator: validators.NewWebhookValidator(),
	}
}

func (v *WebhookValidationService) Register(ctx context.Context, request models.WebhookRequest) (models.WebhookResponse, error) {
	request.Event = validators.NormalizeEvent(request.Event)
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.WebhookResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, request)
}

func (v *WebhookValidationService) Unregister(ctx context.Context, request models.WebhookRequest) error {
	// unregistering only needs an event to look up, the URL is matched as is
	request.Event = validators.NormalizeEvent(request.Event)
	if err := v.validator.Validate(ctx, request, validators.FieldEvent); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if request.URL == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyURL)
	}

	return v.inner.Unregister(ctx, request)
}

func (v *WebhookValidationService) List(ctx context.Context, event string) (models.RegisteredWebhooksResponse, error) {
	if event != "" {
		event = validators.NormalizeEvent(event)
		if err := v.validator.Validate(ctx, event); err != nil {
			return models.RegisteredWebhooksResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	return v.inner.List(ctx, event)
}

func (v *WebhookValidationService) CreateEvent(ctx context.Context, request models.EventRequest) (models.MessageResponse, error) {
	request.Event = validators.NormalizeEvent(request.Event)
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.MessageResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateEvent(ctx, request)
}

func (v *WebhookValidationService) DeleteEvent(ctx context.Context, event string) error {
	event = validators.NormalizeEvent(event)
	if err := v.validator.Validate(ctx, event); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteEvent(ctx, event)
}

func (v *WebhookValidationService) Ping(ctx context.Context) (models.PingResponse, error) {
	return v.inner.Ping(ctx)
}

func (v *WebhookValidationService) Simulate(ctx context.Context, request models.TriggerRequest) (models.PingResponse, error) {
	request.Event = validators.NormalizeEvent(request.Event)
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.PingResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Simulate(ctx, request)
}

func (v *WebhookValidationService) Trigger(ctx context.Context, request models.TriggerRequest) error {
	request.Event = validators.NormalizeEvent(request.Event)
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Trigger(ctx, request)
}

func (v *WebhookValidationService) Wait(ctx context.Context) error {
	return v.inner.Wait(ctx)
}

func (v *WebhookValidationService) Wrap(wrapper WebhookService) WebhookService {
	v.inner = wrapper
	return v
}
