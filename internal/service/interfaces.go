package service

import (
	"context"

	"github.com/MKhiriev/go-webhooks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DeliveryService posts envelopes to the URLs of a registry.
type DeliveryService interface {
	// Deliver POSTs {event, data: payload} to every (event, url) pair of
	// registry exactly once and returns the aggregated report. Entries keep
	// the event order then URL order of registry.
	Deliver(ctx context.Context, registry models.Registry, payload any) models.DeliveryReport

	// Dispatch does the same as Deliver but only logs the outcomes.
	Dispatch(ctx context.Context, registry models.Registry, payload any)
}

// WebhookService is the use-case layer behind the HTTP routes.
type WebhookService interface {
	Register(ctx context.Context, request models.WebhookRequest) (models.WebhookResponse, error)
	Unregister(ctx context.Context, request models.WebhookRequest) error

	// List returns all registered webhooks, or those of a single event when
	// event is non-empty.
	List(ctx context.Context, event string) (models.RegisteredWebhooksResponse, error)

	CreateEvent(ctx context.Context, request models.EventRequest) (models.MessageResponse, error)
	DeleteEvent(ctx context.Context, event string) error

	// Ping delivers the configured ping payload to every registered URL.
	Ping(ctx context.Context) (models.PingResponse, error)

	// Simulate delivers request.Data (or a sample payload) to the URLs of
	// request.Event and reports the outcome.
	Simulate(ctx context.Context, request models.TriggerRequest) (models.PingResponse, error)

	// Trigger schedules a fire-and-forget delivery of request.Data to the
	// URLs of request.Event and returns immediately.
	Trigger(ctx context.Context, request models.TriggerRequest) error

	// Wait blocks until every triggered delivery has finished or ctx is done.
	Wait(ctx context.Context) error
}

// AppInfoService exposes build and version metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// WebhookServiceWrapper defines middleware composition for WebhookService.
// Implementations wrap an existing WebhookService to add behavior such as
// logging or validating.
type WebhookServiceWrapper interface {
	Wrap(WebhookService) WebhookService // returns a decorated WebhookService applying additional behavior
}
