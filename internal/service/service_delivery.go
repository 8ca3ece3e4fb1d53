// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-webhooks/internal/adapter"
	"github.com/MKhiriev/go-webhooks/internal/config"
	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/internal/metrics"
	"github.com/MKhiriev/go-webhooks/models"
)

// httpErrorPrefix precedes the reason phrase of a non-2xx response in the
// error of a failed delivery.
const httpErrorPrefix = "HTTP error: "

// deliveryService fans out one POST per (event, url) pair with at most
// concurrency requests in flight.
type deliveryService struct {
	sender      adapter.WebhookSender
	concurrency int

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// target is one (event, url) pair of a delivery cycle.
type target struct {
	event string
	url   string
}

func NewDeliveryService(sender adapter.WebhookSender, cfg config.Delivery, metrics *metrics.Metrics, logger *logger.Logger) DeliveryService {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &deliveryService{
		sender:      sender,
		concurrency: concurrency,
		metrics:     metrics,
		logger:      logger,
	}
}

func (d *deliveryService) Deliver(ctx context.Context, registry models.Registry, payload any) models.DeliveryReport {
	report := models.NewDeliveryReport(d.run(ctx, registry, payload))

	logger.FromContext(ctx).Info().
		Int("successful", report.SuccessfulWebhooksCount).
		Int("failed", report.FailedWebhooksCount).
		Msg("delivery cycle finished")

	return report
}

func (d *deliveryService) Dispatch(ctx context.Context, registry models.Registry, payload any) {
	for _, result := range d.run(ctx, registry, payload) {
		log := logger.FromContext(ctx).ForWebhook(result.Event, result.URL)
		if result.Outcome == models.OutcomeSuccess {
			log.Info().Int("status_code", *result.StatusCode).Msg("webhook triggered")
			continue
		}

		event := log.Error().Str("error", result.Error)
		if result.StatusCode != nil {
			event = event.Int("status_code", *result.StatusCode)
		}
		event.Msg("failed to trigger webhook")
	}
}

// run delivers to every target and returns the results in target order.
// Results are written into preallocated slots, so no locking is needed.
func (d *deliveryService) run(ctx context.Context, registry models.Registry, payload any) []models.DeliveryResult {
	targets := targetsOf(registry)
	results := make([]models.DeliveryResult, len(targets))

	var g errgroup.Group
	g.SetLimit(d.concurrency)

	for i, t := range targets {
		g.Go(func() error {
			results[i] = d.deliverOne(ctx, t, payload)
			return nil
		})
	}

	// deliverOne never fails, a failed POST is a failed result
	_ = g.Wait()

	return results
}

func (d *deliveryService) deliverOne(ctx context.Context, t target, payload any) models.DeliveryResult {
	start := time.Now()
	sent, err := d.sender.Send(ctx, t.url, models.Envelope{Event: t.event, Data: payload})
	d.metrics.DeliveryDuration.WithLabelValues(t.event).Observe(time.Since(start).Seconds())

	result := models.DeliveryResult{Event: t.event, URL: t.url}
	switch {
	case err != nil:
		result.Outcome = models.OutcomeFailure
		result.Error = err.Error()
	case !sent.IsSuccess():
		result.Outcome = models.OutcomeFailure
		result.Error = httpErrorPrefix + sent.Reason
		result.StatusCode = &sent.StatusCode
	default:
		result.Outcome = models.OutcomeSuccess
		result.Payload = parseResponsePayload(sent.Body)
		result.StatusCode = &sent.StatusCode
	}

	d.metrics.DeliveriesTotal.WithLabelValues(t.event, string(result.Outcome)).Inc()
	logger.FromContext(ctx).ForWebhook(t.event, t.url).Debug().
		Str("outcome", string(result.Outcome)).
		Dur("took", time.Since(start)).
		Msg("webhook delivery attempt")

	return result
}

// targetsOf flattens registry into (event, url) pairs, events ascending and
// URLs in list order.
func targetsOf(registry models.Registry) []target {
	targets := make([]target, 0, registry.Len())
	for _, event := range registry.Events() {
		for _, url := range registry[event] {
			targets = append(targets, target{event: event, url: url})
		}
	}

	return targets
}

// parseResponsePayload decodes a subscriber's answer. Anything that is not
// a JSON value, and an explicit null, becomes an empty object.
func parseResponsePayload(body []byte) any {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		return map[string]any{}
	}

	return payload
}
