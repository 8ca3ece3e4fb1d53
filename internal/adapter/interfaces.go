// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound HTTP clients of the webhook service.
//
// [WebhookSender] posts one event envelope to one subscriber URL and reports
// what came back. [RegistryClient] talks to the webhook service's own REST
// API and is used by the subscriber CLI.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-webhooks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// WebhookSender delivers a single envelope to a subscriber.
type WebhookSender interface {
	// Send POSTs envelope as JSON to url. A received response is never an
	// error, whatever its status; err is non-nil only when no response was
	// received at all (connection refused, timeout, DNS failure, ...).
	Send(ctx context.Context, url string, envelope models.Envelope) (models.SendResult, error)
}

// RegistryClient manages registrations on a remote webhook service.
type RegistryClient interface {
	Register(ctx context.Context, event, url string) (models.WebhookResponse, error)
	Unregister(ctx context.Context, event, url string) error
	List(ctx context.Context) (models.RegisteredWebhooksResponse, error)
}
