// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-webhooks/internal/config"
	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/internal/utils"
	"github.com/MKhiriev/go-webhooks/models"
)

// httpWebhookSender posts envelopes with a shared resty client. Every
// request is bounded by the delivery timeout.
type httpWebhookSender struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPWebhookSender constructs the HTTP implementation of [WebhookSender].
func NewHTTPWebhookSender(cfg config.Delivery, logger *logger.Logger) WebhookSender {
	return &httpWebhookSender{
		client: utils.NewHTTPClient(cfg.Timeout),
		logger: logger,
	}
}

// Send implements [WebhookSender].
func (h *httpWebhookSender) Send(ctx context.Context, url string, envelope models.Envelope) (models.SendResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(envelope).
		Post(url)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*httpWebhookSender.Send").Str("url", url).Msg("webhook request failed")
		return models.SendResult{}, err
	}

	return models.SendResult{
		StatusCode: resp.StatusCode(),
		Reason:     reasonPhrase(resp),
		Body:       resp.Body(),
	}, nil
}
