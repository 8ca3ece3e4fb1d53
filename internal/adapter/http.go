package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-webhooks/internal/config"
	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/internal/utils"
	"github.com/MKhiriev/go-webhooks/models"
)

type httpRegistryClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPRegistryClient constructs an HTTP/REST implementation of
// [RegistryClient] for the service at cfg.ServerURL.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPRegistryClient(cfg config.Subscriber, logger *logger.Logger) (RegistryClient, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpRegistryClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [RegistryClient]. It POSTs {event,url} to /webhook.
func (h *httpRegistryClient) Register(ctx context.Context, event, webhookURL string) (models.WebhookResponse, error) {
	var result models.WebhookResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.WebhookRequest{Event: event, URL: webhookURL}).
		SetResult(&result).
		Post("/webhook")
	if err != nil {
		return models.WebhookResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WebhookResponse{}, err
	}

	return result, nil
}

// Unregister implements [RegistryClient]. It sends DELETE /webhook with
// {event,url} as the body.
func (h *httpRegistryClient) Unregister(ctx context.Context, event, webhookURL string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.WebhookRequest{Event: event, URL: webhookURL}).
		Delete("/webhook")
	if err != nil {
		return fmt.Errorf("unregister request: %w", err)
	}

	return mapHTTPError(resp)
}

// List implements [RegistryClient]. It returns every registered webhook.
func (h *httpRegistryClient) List(ctx context.Context) (models.RegisteredWebhooksResponse, error) {
	var result models.RegisteredWebhooksResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/webhooks")
	if err != nil {
		return models.RegisteredWebhooksResponse{}, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisteredWebhooksResponse{}, err
	}

	return result, nil
}
