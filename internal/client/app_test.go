package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-webhooks/internal/adapter"
	"github.com/MKhiriev/go-webhooks/internal/config"
	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/internal/mock"
	"github.com/MKhiriev/go-webhooks/models"
)

const callback = "http://localhost:8081/"

func newTestApp(t *testing.T, events ...string) (*App, *mock.MockRegistryClient) {
	t.Helper()

	registry := mock.NewMockRegistryClient(gomock.NewController(t))
	a, err := NewApp(registry, config.Subscriber{
		ServerURL:   "http://localhost:8080",
		CallbackURL: callback,
		Events:      events,
	}, logger.Nop())
	require.NoError(t, err)

	return a, registry
}

func TestNewApp_InvalidConfig(t *testing.T) {
	a, err := NewApp(nil, config.Subscriber{ServerURL: "http://localhost:8080"}, logger.Nop())

	assert.ErrorIs(t, err, config.ErrInvalidSubscriberConfigs)
	assert.Nil(t, a)
}

func TestRun_SubscribesEveryEvent(t *testing.T) {
	a, registry := newTestApp(t, "order_placed", "shipped")

	gomock.InOrder(
		registry.EXPECT().Register(gomock.Any(), "order_placed", callback).
			Return(models.WebhookResponse{Message: "Webhook registered successfully"}, nil),
		registry.EXPECT().Register(gomock.Any(), "shipped", callback).
			Return(models.WebhookResponse{}, fmt.Errorf("%w: already there", adapter.ErrConflict)),
		registry.EXPECT().List(gomock.Any()).Return(models.RegisteredWebhooksResponse{
			Webhooks: []models.Webhook{
				{Event: "order_placed", URLs: []string{callback}},
				{Event: "shipped", URLs: []string{"http://other/", callback}},
			},
		}, nil),
	)

	assert.NoError(t, a.Run(context.Background()))
}

func TestRun_ContinuesAfterFailure(t *testing.T) {
	a, registry := newTestApp(t, "missing", "shipped")

	registry.EXPECT().Register(gomock.Any(), "missing", callback).
		Return(models.WebhookResponse{}, fmt.Errorf("%w: event does not exist", adapter.ErrNotFound))
	registry.EXPECT().Register(gomock.Any(), "shipped", callback).
		Return(models.WebhookResponse{}, nil)
	registry.EXPECT().List(gomock.Any()).Return(models.RegisteredWebhooksResponse{}, errors.New("connection refused"))

	err := a.Run(context.Background())

	require.ErrorIs(t, err, ErrSubscriptionFailed)
	assert.Contains(t, err.Error(), "missing")
	assert.NotContains(t, err.Error(), "shipped")
}

func TestRun_CancelledContext(t *testing.T) {
	a, _ := newTestApp(t, "order_placed")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, a.Run(ctx), context.Canceled)
}
