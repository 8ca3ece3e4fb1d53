package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-webhooks/internal/adapter"
	"github.com/MKhiriev/go-webhooks/internal/app"
	"github.com/MKhiriev/go-webhooks/internal/config"
	"github.com/MKhiriev/go-webhooks/internal/logger"
)

// ErrSubscriptionFailed is returned by Run when at least one event could not
// be subscribed to.
var ErrSubscriptionFailed = errors.New("subscription failed")

type App struct {
	registry    adapter.RegistryClient
	callbackURL string
	events      []string

	logger *logger.Logger
}

func NewApp(registry adapter.RegistryClient, cfg config.Subscriber, logger *logger.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &App{
		registry:    registry,
		callbackURL: cfg.CallbackURL,
		events:      cfg.Events,
		logger:      logger,
	}, nil
}

// Run registers the callback URL for every configured event. A URL that is
// already registered counts as subscribed. One failing event does not stop
// the others.
func (a *App) Run(ctx context.Context) error {
	var failed []string

	for _, event := range a.events {
		if err := ctx.Err(); err != nil {
			return err
		}

		log := a.logger.ForWebhook(event, a.callbackURL)

		response, err := a.registry.Register(ctx, event, a.callbackURL)
		switch {
		case err == nil:
			log.Info().Str("message", response.Message).Msg("subscribed")
		case errors.Is(err, adapter.ErrConflict):
			log.Info().Msg(app.MsgAlreadySubscribed)
		default:
			log.Err(err).Msg("failed to subscribe")
			failed = append(failed, event)
		}
	}

	a.logSubscriptions(ctx)

	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", ErrSubscriptionFailed, strings.Join(failed, ", "))
	}

	return nil
}

// logSubscriptions prints the events the callback URL ends up registered
// for. Listing is informational, so its errors are only logged.
func (a *App) logSubscriptions(ctx context.Context) {
	response, err := a.registry.List(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("could not list registered webhooks")
		return
	}

	var subscribed []string
	for _, webhook := range response.Webhooks {
		for _, url := range webhook.URLs {
			if url == a.callbackURL {
				subscribed = append(subscribed, webhook.Event)
				break
			}
		}
	}

	a.logger.Info().Str("url", a.callbackURL).Strs("events", subscribed).Msg("current subscriptions")
}
