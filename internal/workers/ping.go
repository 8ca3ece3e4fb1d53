// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/internal/service"
)

// PingWorker pings every registered webhook on a fixed interval.
type PingWorker struct {
	webhooks service.WebhookService
	interval time.Duration

	logger *logger.Logger
}

func NewPingWorker(webhooks service.WebhookService, interval time.Duration, logger *logger.Logger) *PingWorker {
	return &PingWorker{
		webhooks: webhooks,
		interval: interval,
		logger:   logger,
	}
}

// Run pings on every tick until ctx is cancelled. The first ping happens one
// interval after start.
func (p *PingWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info().Dur("interval", p.interval).Msg("ping worker started")
	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("ping worker stopped")
			return
		case <-ticker.C:
			p.ping(ctx)
		}
	}
}

func (p *PingWorker) ping(ctx context.Context) {
	log := p.logger.GetChildLogger()
	ctx = log.WithContext(ctx)

	response, err := p.webhooks.Ping(ctx)
	if err != nil {
		log.Err(err).Str("func", "*PingWorker.ping").Msg("scheduled ping failed")
		return
	}

	log.Info().
		Int("successful", response.SuccessfulWebhooksCount).
		Int("failed", response.FailedWebhooksCount).
		Msg("scheduled ping completed")
}
