// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-webhooks/internal/validators"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. Subscriber settings are checked
// separately by [Subscriber.Validate] because only the subscriber CLI needs
// them.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverFile:
		if cfg.Storage.File.Path == "" {
			return fmt.Errorf("%w: empty file path", ErrInvalidStorageConfigs)
		}
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
		}
	case DriverRedis:
		if cfg.Storage.Redis.Address == "" || cfg.Storage.Redis.Key == "" {
			return fmt.Errorf("%w: redis address and key are required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Delivery.Timeout <= 0 || cfg.Delivery.Concurrency < 1 {
		return ErrInvalidDeliveryConfigs
	}

	if cfg.Workers.PingInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	events, err := normalizeEvents(cfg.Registry.Events)
	if err != nil {
		return err
	}
	cfg.Registry.Events = events

	return nil
}

// normalizeEvents brings seeded event names to the form the API stores:
// trimmed and lowercased. Blank entries and repeats are dropped, names that
// are not identifiers fail the whole config.
func normalizeEvents(events []string) ([]string, error) {
	if len(events) == 0 {
		return events, nil
	}

	validator := validators.NewWebhookValidator()
	seen := make(map[string]struct{}, len(events))
	normalized := make([]string, 0, len(events))
	for _, raw := range events {
		event := validators.NormalizeEvent(strings.TrimSpace(raw))
		if event == "" {
			continue
		}
		if err := validator.Validate(context.Background(), event); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRegistryConfigs, err)
		}
		if _, ok := seen[event]; ok {
			continue
		}
		seen[event] = struct{}{}
		normalized = append(normalized, event)
	}

	return normalized, nil
}

// Validate checks the settings the subscriber CLI cannot run without.
func (s Subscriber) Validate() error {
	if s.ServerURL == "" || s.CallbackURL == "" || len(s.Events) == 0 {
		return ErrInvalidSubscriberConfigs
	}

	return nil
}
