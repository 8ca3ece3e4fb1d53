// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/models"
)

// registryRepository implements [RegistryRepository] on top of any
// [RegistryStorage].
//
// All operations hold mu for their whole read-modify-write cycle, so two
// concurrent registrations can never lose each other's update. A failed Save
// leaves nothing behind in memory: every operation starts from a fresh Load.
type registryRepository struct {
	storage RegistryStorage
	mu      sync.Mutex
	logger  *logger.Logger
}

// NewRegistryRepository constructs a [RegistryRepository] persisting through
// storage.
func NewRegistryRepository(storage RegistryStorage, logger *logger.Logger) RegistryRepository {
	logger.Debug().Msg("creating registry repository")
	return &registryRepository{
		storage: storage,
		logger:  logger,
	}
}

// ReadAll returns the whole persisted registry.
func (r *registryRepository) ReadAll(ctx context.Context) (models.Registry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

// ReadEvent returns the registry restricted to event.
func (r *registryRepository) ReadEvent(ctx context.Context, event string) (models.Registry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	registry, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	if !registry.Has(event) {
		return nil, eventNotFound(event)
	}
	if len(registry[event]) == 0 {
		return nil, eventHasNoURLs(event)
	}

	return registry.Only(event), nil
}

// AddURL appends url to the list of event and persists the registry.
func (r *registryRepository) AddURL(ctx context.Context, event, url string) error {
	return r.update(ctx, func(registry models.Registry) error {
		if !registry.Has(event) {
			return eventNotFound(event)
		}
		if registry.HasURL(event, url) {
			return urlAlreadyExists(url, event)
		}

		registry[event] = append(registry[event], url)
		return nil
	})
}

// RemoveURL deletes url from the list of event, keeping the order of the
// remaining URLs, and persists the registry.
func (r *registryRepository) RemoveURL(ctx context.Context, event, url string) error {
	return r.update(ctx, func(registry models.Registry) error {
		if !registry.Has(event) {
			return eventNotFound(event)
		}

		idx := slices.Index(registry[event], url)
		if idx < 0 {
			return urlNotFound(url, event)
		}

		registry[event] = slices.Delete(registry[event], idx, idx+1)
		return nil
	})
}

// CreateEvent adds event with no URLs.
func (r *registryRepository) CreateEvent(ctx context.Context, event string) error {
	return r.update(ctx, func(registry models.Registry) error {
		if registry.Has(event) {
			return eventAlreadyExists(event)
		}

		registry[event] = []string{}
		return nil
	})
}

// DeleteEvent removes event together with all of its URLs.
func (r *registryRepository) DeleteEvent(ctx context.Context, event string) error {
	return r.update(ctx, func(registry models.Registry) error {
		if !registry.Has(event) {
			return eventNotFound(event)
		}

		delete(registry, event)
		return nil
	})
}

// EnsureEvents creates every missing event and leaves existing ones alone.
// Nothing is written when all events already exist.
func (r *registryRepository) EnsureEvents(ctx context.Context, events ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	registry, err := r.load(ctx)
	if err != nil {
		return err
	}

	created := 0
	for _, event := range events {
		if !registry.Has(event) {
			registry[event] = []string{}
			created++
		}
	}

	if created == 0 {
		return nil
	}

	logger.FromContext(ctx).Info().Int("created", created).Strs("events", events).Msg("seeding registry events")
	return r.save(ctx, registry)
}

// update runs mutate against a freshly loaded registry under the writer lock
// and persists the result when mutate succeeds.
func (r *registryRepository) update(ctx context.Context, mutate func(models.Registry) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	registry, err := r.load(ctx)
	if err != nil {
		return err
	}

	if err = mutate(registry); err != nil {
		return err
	}

	return r.save(ctx, registry)
}

func (r *registryRepository) load(ctx context.Context) (models.Registry, error) {
	registry, err := r.storage.Load(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*registryRepository.load").Msg("error loading registry")
		if !errors.Is(err, ErrStorageUnavailable) {
			return nil, storageUnavailable("load registry", err)
		}
		return nil, err
	}

	if registry == nil {
		registry = models.Registry{}
	}

	return registry, nil
}

func (r *registryRepository) save(ctx context.Context, registry models.Registry) error {
	if err := r.storage.Save(ctx, registry); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*registryRepository.save").Msg("error saving registry")
		if !errors.Is(err, ErrStorageUnavailable) {
			return storageUnavailable("save registry", err)
		}
		return err
	}

	return nil
}
