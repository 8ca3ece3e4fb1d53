package store

import (
	"context"

	"github.com/MKhiriev/go-webhooks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RegistryStorage is a persistence backend for the whole registry. Save
// replaces everything previously stored; there are no partial writes.
type RegistryStorage interface {
	Load(ctx context.Context) (models.Registry, error)
	Save(ctx context.Context, registry models.Registry) error
}

// RegistryRepository exposes the registry operations with their existence
// and duplication checks. Every mutation is a read-modify-write of the full
// registry.
type RegistryRepository interface {
	ReadAll(ctx context.Context) (models.Registry, error)
	ReadEvent(ctx context.Context, event string) (models.Registry, error)
	AddURL(ctx context.Context, event, url string) error
	RemoveURL(ctx context.Context, event, url string) error

	CreateEvent(ctx context.Context, event string) error
	DeleteEvent(ctx context.Context, event string) error
	EnsureEvents(ctx context.Context, events ...string) error
}
