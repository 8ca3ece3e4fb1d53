package config

import "errors"

// Validation errors returned by validate when required configuration groups
// are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown storage driver or a
	// driver without its connection settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidDeliveryConfigs indicates a non-positive delivery timeout or
	// concurrency.
	ErrInvalidDeliveryConfigs = errors.New("invalid delivery configuration")
	// ErrInvalidRegistryConfigs indicates a seeded event name that is not a
	// lowercase identifier.
	ErrInvalidRegistryConfigs = errors.New("invalid registry configuration")
	// ErrInvalidWorkerConfigs indicates a negative ping interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidSubscriberConfigs indicates a subscriber run without a
	// callback URL or without events.
	ErrInvalidSubscriberConfigs = errors.New("invalid subscriber configuration")
)
