package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-webhooks/internal/config"
	"github.com/MKhiriev/go-webhooks/internal/logger"
)

// Storages bundles the registry repository with whatever connection backs it.
type Storages struct {
	RegistryRepository RegistryRepository

	closers []func() error
}

// NewStorages opens the backend selected by cfg.Driver, prepares it (creates
// the file or key, applies migrations) and wraps it into a
// [RegistryRepository].
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{}

	var storage RegistryStorage
	switch cfg.Driver {
	case config.DriverFile:
		if err := InitRegistryFile(cfg.File.Path); err != nil {
			return nil, err
		}
		storage = NewFileRegistryStorage(cfg.File.Path)
		log.Info().Str("path", cfg.File.Path).Msg("using file registry storage")
	case config.DriverSQLite, config.DriverPostgres:
		var (
			db  *DB
			err error
		)
		if cfg.Driver == config.DriverSQLite {
			db, err = NewConnectSQLite(ctx, cfg.DB, log)
		} else {
			db, err = NewConnectPostgres(ctx, cfg.DB, log)
		}
		if err != nil {
			return nil, err
		}
		storages.closers = append(storages.closers, db.Close)

		if err = db.Migrate(); err != nil {
			log.Err(err).Msg("error applying migrations")
			storages.Close()
			return nil, err
		}
		storage = NewSQLRegistryStorage(db, log)
		log.Info().Str("driver", cfg.Driver).Msg("using sql registry storage")
	case config.DriverRedis:
		client, err := NewConnectRedis(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		storages.closers = append(storages.closers, client.Close)

		if err = InitRegistryKey(ctx, client, cfg.Redis.Key); err != nil {
			storages.Close()
			return nil, err
		}
		storage = NewRedisRegistryStorage(client, cfg.Redis.Key, log)
		log.Info().Str("key", cfg.Redis.Key).Msg("using redis registry storage")
	default:
		return nil, fmt.Errorf("%w: unknown driver %q", config.ErrInvalidStorageConfigs, cfg.Driver)
	}

	storages.RegistryRepository = NewRegistryRepository(storage, log)
	return storages, nil
}

// Close releases every connection opened by [NewStorages].
func (s *Storages) Close() error {
	var errs []error
	for _, closeFn := range s.closers {
		errs = append(errs, closeFn())
	}
	s.closers = nil

	return errors.Join(errs...)
}
