package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/models"
)

// sqlRegistryStorage persists the registry in two tables: "events" holds one
// row per event key (so an event may exist with no URLs) and "webhooks"
// holds one (event_type, url) row per registration.
type sqlRegistryStorage struct {
	*DB
	logger *logger.Logger
}

// NewSQLRegistryStorage constructs a [RegistryStorage] backed by db. The
// schema must already be migrated, see [DB.Migrate].
func NewSQLRegistryStorage(db *DB, logger *logger.Logger) RegistryStorage {
	return &sqlRegistryStorage{
		DB:     db,
		logger: logger,
	}
}

// Load reads both tables. URLs keep their insertion order (by id).
func (s *sqlRegistryStorage) Load(ctx context.Context) (models.Registry, error) {
	registry := models.Registry{}

	if err := s.loadEvents(ctx, registry); err != nil {
		return nil, err
	}
	if err := s.loadWebhooks(ctx, registry); err != nil {
		return nil, err
	}

	return registry, nil
}

func (s *sqlRegistryStorage) loadEvents(ctx context.Context, registry models.Registry) error {
	log := logger.FromContext(ctx)

	query, args, err := s.selectEventsQuery()
	if err != nil {
		return storageUnavailable("load events", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlRegistryStorage.loadEvents").Msg("error selecting events")
		return storageUnavailable(describeSQLError("load events", err), fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if scanErr := rows.Scan(&name); scanErr != nil {
			log.Err(scanErr).Str("func", "*sqlRegistryStorage.loadEvents").Msg("error scanning event row")
			return storageUnavailable("load events", fmt.Errorf("%w: %w", ErrScanningRows, scanErr))
		}
		registry[name] = []string{}
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return storageUnavailable("load events", fmt.Errorf("%w: %w", ErrScanningRows, rowsErr))
	}

	return nil
}

func (s *sqlRegistryStorage) loadWebhooks(ctx context.Context, registry models.Registry) error {
	log := logger.FromContext(ctx)

	query, args, err := s.selectWebhooksQuery()
	if err != nil {
		return storageUnavailable("load webhooks", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlRegistryStorage.loadWebhooks").Msg("error selecting webhooks")
		return storageUnavailable(describeSQLError("load webhooks", err), fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	for rows.Next() {
		var event, url string
		if scanErr := rows.Scan(&event, &url); scanErr != nil {
			log.Err(scanErr).Str("func", "*sqlRegistryStorage.loadWebhooks").Msg("error scanning webhook row")
			return storageUnavailable("load webhooks", fmt.Errorf("%w: %w", ErrScanningRows, scanErr))
		}
		// a webhook row without an events row still makes the event exist
		registry[event] = append(registry[event], url)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return storageUnavailable("load webhooks", fmt.Errorf("%w: %w", ErrScanningRows, rowsErr))
	}

	return nil
}

// Save replaces the contents of both tables inside one transaction.
func (s *sqlRegistryStorage) Save(ctx context.Context, registry models.Registry) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sqlRegistryStorage.Save").Msg("error beginning transaction")
		return storageUnavailable(describeSQLError("save registry", err), fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}
	defer tx.Rollback()

	for _, table := range []string{webhooksTable, eventsTable} {
		query, args, buildErr := s.deleteAllQuery(table)
		if buildErr != nil {
			return storageUnavailable("save registry", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr))
		}
		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).Str("func", "*sqlRegistryStorage.Save").Str("table", table).Msg("error clearing table")
			return storageUnavailable(describeSQLError("clear "+table, execErr), fmt.Errorf("%w: %w", ErrExecutingStatement, execErr))
		}
	}

	events, err := s.insertEventsQueries(registry)
	if err != nil {
		return storageUnavailable("save registry", err)
	}
	for _, stmt := range events {
		if _, execErr := tx.ExecContext(ctx, stmt.query, stmt.args...); execErr != nil {
			log.Err(execErr).Str("func", "*sqlRegistryStorage.Save").Msg("error inserting events")
			return storageUnavailable(describeSQLError("insert events", execErr), fmt.Errorf("%w: %w", ErrExecutingStatement, execErr))
		}
	}

	webhooks, err := s.insertWebhooksQueries(registry)
	if err != nil {
		return storageUnavailable("save registry", err)
	}
	for _, stmt := range webhooks {
		if _, execErr := tx.ExecContext(ctx, stmt.query, stmt.args...); execErr != nil {
			log.Err(execErr).Str("func", "*sqlRegistryStorage.Save").Msg("error inserting webhooks")
			return storageUnavailable(describeSQLError("insert webhooks", execErr), fmt.Errorf("%w: %w", ErrExecutingStatement, execErr))
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*sqlRegistryStorage.Save").Msg("error committing transaction")
		return storageUnavailable("save registry", fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr))
	}

	log.Debug().Str("func", "*sqlRegistryStorage.Save").Int("events", len(registry)).Int("webhooks", registry.Len()).Msg("registry saved")
	return nil
}
