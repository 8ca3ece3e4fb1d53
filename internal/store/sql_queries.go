package store

import (
	"fmt"

	"github.com/MKhiriev/go-webhooks/models"
)

const (
	eventsTable   = "events"
	webhooksTable = "webhooks"
)

func (db *DB) selectEventsQuery() (string, []any, error) {
	return db.builder.
		Select("name").
		From(eventsTable).
		OrderBy("name").
		ToSql()
}

func (db *DB) selectWebhooksQuery() (string, []any, error) {
	return db.builder.
		Select("event_type", "url").
		From(webhooksTable).
		OrderBy("event_type", "id").
		ToSql()
}

func (db *DB) deleteAllQuery(table string) (string, []any, error) {
	return db.builder.Delete(table).ToSql()
}

// insertBatchSize bounds the rows of one multi-row INSERT so the bound
// parameters stay under the SQLite and Postgres limits.
const insertBatchSize = 400

// sqlStatement is a built query with its arguments.
type sqlStatement struct {
	query string
	args  []any
}

// insertEventsQueries inserts every event key in ascending order, split into
// batches of at most insertBatchSize rows. An empty registry yields none.
func (db *DB) insertEventsQueries(registry models.Registry) ([]sqlStatement, error) {
	rows := make([][]any, 0, len(registry))
	for _, event := range registry.Events() {
		rows = append(rows, []any{event})
	}

	return db.batchInsertQueries(eventsTable, []string{"name"}, rows)
}

// insertWebhooksQueries inserts all (event, url) pairs, events in ascending
// order and URLs in list order, so ids follow the registry order.
func (db *DB) insertWebhooksQueries(registry models.Registry) ([]sqlStatement, error) {
	rows := make([][]any, 0, registry.Len())
	for _, event := range registry.Events() {
		for _, url := range registry[event] {
			rows = append(rows, []any{event, url})
		}
	}

	return db.batchInsertQueries(webhooksTable, []string{"event_type", "url"}, rows)
}

func (db *DB) batchInsertQueries(table string, columns []string, rows [][]any) ([]sqlStatement, error) {
	statements := make([]sqlStatement, 0, (len(rows)+insertBatchSize-1)/insertBatchSize)

	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))

		insert := db.builder.Insert(table).Columns(columns...)
		for _, row := range rows[start:end] {
			insert = insert.Values(row...)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		statements = append(statements, sqlStatement{query: query, args: args})
	}

	return statements, nil
}
