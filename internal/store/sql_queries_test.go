// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/migrations"
	"github.com/MKhiriev/go-webhooks/models"
)

func Test_selectQueries(t *testing.T) {
	db := newDB(nil, migrations.DialectPostgres, logger.Nop())

	query, args, err := db.selectEventsQuery()
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t, "SELECT name FROM events ORDER BY name", query)

	query, args, err = db.selectWebhooksQuery()
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t, "SELECT event_type, url FROM webhooks ORDER BY event_type, id", query)
}

func Test_insertWebhooksQueries_Placeholders(t *testing.T) {
	registry := models.Registry{"b": {"http://3"}, "a": {"http://1", "http://2"}, "empty": {}}

	tests := []struct {
		dialect     string
		placeholder string
	}{
		{dialect: migrations.DialectPostgres, placeholder: "$6"},
		{dialect: migrations.DialectSQLite, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			db := newDB(nil, tt.dialect, logger.Nop())

			statements, err := db.insertWebhooksQueries(registry)
			require.NoError(t, err)
			require.Len(t, statements, 1)

			q := strings.ToLower(statements[0].query)
			assert.Contains(t, q, "insert into webhooks")
			assert.Contains(t, q, "event_type")
			assert.Contains(t, statements[0].query, tt.placeholder)

			// events ascending, urls in list order
			assert.Equal(t, []any{"a", "http://1", "a", "http://2", "b", "http://3"}, statements[0].args)
		})
	}
}

func Test_insertEventsQueries(t *testing.T) {
	db := newDB(nil, migrations.DialectPostgres, logger.Nop())

	statements, err := db.insertEventsQueries(models.Registry{"z": {}, "a": {"http://1"}})
	require.NoError(t, err)
	require.Len(t, statements, 1)
	assert.Contains(t, strings.ToLower(statements[0].query), "insert into events")
	assert.Equal(t, []any{"a", "z"}, statements[0].args)
}

func Test_insertQueries_EmptyRegistry(t *testing.T) {
	db := newDB(nil, migrations.DialectSQLite, logger.Nop())

	statements, err := db.insertEventsQueries(models.Registry{})
	require.NoError(t, err)
	assert.Empty(t, statements)

	statements, err = db.insertWebhooksQueries(models.Registry{"a": {}})
	require.NoError(t, err)
	assert.Empty(t, statements)
}

func Test_insertWebhooksQueries_Batches(t *testing.T) {
	db := newDB(nil, migrations.DialectPostgres, logger.Nop())

	urls := make([]string, insertBatchSize*2+1)
	for i := range urls {
		urls[i] = fmt.Sprintf("http://host/%d", i)
	}

	statements, err := db.insertWebhooksQueries(models.Registry{"e": urls})
	require.NoError(t, err)
	require.Len(t, statements, 3)

	assert.Len(t, statements[0].args, insertBatchSize*2)
	assert.Len(t, statements[1].args, insertBatchSize*2)
	assert.Equal(t, []any{"e", urls[len(urls)-1]}, statements[2].args)

	// every batch numbers its placeholders from $1
	for _, stmt := range statements {
		assert.Contains(t, stmt.query, "($1,$2)")
	}
}
