package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-webhooks/internal/config"
	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/migrations"
	"github.com/MKhiriev/go-webhooks/models"
)

func newMockSQLStorage(t *testing.T) (RegistryStorage, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := newDB(conn, migrations.DialectPostgres, logger.Nop())
	return NewSQLRegistryStorage(db, logger.Nop()), mock
}

func TestSQLRegistryStorage_Load(t *testing.T) {
	storage, mock := newMockSQLStorage(t)

	mock.ExpectQuery(`SELECT name FROM events`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("order_placed").AddRow("shipped"))
	mock.ExpectQuery(`SELECT event_type, url FROM webhooks`).
		WillReturnRows(sqlmock.NewRows([]string{"event_type", "url"}).
			AddRow("order_placed", "http://a/x").
			AddRow("order_placed", "http://b/y").
			AddRow("legacy", "http://c/z"))

	got, err := storage.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Registry{
		"order_placed": {"http://a/x", "http://b/y"},
		"shipped":      {},
		"legacy":       {"http://c/z"},
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRegistryStorage_Load_MissingSchema(t *testing.T) {
	storage, mock := newMockSQLStorage(t)

	mock.ExpectQuery(`SELECT name FROM events`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable, Message: `relation "events" does not exist`})

	_, err := storage.Load(context.Background())
	require.ErrorIs(t, err, ErrStorageUnavailable)
	require.ErrorIs(t, err, ErrExecutingQuery)
	assert.Contains(t, err.Error(), "registry schema is missing")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRegistryStorage_Save(t *testing.T) {
	storage, mock := newMockSQLStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM webhooks`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM events`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO events`).
		WithArgs("order_placed", "shipped").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO webhooks`).
		WithArgs("order_placed", "http://a/x").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := storage.Save(context.Background(), models.Registry{
		"order_placed": {"http://a/x"},
		"shipped":      {},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRegistryStorage_Save_EmptyRegistry(t *testing.T) {
	storage, mock := newMockSQLStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM webhooks`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM events`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, storage.Save(context.Background(), models.Registry{}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRegistryStorage_Save_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "begin fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("conn refused"))
			},
			wantErr: ErrBeginningTransaction,
		},
		{
			name: "insert fails and rolls back",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM webhooks`).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`DELETE FROM events`).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`INSERT INTO events`).WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "commit fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM webhooks`).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`DELETE FROM events`).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`INSERT INTO events`).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit().WillReturnError(errors.New("serialization"))
			},
			wantErr: ErrCommitingTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, mock := newMockSQLStorage(t)
			tt.setup(mock)

			err := storage.Save(context.Background(), models.Registry{"a": {}})
			require.ErrorIs(t, err, ErrStorageUnavailable)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantErr.Error())
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLRegistryStorage_SQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "webhooks.db")

	db, err := NewConnectSQLite(ctx, config.DB{DSN: path}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	repo := NewRegistryRepository(NewSQLRegistryStorage(db, logger.Nop()), logger.Nop())

	require.NoError(t, repo.EnsureEvents(ctx, "order_placed", "shipped"))
	require.NoError(t, repo.AddURL(ctx, "order_placed", "http://c"))
	require.NoError(t, repo.AddURL(ctx, "order_placed", "http://a"))
	require.NoError(t, repo.AddURL(ctx, "order_placed", "http://b"))
	require.NoError(t, repo.RemoveURL(ctx, "order_placed", "http://a"))

	require.ErrorIs(t, repo.AddURL(ctx, "order_placed", "http://c"), ErrURLAlreadyExists)
	require.ErrorIs(t, repo.AddURL(ctx, "refunded", "http://c"), ErrEventNotFound)

	_, err = repo.ReadEvent(ctx, "shipped")
	require.ErrorIs(t, err, ErrEventHasNoURLs)

	all, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Registry{
		"order_placed": {"http://c", "http://b"},
		"shipped":      {},
	}, all)
}

func TestSQLRegistryStorage_SQLite_LargeRegistry(t *testing.T) {
	ctx := context.Background()

	db, err := NewConnectSQLite(ctx, config.DB{DSN: filepath.Join(t.TempDir(), "webhooks.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	urls := make([]string, 20000)
	for i := range urls {
		urls[i] = fmt.Sprintf("http://host/%d", i)
	}

	storage := NewSQLRegistryStorage(db, logger.Nop())
	require.NoError(t, storage.Save(ctx, models.Registry{"order_placed": urls, "shipped": {}}))

	loaded, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, urls, loaded["order_placed"])
	assert.Empty(t, loaded["shipped"])
}

func Test_describeSQLError(t *testing.T) {
	assert.Equal(t, "load: registry schema is missing, run migrations",
		describeSQLError("load", &pgconn.PgError{Code: pgerrcode.UndefinedTable}))
	assert.Equal(t, "load: database connection lost",
		describeSQLError("load", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}))
	assert.Equal(t, "load", describeSQLError("load", errors.New("plain")))
}
