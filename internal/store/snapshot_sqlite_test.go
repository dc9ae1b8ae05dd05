package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dict-keeper/internal/config"
	"github.com/MKhiriev/go-dict-keeper/internal/logger"
)

func newTestSQLiteSnapshotStorage(t *testing.T) (*sqliteSnapshotStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := &sqliteSnapshotStorage{
		DB:  &DB{DB: db, logger: logger.Nop()},
		now: func() time.Time { return fixed },
	}
	return s, mock
}

func TestSQLiteSnapshotStorage_LoadNoRows(t *testing.T) {
	s, mock := newTestSQLiteSnapshotStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value")).
		WithArgs(snapshotKey).
		WillReturnError(sql.ErrNoRows)

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSnapshotStorage_LoadValid(t *testing.T) {
	s, mock := newTestSQLiteSnapshotStorage(t)
	data, _, err := encodeSnapshot(sampleSnapshot())
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value")).
		WithArgs(snapshotKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(string(data)))

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "2.0", snap.Meta.SchemaVersion)
}

func TestSQLiteSnapshotStorage_LoadCorrupt(t *testing.T) {
	s, mock := newTestSQLiteSnapshotStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value")).
		WithArgs(snapshotKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("{not json"))

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSQLiteSnapshotStorage_LoadQueryError(t *testing.T) {
	s, mock := newTestSQLiteSnapshotStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value")).
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLiteSnapshotStorage_Save(t *testing.T) {
	s, mock := newTestSQLiteSnapshotStorage(t)
	_, checksum, err := encodeSnapshot(sampleSnapshot())
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO dict_snapshot")).
		WithArgs(snapshotKey, sqlmock.AnyArg(), checksum, s.now()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Save(context.Background(), sampleSnapshot()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSnapshotStorage_SaveError(t *testing.T) {
	s, mock := newTestSQLiteSnapshotStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO dict_snapshot")).
		WillReturnError(errors.New("database is locked"))

	assert.ErrorIs(t, s.Save(context.Background(), sampleSnapshot()), ErrWritingSnapshot)
}

func TestSQLiteSnapshotStorage_Clear(t *testing.T) {
	s, mock := newTestSQLiteSnapshotStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM dict_snapshot")).
		WithArgs(snapshotKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestClientStorages_SQLite exercises the real driver and migrations.
func TestClientStorages_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{
		Driver: config.SnapshotDriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "dict-cache.db"),
	}

	storages, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	snap, err := storages.Snapshots.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)

	require.NoError(t, storages.Snapshots.Save(ctx, sampleSnapshot()))
	updated := sampleSnapshot()
	updated.Meta.SyncToken = "50"
	require.NoError(t, storages.Snapshots.Save(ctx, updated))

	snap, err = storages.Snapshots.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.EqualValues(t, "50", snap.Meta.SyncToken)

	require.NoError(t, storages.Snapshots.Clear(ctx))
	snap, err = storages.Snapshots.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestClientStorages_UnknownDriver(t *testing.T) {
	_, err := NewClientStorages(context.Background(), config.ClientStorage{Driver: "redis", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownSnapshotDriver)
}

func TestClientStorages_File(t *testing.T) {
	storages, err := NewClientStorages(context.Background(), config.ClientStorage{
		Driver: config.SnapshotDriverFile,
		DSN:    filepath.Join(t.TempDir(), "cache.json"),
	}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, storages.Records)
	assert.NotNil(t, storages.Snapshots)
	assert.NoError(t, storages.Close())
}
