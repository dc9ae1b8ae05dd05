// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/models"
)

// sqliteSnapshotStorage keeps the snapshot document in the dict_snapshot
// table of the client's SQLite database.
type sqliteSnapshotStorage struct {
	*DB
	now func() time.Time
}

// NewSQLiteSnapshotStorage returns a [SnapshotStorage] backed by db. The
// dict_snapshot table must exist, see [DB.Migrate].
func NewSQLiteSnapshotStorage(db *DB) SnapshotStorage {
	return &sqliteSnapshotStorage{DB: db, now: time.Now}
}

func (s *sqliteSnapshotStorage) Load(ctx context.Context) (*models.Snapshot, error) {
	log := logger.FromContext(ctx)

	var value string
	err := s.DB.QueryRowContext(ctx, getSnapshot, snapshotKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteSnapshotStorage.Load").Msg("failed to read snapshot")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	snap, err := decodeSnapshot([]byte(value))
	if err != nil {
		log.Warn().Err(err).Str("func", "sqliteSnapshotStorage.Load").Msg("ignoring persisted snapshot")
		return nil, nil
	}

	return snap, nil
}

func (s *sqliteSnapshotStorage) Save(ctx context.Context, snap models.Snapshot) error {
	log := logger.FromContext(ctx)

	data, checksum, err := encodeSnapshot(snap)
	if err != nil {
		log.Err(err).Str("func", "sqliteSnapshotStorage.Save").Msg("failed to encode snapshot")
		return err
	}

	if _, err = s.DB.ExecContext(ctx, saveSnapshot, snapshotKey, string(data), checksum, s.now().UTC()); err != nil {
		log.Err(err).Str("func", "sqliteSnapshotStorage.Save").Msg("failed to write snapshot")
		return fmt.Errorf("%w: %w", ErrWritingSnapshot, err)
	}

	log.Debug().
		Str("func", "sqliteSnapshotStorage.Save").
		Int("types", len(snap.Records)).
		Str("sync_token", string(snap.Meta.SyncToken)).
		Msg("snapshot saved")
	return nil
}

func (s *sqliteSnapshotStorage) Clear(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, deleteSnapshot, snapshotKey); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqliteSnapshotStorage.Clear").Msg("failed to delete snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
