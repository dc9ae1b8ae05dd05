package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dict-keeper/internal/config"
	"github.com/MKhiriev/go-dict-keeper/internal/logger"
)

// ClientStorages groups the client-side storage: the in-memory record store
// consumers read from and the snapshot storage it is persisted to.
type ClientStorages struct {
	// Records is the in-memory dictionary cache.
	Records RecordStore

	// Snapshots persists Records between runs.
	Snapshots SnapshotStorage

	db *DB
}

// NewClientStorages initialises the client storage layer. For the "sqlite"
// driver it opens the database at cfg.DSN and runs the sqlite migrations;
// for "file" it writes the snapshot to the JSON file at cfg.DSN.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	storages := &ClientStorages{Records: NewRecordStore()}

	switch cfg.Driver {
	case config.SnapshotDriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		storages.db = db
		storages.Snapshots = NewSQLiteSnapshotStorage(db)
	case config.SnapshotDriverFile:
		storages.Snapshots = NewFileSnapshotStorage(cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSnapshotDriver, cfg.Driver)
	}

	return storages, nil
}

// Close releases the snapshot database, if any.
func (c *ClientStorages) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
