package store

import (
	"context"

	"github.com/MKhiriev/go-dict-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// RecordStore is the in-process dictionary cache. Reads never block on I/O
// and never trigger a fetch; every mutation is atomic for concurrent readers.
type RecordStore interface {
	// Get returns a copy of the entries of t ordered by sort order, or an
	// empty slice when t was never loaded.
	Get(t models.DictType) []models.DictEntry
	// Has reports whether a record exists for t, even a stale one.
	Has(t models.DictType) bool
	// Record returns a copy of the whole record of t.
	Record(t models.DictType) (models.CacheRecord, bool)
	// Types lists the loaded types.
	Types() []models.DictType

	// ApplyFull replaces the record of t wholesale.
	ApplyFull(t models.DictType, entries []models.DictEntry) error
	// ApplyDiff merges a delta into the record of t, creating it if absent.
	ApplyDiff(t models.DictType, diff models.TypeDiff) error
	// Clear drops every record and resets the meta.
	Clear()

	Meta() models.CacheMeta
	SetSchemaVersion(version string)
	// AdvanceToken moves the sync token forward; older or equal tokens are
	// ignored.
	AdvanceToken(tok models.SyncToken) bool

	// Snapshot copies the store for persistence.
	Snapshot() models.Snapshot
	// Restore replaces the store with snap and returns the number of
	// records that were skipped.
	Restore(snap models.Snapshot) int
}

// SnapshotStorage persists the cache between client runs.
type SnapshotStorage interface {
	// Load returns the last saved snapshot, or nil when none exists or the
	// stored one is corrupt.
	Load(ctx context.Context) (*models.Snapshot, error)
	// Save writes snap, replacing any previous one.
	Save(ctx context.Context, snap models.Snapshot) error
	// Clear removes the persisted snapshot.
	Clear(ctx context.Context) error
}
