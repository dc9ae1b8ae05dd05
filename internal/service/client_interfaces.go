package service

import (
	"context"

	"github.com/MKhiriev/go-dict-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// BatchFetcher loads whole dictionaries in one round trip.
type BatchFetcher interface {
	// FetchBatch fetches the given types and replaces their records. Types
	// already being fetched by another caller are awaited instead of being
	// requested again. On failure no record of the attempted types is
	// modified.
	FetchBatch(ctx context.Context, types ...models.DictType) error
}

// IncrementalSynchronizer applies the server's changes since the held sync
// token.
type IncrementalSynchronizer interface {
	// FetchIncremental requests the changes since the held token, applies
	// every per-type diff and only then advances the token. Concurrent calls
	// share one request.
	FetchIncremental(ctx context.Context) error
}

// VersionGuard invalidates a cache written under another schema version.
type VersionGuard interface {
	// Run compares the persisted schema version with the expected one. On a
	// mismatch it wipes the store and the persisted snapshot, records the
	// expected version and reports wiped=true. On a match it restores the
	// store from the snapshot.
	Run(ctx context.Context) (wiped bool, err error)
}
