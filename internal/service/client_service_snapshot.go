package service

import (
	"context"

	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/internal/store"
)

// persistSnapshot saves the current store contents. The in-memory state is
// already correct at this point, so a failed write is only logged; the next
// successful fetch writes the snapshot again.
func persistSnapshot(ctx context.Context, records store.RecordStore, snapshots store.SnapshotStorage, caller string) {
	if err := snapshots.Save(ctx, records.Snapshot()); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", caller).
			Msg("failed to persist dictionary cache")
	}
}
