package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/internal/store"
)

type versionGuard struct {
	records   store.RecordStore
	snapshots store.SnapshotStorage

	expected string
}

// NewVersionGuard constructs a [VersionGuard] expecting schemaVersion.
func NewVersionGuard(records store.RecordStore, snapshots store.SnapshotStorage, schemaVersion string) VersionGuard {
	return &versionGuard{
		records:   records,
		snapshots: snapshots,
		expected:  schemaVersion,
	}
}

// Run implements [VersionGuard]. A snapshot that cannot be loaded counts as
// no snapshot, which is a mismatch. After a wipe the expected version is
// saved right away so that a crash before the first sync does not wipe
// again on the next start.
func (g *versionGuard) Run(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	snap, err := g.snapshots.Load(ctx)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "versionGuard.Run").
			Msg("failed to load persisted cache, treating as absent")
		snap = nil
	}

	if snap != nil && snap.Meta.SchemaVersion == g.expected {
		skipped := g.records.Restore(*snap)
		log.Info().
			Str("func", "versionGuard.Run").
			Str("schema_version", g.expected).
			Int("types", len(snap.Records)-skipped).
			Int("skipped", skipped).
			Msg("dictionary cache restored")
		return false, nil
	}

	persisted := ""
	if snap != nil {
		persisted = snap.Meta.SchemaVersion
	}
	log.Info().
		Str("func", "versionGuard.Run").
		Str("persisted_version", persisted).
		Str("schema_version", g.expected).
		Msg("schema version changed, wiping dictionary cache")

	g.records.Clear()
	if err = g.snapshots.Clear(ctx); err != nil {
		return true, fmt.Errorf("clear persisted cache: %w", err)
	}

	g.records.SetSchemaVersion(g.expected)
	if err = g.snapshots.Save(ctx, g.records.Snapshot()); err != nil {
		return true, fmt.Errorf("persist schema version %q: %w", g.expected, err)
	}

	return true, nil
}
