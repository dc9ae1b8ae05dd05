// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-dict-keeper/models"
)

// recordStore is the in-memory implementation of [RecordStore].
//
// Every mutation takes the write lock for its whole duration, so readers
// either see a record before or after a call, never in between.
type recordStore struct {
	mu      sync.RWMutex
	records map[models.DictType]*models.CacheRecord
	meta    models.CacheMeta
	now     func() time.Time
}

// NewRecordStore returns an empty [RecordStore].
func NewRecordStore() RecordStore {
	return newRecordStore(time.Now)
}

func newRecordStore(now func() time.Time) *recordStore {
	return &recordStore{
		records: make(map[models.DictType]*models.CacheRecord),
		now:     now,
	}
}

// Get returns a copy of the entries cached for t, or an empty slice when t
// was never loaded.
func (s *recordStore) Get(t models.DictType) []models.DictEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[t]
	if !ok {
		return []models.DictEntry{}
	}
	return models.CloneEntries(rec.Entries)
}

func (s *recordStore) Has(t models.DictType) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.records[t]
	return ok
}

// Record returns a copy of the cache record for t.
func (s *recordStore) Record(t models.DictType) (models.CacheRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[t]
	if !ok {
		return models.CacheRecord{}, false
	}
	return models.CacheRecord{
		Type:         rec.Type,
		Entries:      models.CloneEntries(rec.Entries),
		LastSyncedAt: rec.LastSyncedAt,
	}, true
}

// Types returns the loaded dictionary types in lexical order.
func (s *recordStore) Types() []models.DictType {
	s.mu.RLock()
	defer s.mu.RUnlock()

	types := slices.Collect(maps.Keys(s.records))
	slices.Sort(types)
	return types
}

// ApplyFull replaces the record for t wholesale. Entries sharing a code
// collapse to the last one.
func (s *recordStore) ApplyFull(t models.DictType, entries []models.DictEntry) error {
	if t == "" {
		return ErrEmptyDictType
	}
	for i, e := range entries {
		if e.Code == "" {
			return fmt.Errorf("%w: type %q entry #%d", ErrEmptyEntryCode, t, i)
		}
	}

	byCode := make(map[string]models.DictEntry, len(entries))
	for _, e := range entries {
		byCode[e.Code] = e.Clone()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.put(t, byCode)
	return nil
}

// ApplyDiff merges diff into the record for t, creating it if absent.
// Added and updated entries are upserts; removing an absent code is a no-op,
// so applying the same diff twice leaves the same entries as applying it once.
func (s *recordStore) ApplyDiff(t models.DictType, diff models.TypeDiff) error {
	if err := validateDiff(t, diff); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	byCode := make(map[string]models.DictEntry)
	if rec, ok := s.records[t]; ok {
		for _, e := range rec.Entries {
			byCode[e.Code] = e
		}
	}

	for _, e := range diff.Added {
		byCode[e.Code] = e.Clone()
	}
	for _, e := range diff.Updated {
		byCode[e.Code] = e.Clone()
	}
	for _, code := range diff.RemovedCodes {
		delete(byCode, code)
	}

	s.put(t, byCode)
	return nil
}

// put stores byCode as the sorted record for t. Callers hold the write lock.
func (s *recordStore) put(t models.DictType, byCode map[string]models.DictEntry) {
	entries := slices.Collect(maps.Values(byCode))
	if entries == nil {
		entries = []models.DictEntry{}
	}
	models.SortEntries(entries)

	syncedAt := s.now()
	if prev, ok := s.records[t]; ok && prev.LastSyncedAt.After(syncedAt) {
		syncedAt = prev.LastSyncedAt
	}

	s.records[t] = &models.CacheRecord{
		Type:         t,
		Entries:      entries,
		LastSyncedAt: syncedAt,
	}
}

func validateDiff(t models.DictType, diff models.TypeDiff) error {
	if t == "" {
		return ErrEmptyDictType
	}
	for _, e := range slices.Concat(diff.Added, diff.Updated) {
		if e.Code == "" {
			return fmt.Errorf("%w: type %q", ErrEmptyEntryCode, t)
		}
	}
	for _, code := range diff.RemovedCodes {
		if code == "" {
			return fmt.Errorf("%w: type %q removed codes", ErrEmptyEntryCode, t)
		}
	}
	return nil
}

// Clear drops every record and resets the meta to its zero value.
func (s *recordStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[models.DictType]*models.CacheRecord)
	s.meta = models.CacheMeta{}
}

func (s *recordStore) Meta() models.CacheMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.meta
}

func (s *recordStore) SetSchemaVersion(version string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.meta.SchemaVersion = version
}

// AdvanceToken stores tok only if it is strictly newer than the held token
// and reports whether it did.
func (s *recordStore) AdvanceToken(tok models.SyncToken) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !tok.After(s.meta.SyncToken) {
		return false
	}
	s.meta.SyncToken = tok
	return true
}

// Snapshot deep-copies the store for persistence.
func (s *recordStore) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := models.Snapshot{
		Meta:     s.meta,
		Records:  make(map[models.DictType][]models.DictEntry, len(s.records)),
		SyncedAt: make(map[models.DictType]time.Time, len(s.records)),
	}
	for t, rec := range s.records {
		snap.Records[t] = models.CloneEntries(rec.Entries)
		snap.SyncedAt[t] = rec.LastSyncedAt
	}
	return snap
}

// Restore replaces the store contents with snap. Records that cannot be
// restored (empty type, entries without code) are skipped and counted.
func (s *recordStore) Restore(snap models.Snapshot) int {
	records := make(map[models.DictType]*models.CacheRecord, len(snap.Records))
	skipped := 0

	for t, entries := range snap.Records {
		if t == "" || slices.ContainsFunc(entries, func(e models.DictEntry) bool { return e.Code == "" }) {
			skipped++
			continue
		}

		byCode := make(map[string]models.DictEntry, len(entries))
		for _, e := range entries {
			byCode[e.Code] = e.Clone()
		}
		restored := slices.Collect(maps.Values(byCode))
		if restored == nil {
			restored = []models.DictEntry{}
		}
		models.SortEntries(restored)

		records[t] = &models.CacheRecord{
			Type:         t,
			Entries:      restored,
			LastSyncedAt: snap.SyncedAt[t],
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = records
	s.meta = snap.Meta
	return skipped
}
