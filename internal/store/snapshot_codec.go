package store

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/MKhiriev/go-dict-keeper/models"
)

// snapshotKey is the single durable key the cache lives under.
const snapshotKey = "dict-cache"

// snapshotDocument is the persisted layout. Null schemaVersion and
// syncToken mean "none".
type snapshotDocument struct {
	SchemaVersion *string              `json:"schemaVersion"`
	SyncToken     *string              `json:"syncToken"`
	Records       json.RawMessage      `json:"records"`
	SyncedAt      map[string]time.Time `json:"syncedAt,omitempty"`
	Checksum      string               `json:"checksum"`
}

// encodeSnapshot serializes snap and returns the document with the checksum
// of its records.
func encodeSnapshot(snap models.Snapshot) ([]byte, string, error) {
	records := snap.Records
	if records == nil {
		records = map[models.DictType][]models.DictEntry{}
	}

	rawRecords, err := json.Marshal(records)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrEncodingSnapshot, err)
	}

	checksum, err := recordsChecksum(rawRecords)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrEncodingSnapshot, err)
	}

	doc := snapshotDocument{
		SchemaVersion: nullable(snap.Meta.SchemaVersion),
		SyncToken:     nullable(string(snap.Meta.SyncToken)),
		Records:       rawRecords,
		Checksum:      checksum,
	}
	if len(snap.SyncedAt) > 0 {
		doc.SyncedAt = make(map[string]time.Time, len(snap.SyncedAt))
		for t, at := range snap.SyncedAt {
			doc.SyncedAt[string(t)] = at.UTC()
		}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrEncodingSnapshot, err)
	}
	return data, checksum, nil
}

// decodeSnapshot parses a persisted document. The whole document is
// rejected on a checksum mismatch or a wrong shape; individual malformed
// entries (not an object, empty or duplicate code) are dropped.
func decodeSnapshot(data []byte) (*models.Snapshot, error) {
	var doc snapshotDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if len(doc.Records) == 0 || bytes.Equal(doc.Records, []byte("null")) {
		return nil, fmt.Errorf("%w: no records", ErrCorruptSnapshot)
	}

	checksum, err := recordsChecksum(doc.Records)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if checksum != doc.Checksum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptSnapshot)
	}

	var rawTypes map[models.DictType]json.RawMessage
	if err := json.Unmarshal(doc.Records, &rawTypes); err != nil {
		return nil, fmt.Errorf("%w: records: %w", ErrCorruptSnapshot, err)
	}

	snap := &models.Snapshot{
		Records:  make(map[models.DictType][]models.DictEntry, len(rawTypes)),
		SyncedAt: make(map[models.DictType]time.Time, len(doc.SyncedAt)),
	}
	if doc.SchemaVersion != nil {
		snap.Meta.SchemaVersion = *doc.SchemaVersion
	}
	if doc.SyncToken != nil {
		snap.Meta.SyncToken = models.SyncToken(*doc.SyncToken)
	}

	for t, raw := range rawTypes {
		var rawEntries []json.RawMessage
		if err := json.Unmarshal(raw, &rawEntries); err != nil {
			continue
		}
		snap.Records[t] = decodeEntries(rawEntries)
	}
	for t, at := range doc.SyncedAt {
		if _, ok := snap.Records[models.DictType(t)]; ok {
			snap.SyncedAt[models.DictType(t)] = at
		}
	}

	return snap, nil
}

func decodeEntries(raw []json.RawMessage) []models.DictEntry {
	entries := make([]models.DictEntry, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, r := range raw {
		var e models.DictEntry
		if err := json.Unmarshal(r, &e); err != nil || e.Code == "" {
			continue
		}
		if _, dup := seen[e.Code]; dup {
			continue
		}
		seen[e.Code] = struct{}{}
		entries = append(entries, e)
	}
	return entries
}

// recordsChecksum returns the hex BLAKE2b-256 of the compact records JSON.
func recordsChecksum(raw []byte) (string, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return "", err
	}
	sum := blake2b.Sum256(compact.Bytes())
	return hex.EncodeToString(sum[:]), nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
