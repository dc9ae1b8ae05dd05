package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dict-keeper/models"
)

func sampleSnapshot() models.Snapshot {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return models.Snapshot{
		Meta: models.CacheMeta{SchemaVersion: "2.0", SyncToken: "42"},
		Records: map[models.DictType][]models.DictEntry{
			projectStatus: {
				{Code: "A", Label: "进行中", SortOrder: 1},
				{Code: "B", Label: "已完成", SortOrder: 2, Extra: map[string]any{"color": "green"}},
			},
			"currency": {},
		},
		SyncedAt: map[models.DictType]time.Time{projectStatus: at, "currency": at},
	}
}

func TestSnapshotCodec_RoundTrip(t *testing.T) {
	snap := sampleSnapshot()

	data, checksum, err := encodeSnapshot(snap)
	require.NoError(t, err)
	assert.Len(t, checksum, 64)

	decoded, err := decodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snap.Meta, decoded.Meta)
	assert.Equal(t, snap.Records[projectStatus], decoded.Records[projectStatus])
	assert.Empty(t, decoded.Records["currency"])
	assert.True(t, snap.SyncedAt[projectStatus].Equal(decoded.SyncedAt[projectStatus]))
}

func TestSnapshotCodec_NullMeta(t *testing.T) {
	data, _, err := encodeSnapshot(models.Snapshot{})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Nil(t, doc["schemaVersion"])
	assert.Nil(t, doc["syncToken"])
	assert.Contains(t, doc, "schemaVersion")

	decoded, err := decodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, models.CacheMeta{}, decoded.Meta)
}

func TestSnapshotCodec_ChecksumMismatch(t *testing.T) {
	data, _, err := encodeSnapshot(sampleSnapshot())
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	doc["records"] = json.RawMessage(`{"projectStatus":[{"code":"Z","label":"tampered","sortOrder":1}]}`)
	tampered, err := json.Marshal(doc)
	require.NoError(t, err)

	_, err = decodeSnapshot(tampered)
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}

func TestSnapshotCodec_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"array document", `[1,2,3]`},
		{"no records", `{"schemaVersion":"1","checksum":""}`},
		{"null records", `{"records":null,"checksum":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeSnapshot([]byte(tt.data))
			assert.ErrorIs(t, err, ErrCorruptSnapshot)
		})
	}
}

func TestSnapshotCodec_SkipsMalformedEntries(t *testing.T) {
	records := json.RawMessage(`{"projectStatus":[{"code":"A","label":"a","sortOrder":1},42,{"label":"no code"},{"code":"A","label":"dup"},{"code":"B","label":7}],"broken":"not-an-array"}`)
	checksum, err := recordsChecksum(records)
	require.NoError(t, err)

	doc, err := json.Marshal(map[string]any{
		"schemaVersion": "1",
		"syncToken":     nil,
		"records":       records,
		"checksum":      checksum,
	})
	require.NoError(t, err)

	snap, err := decodeSnapshot(doc)
	require.NoError(t, err)

	require.Len(t, snap.Records[projectStatus], 1)
	assert.Equal(t, "a", snap.Records[projectStatus][0].Label)
	assert.NotContains(t, snap.Records, models.DictType("broken"))
}

func TestRecordsChecksum_IgnoresWhitespace(t *testing.T) {
	a, err := recordsChecksum([]byte(`{"x":[{"code":"A"}]}`))
	require.NoError(t, err)
	b, err := recordsChecksum([]byte("{ \"x\" : [ {\"code\" : \"A\"} ] }"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
