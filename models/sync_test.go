// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncToken_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b SyncToken
		want int
	}{
		{"both zero", "", "", 0},
		{"zero before any", "", "1", -1},
		{"any after zero", "1", "", 1},
		{"numeric not lexicographic", "9", "10", -1},
		{"numeric equal", "42", "42", 0},
		{"timestamps", "2026-01-02T00:00:00Z", "2026-01-01T00:00:00Z", 1},
		{"mixed falls back to strings", "t2", "t10", 1},
		{"blank is zero", "  ", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}

func TestSyncToken_After(t *testing.T) {
	assert.True(t, SyncToken("2").After("1"))
	assert.False(t, SyncToken("1").After("1"))
	assert.False(t, SyncToken("1").After("2"))
	assert.False(t, SyncToken("").After(""))
	assert.True(t, SyncToken("t1").After(""))
}

func TestSortEntries_ByOrderThenCode(t *testing.T) {
	entries := []DictEntry{
		{Code: "B", SortOrder: 2},
		{Code: "C", SortOrder: 1},
		{Code: "A", SortOrder: 2},
	}

	SortEntries(entries)

	assert.Equal(t, []string{"C", "A", "B"}, []string{entries[0].Code, entries[1].Code, entries[2].Code})
}

func TestCloneEntries_DoesNotShareExtra(t *testing.T) {
	src := []DictEntry{{Code: "A", Extra: map[string]any{"color": "red"}}}

	dst := CloneEntries(src)
	dst[0].Extra["color"] = "blue"

	assert.Equal(t, "red", src[0].Extra["color"])
	assert.NotNil(t, CloneEntries(nil))
}

func TestAppBuildInfo_SchemaVersion(t *testing.T) {
	assert.Equal(t, "pinned", NewAppBuildInfo("1.2.0", "", "").SchemaVersion("pinned"))
	assert.Equal(t, "1.2.0", NewAppBuildInfo("1.2.0", "", "").SchemaVersion(""))
	assert.Equal(t, DefaultSchemaVersion, NewAppBuildInfo("", "", "").SchemaVersion(""))
	assert.Equal(t, "N/A", NewAppBuildInfo("", "", "").BuildCommit())
}
