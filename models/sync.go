// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
	"time"
)

// DefaultSchemaVersion is the cache schema version used when neither the
// configuration nor the build metadata provides one.
const DefaultSchemaVersion = "1"

// SyncToken is an opaque cursor marking how much of the server's change
// history has been applied locally. The empty token means "from the
// beginning".
type SyncToken string

// IsZero reports whether t is the "from the beginning" token.
func (t SyncToken) IsZero() bool {
	return strings.TrimSpace(string(t)) == ""
}

// Compare orders two tokens. Tokens that are both unsigned decimal integers
// (server revisions) are compared numerically; anything else is compared
// lexicographically, which also orders RFC 3339 timestamps correctly. The
// zero token sorts before every other token.
func (t SyncToken) Compare(other SyncToken) int {
	switch {
	case t.IsZero() && other.IsZero():
		return 0
	case t.IsZero():
		return -1
	case other.IsZero():
		return 1
	}

	a, errA := strconv.ParseUint(string(t), 10, 64)
	b, errB := strconv.ParseUint(string(other), 10, 64)
	if errA == nil && errB == nil {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}

	return strings.Compare(string(t), string(other))
}

// After reports whether t is strictly newer than other.
func (t SyncToken) After(other SyncToken) bool {
	return t.Compare(other) > 0
}

// CacheMeta is persisted next to the cached records.
type CacheMeta struct {
	// SchemaVersion is the cache schema version the data was written under.
	// Empty means "none".
	SchemaVersion string

	// SyncToken is the last incremental sync cursor applied. Empty means
	// "none".
	SyncToken SyncToken
}

// Snapshot is a point-in-time copy of the whole cache used for persistence.
type Snapshot struct {
	Meta     CacheMeta
	Records  map[DictType][]DictEntry
	SyncedAt map[DictType]time.Time
}

// TypeDiff is the delta for one dictionary type in an incremental sync
// response.
type TypeDiff struct {
	Added        []DictEntry `json:"added"`
	Updated      []DictEntry `json:"updated"`
	RemovedCodes []string    `json:"removedCodes"`
}

// IsEmpty reports whether the diff carries no changes.
func (d TypeDiff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Updated) == 0 && len(d.RemovedCodes) == 0
}

// DictChange is a single changed row reported by the server repository
// since a given revision.
type DictChange struct {
	Type            DictType
	Entry           DictEntry
	CreatedRevision int64
	UpdatedRevision int64
	Deleted         bool
}
