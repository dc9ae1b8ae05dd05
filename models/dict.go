// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"maps"
	"slices"
	"time"
)

// DictType names a family of enumerated lookup values (a "dictionary"),
// e.g. a status-code family. It is stable across sessions and used as the
// cache key.
type DictType string

// DictEntry is one enumerated value inside a [DictType]. Code is unique
// within its type.
type DictEntry struct {
	// Code is the machine value stored by forms and lists.
	Code string `json:"code"`

	// Label is the human-readable text shown for Code.
	Label string `json:"label"`

	// SortOrder defines display order inside the type.
	SortOrder int `json:"sortOrder"`

	// Extra carries optional per-entry attributes (colour, parent code, ...).
	Extra map[string]any `json:"extra,omitempty"`
}

// Clone returns a copy of e whose Extra map is not shared with e.
func (e DictEntry) Clone() DictEntry {
	if e.Extra != nil {
		e.Extra = maps.Clone(e.Extra)
	}
	return e
}

// CacheRecord is the cached state of one dictionary type.
type CacheRecord struct {
	Type         DictType
	Entries      []DictEntry
	LastSyncedAt time.Time
}

// SortEntries orders entries by SortOrder and then by Code so that equal
// sort orders still produce a deterministic sequence.
func SortEntries(entries []DictEntry) {
	slices.SortStableFunc(entries, func(a, b DictEntry) int {
		if a.SortOrder != b.SortOrder {
			if a.SortOrder < b.SortOrder {
				return -1
			}
			return 1
		}
		switch {
		case a.Code < b.Code:
			return -1
		case a.Code > b.Code:
			return 1
		}
		return 0
	})
}

// CloneEntries deep-copies entries. A nil input yields an empty, non-nil slice.
func CloneEntries(entries []DictEntry) []DictEntry {
	out := make([]DictEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}
