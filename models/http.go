// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BatchRequest is the body of POST /api/dicts/batch.
type BatchRequest struct {
	// Types lists the dictionary types to return in full.
	Types []DictType `json:"types"`

	// Length is the number of entries in Types.
	Length int `json:"length"`
}

// BatchResponse maps every requested type to its full ordered entry list.
type BatchResponse map[DictType][]DictEntry

// IncrementalResponse is returned by GET /api/dicts/changes.
type IncrementalResponse struct {
	// Token is the cursor the client must store once every change below has
	// been applied.
	Token SyncToken `json:"token"`

	// Changes holds the per-type delta since the token sent by the client.
	Changes map[DictType]TypeDiff `json:"changes"`
}

// UpsertRequest is the body of PUT /api/dicts/{type}/entries.
type UpsertRequest struct {
	Entries []DictEntry `json:"entries"`
	Length  int         `json:"length"`
}

// RemoveRequest is the body of DELETE /api/dicts/{type}/entries.
type RemoveRequest struct {
	Codes  []string `json:"codes"`
	Length int      `json:"length"`
}

// MutationResponse reports the revision a dictionary mutation was stored
// under.
type MutationResponse struct {
	Token SyncToken `json:"token"`
}

// TypesResponse is returned by GET /api/dicts/.
type TypesResponse struct {
	Types  []DictType `json:"types"`
	Length int        `json:"length"`
}
