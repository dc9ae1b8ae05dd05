// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dict-keeper/models"
)

func validIncremental() models.IncrementalResponse {
	return models.IncrementalResponse{
		Token: "t2",
		Changes: map[models.DictType]models.TypeDiff{
			"projectStatus": {
				Added:        []models.DictEntry{{Code: "B", Label: "b", SortOrder: 2}},
				Updated:      []models.DictEntry{{Code: "A", Label: "已完成", SortOrder: 1}},
				RemovedCodes: []string{"C"},
			},
		},
	}
}

func TestNewDictionaryValidator(t *testing.T) {
	require.NotNil(t, NewDictionaryValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewDictionaryValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// IncrementalResponse
// ---------------------------------------------------------------------------

func TestValidate_IncrementalResponse(t *testing.T) {
	v := NewDictionaryValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *models.IncrementalResponse)
		wantErr error
	}{
		{"valid", func(*models.IncrementalResponse) {}, nil},
		{"no changes", func(r *models.IncrementalResponse) { r.Changes = nil }, nil},
		{"missing token", func(r *models.IncrementalResponse) { r.Token = "" }, ErrMissingToken},
		{"blank token", func(r *models.IncrementalResponse) { r.Token = "  " }, ErrMissingToken},
		{"empty type key", func(r *models.IncrementalResponse) {
			r.Changes[""] = models.TypeDiff{}
		}, ErrEmptyDictType},
		{"empty code", func(r *models.IncrementalResponse) {
			r.Changes["currency"] = models.TypeDiff{Added: []models.DictEntry{{Label: "no code"}}}
		}, ErrEmptyCode},
		{"empty removed code", func(r *models.IncrementalResponse) {
			r.Changes["currency"] = models.TypeDiff{RemovedCodes: []string{""}}
		}, ErrEmptyCode},
		{"duplicate upsert", func(r *models.IncrementalResponse) {
			r.Changes["currency"] = models.TypeDiff{
				Added:   []models.DictEntry{{Code: "USD"}},
				Updated: []models.DictEntry{{Code: "USD"}},
			}
		}, ErrDuplicateCode},
		{"upserted and removed", func(r *models.IncrementalResponse) {
			r.Changes["currency"] = models.TypeDiff{
				Updated:      []models.DictEntry{{Code: "USD"}},
				RemovedCodes: []string{"USD"},
			}
		}, ErrConflictingChange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := validIncremental()
			tt.mutate(&resp)

			err := v.Validate(ctx, resp)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_IncrementalResponsePointerAndFields(t *testing.T) {
	v := NewDictionaryValidator()
	resp := validIncremental()
	resp.Token = ""

	assert.ErrorIs(t, v.Validate(context.Background(), &resp), ErrMissingToken)
	assert.NoError(t, v.Validate(context.Background(), &resp, FieldChanges))
	assert.ErrorIs(t, v.Validate(context.Background(), resp, "bogus"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// BatchResponse / BatchRequest
// ---------------------------------------------------------------------------

func TestValidate_BatchResponse(t *testing.T) {
	v := NewDictionaryValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.BatchResponse{
		"projectStatus": {{Code: "A"}, {Code: "A"}},
		"currency":      {},
	}))
	assert.ErrorIs(t, v.Validate(ctx, models.BatchResponse{"": {{Code: "A"}}}), ErrEmptyDictType)
	assert.ErrorIs(t, v.Validate(ctx, &models.BatchResponse{"x": {{Code: ""}}}), ErrEmptyCode)
}

func TestValidate_BatchRequest(t *testing.T) {
	v := NewDictionaryValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.BatchRequest{Types: []models.DictType{"a", "b"}, Length: 2}))
	assert.ErrorIs(t, v.Validate(ctx, models.BatchRequest{}), ErrEmptyTypes)
	assert.ErrorIs(t, v.Validate(ctx, models.BatchRequest{Types: []models.DictType{"a", ""}, Length: 2}), ErrEmptyDictType)
	assert.ErrorIs(t, v.Validate(ctx, models.BatchRequest{Types: []models.DictType{"a"}, Length: 3}), ErrLengthMismatch)
	assert.NoError(t, v.Validate(ctx, models.BatchRequest{Types: []models.DictType{"a"}, Length: 3}, FieldTypes))

	long := models.DictType(strings.Repeat("x", maxDictTypeLen+1))
	assert.ErrorIs(t, v.Validate(ctx, models.BatchRequest{Types: []models.DictType{long}, Length: 1}), ErrDictTypeTooLong)
}

// ---------------------------------------------------------------------------
// UpsertRequest / RemoveRequest / DictType
// ---------------------------------------------------------------------------

func TestValidate_UpsertRequest(t *testing.T) {
	v := NewDictionaryValidator()
	ctx := context.Background()

	valid := models.UpsertRequest{Entries: []models.DictEntry{{Code: "A"}, {Code: "B"}}, Length: 2}
	assert.NoError(t, v.Validate(ctx, valid))
	assert.NoError(t, v.Validate(ctx, &valid))

	assert.ErrorIs(t, v.Validate(ctx, models.UpsertRequest{}), ErrEmptyEntries)
	assert.ErrorIs(t, v.Validate(ctx, models.UpsertRequest{Entries: []models.DictEntry{{Code: ""}}, Length: 1}), ErrEmptyCode)
	assert.ErrorIs(t, v.Validate(ctx, models.UpsertRequest{Entries: []models.DictEntry{{Code: "A"}, {Code: "A"}}, Length: 2}), ErrDuplicateCode)
	assert.ErrorIs(t, v.Validate(ctx, models.UpsertRequest{Entries: []models.DictEntry{{Code: "A"}}, Length: 0}), ErrLengthMismatch)
}

func TestValidate_RemoveRequest(t *testing.T) {
	v := NewDictionaryValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.RemoveRequest{Codes: []string{"A"}, Length: 1}))
	assert.ErrorIs(t, v.Validate(ctx, models.RemoveRequest{}), ErrEmptyCodes)
	assert.ErrorIs(t, v.Validate(ctx, models.RemoveRequest{Codes: []string{"A", ""}, Length: 2}), ErrEmptyCode)
	assert.ErrorIs(t, v.Validate(ctx, &models.RemoveRequest{Codes: []string{"A"}, Length: 2}), ErrLengthMismatch)
	assert.ErrorIs(t, v.Validate(ctx, models.RemoveRequest{Codes: []string{"A"}}, "bogus"), ErrUnknownField)
}

func TestValidate_DictType(t *testing.T) {
	v := NewDictionaryValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DictType("projectStatus")))
	assert.ErrorIs(t, v.Validate(ctx, models.DictType("")), ErrEmptyDictType)
}
