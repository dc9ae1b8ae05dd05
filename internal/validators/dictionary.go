package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-dict-keeper/models"
)

// Field name constants used to restrict validation to a subset of checks.
const (
	// FieldToken targets the sync token of an incremental response.
	FieldToken = "token"

	// FieldChanges targets the per-type diffs of an incremental response.
	FieldChanges = "changes"

	// FieldDictType targets a dictionary type identifier.
	FieldDictType = "dict_type"

	// FieldTypes targets the type list of a batch request.
	FieldTypes = "types"

	// FieldEntries targets an entry list.
	FieldEntries = "entries"

	// FieldCodes targets a code list.
	FieldCodes = "codes"

	// FieldLength targets the Length counter of a request.
	FieldLength = "length"
)

// maxDictTypeLen bounds a dictionary type identifier.
const maxDictTypeLen = 128

// DictionaryValidator checks dictionary payloads on both sides of the wire:
// server responses before the client applies them and requests before the
// server stores them.
type DictionaryValidator struct{}

func NewDictionaryValidator() Validator {
	return &DictionaryValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted.
//
// Supported types:
//   - models.IncrementalResponse
//   - models.BatchResponse
//   - models.BatchRequest
//   - models.UpsertRequest
//   - models.RemoveRequest
//   - models.DictType
func (v *DictionaryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.IncrementalResponse:
		return v.validateIncrementalResponse(ctx, value, fields...)
	case *models.IncrementalResponse:
		return v.validateIncrementalResponse(ctx, *value, fields...)

	case models.BatchResponse:
		return v.validateBatchResponse(value)
	case *models.BatchResponse:
		return v.validateBatchResponse(*value)

	case models.BatchRequest:
		return v.validateBatchRequest(value, fields...)
	case *models.BatchRequest:
		return v.validateBatchRequest(*value, fields...)

	case models.UpsertRequest:
		return v.validateUpsertRequest(value, fields...)
	case *models.UpsertRequest:
		return v.validateUpsertRequest(*value, fields...)

	case models.RemoveRequest:
		return v.validateRemoveRequest(value, fields...)
	case *models.RemoveRequest:
		return v.validateRemoveRequest(*value, fields...)

	case models.DictType:
		return validateDictType(value)

	default:
		return ErrUnsupportedType
	}
}

// validateIncrementalResponse rejects a response the client must not apply:
// a missing token, an empty type key, an entry without code, a code
// upserted twice, or a code both upserted and removed.
func (v *DictionaryValidator) validateIncrementalResponse(_ context.Context, resp models.IncrementalResponse, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldChanges}
	}

	for _, f := range fields {
		switch f {
		case FieldToken:
			if resp.Token.IsZero() {
				return ErrMissingToken
			}
		case FieldChanges:
			for t, diff := range resp.Changes {
				if err := validateDiff(t, diff); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateDiff(t models.DictType, diff models.TypeDiff) error {
	if err := validateDictType(t); err != nil {
		return err
	}

	upserted := make(map[string]struct{}, len(diff.Added)+len(diff.Updated))
	for _, e := range slices.Concat(diff.Added, diff.Updated) {
		if e.Code == "" {
			return fmt.Errorf("%w: type %q", ErrEmptyCode, t)
		}
		if _, dup := upserted[e.Code]; dup {
			return fmt.Errorf("%w: type %q code %q", ErrDuplicateCode, t, e.Code)
		}
		upserted[e.Code] = struct{}{}
	}

	for _, code := range diff.RemovedCodes {
		if code == "" {
			return fmt.Errorf("%w: type %q removed codes", ErrEmptyCode, t)
		}
		if _, both := upserted[code]; both {
			return fmt.Errorf("%w: type %q code %q", ErrConflictingChange, t, code)
		}
	}

	return nil
}

// validateBatchResponse checks every returned type and entry code. Duplicate
// codes are tolerated; the store keeps the last one.
func (v *DictionaryValidator) validateBatchResponse(resp models.BatchResponse) error {
	for t, entries := range resp {
		if err := validateDictType(t); err != nil {
			return err
		}
		for _, e := range entries {
			if e.Code == "" {
				return fmt.Errorf("%w: type %q", ErrEmptyCode, t)
			}
		}
	}
	return nil
}

func (v *DictionaryValidator) validateBatchRequest(req models.BatchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTypes, FieldLength}
	}

	for _, f := range fields {
		switch f {
		case FieldTypes:
			if len(req.Types) == 0 {
				return ErrEmptyTypes
			}
			for _, t := range req.Types {
				if err := validateDictType(t); err != nil {
					return err
				}
			}
		case FieldLength:
			if req.Length != len(req.Types) {
				return ErrLengthMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DictionaryValidator) validateUpsertRequest(req models.UpsertRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntries, FieldLength}
	}

	for _, f := range fields {
		switch f {
		case FieldEntries:
			if len(req.Entries) == 0 {
				return ErrEmptyEntries
			}
			seen := make(map[string]struct{}, len(req.Entries))
			for _, e := range req.Entries {
				if e.Code == "" {
					return ErrEmptyCode
				}
				if _, dup := seen[e.Code]; dup {
					return fmt.Errorf("%w: %q", ErrDuplicateCode, e.Code)
				}
				seen[e.Code] = struct{}{}
			}
		case FieldLength:
			if req.Length != len(req.Entries) {
				return ErrLengthMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DictionaryValidator) validateRemoveRequest(req models.RemoveRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCodes, FieldLength}
	}

	for _, f := range fields {
		switch f {
		case FieldCodes:
			if len(req.Codes) == 0 {
				return ErrEmptyCodes
			}
			if slices.Contains(req.Codes, "") {
				return ErrEmptyCode
			}
		case FieldLength:
			if req.Length != len(req.Codes) {
				return ErrLengthMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateDictType(t models.DictType) error {
	switch {
	case t == "":
		return ErrEmptyDictType
	case len(t) > maxDictTypeLen:
		return ErrDictTypeTooLong
	}
	return nil
}
