package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dict-keeper/internal/validators"
	"github.com/MKhiriev/go-dict-keeper/models"
)

type DictionaryValidationService struct {
	inner     DictionaryService
	validator validators.Validator
}

func NewDictionaryValidationService() DictionaryServiceWrapper {
	return &DictionaryValidationService{
		validator: validators.NewDictionaryValidator(),
	}
}

func (v *DictionaryValidationService) GetBatch(ctx context.Context, types []models.DictType) (models.BatchResponse, error) {
	req := models.BatchRequest{Types: types, Length: len(types)}
	if err := v.validator.Validate(ctx, req, validators.FieldTypes); err != nil {
		return nil, fmt.Errorf("%w: batch request: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetBatch(ctx, dedupeTypes(types))
}

func (v *DictionaryValidationService) GetChanges(ctx context.Context, since models.SyncToken) (models.IncrementalResponse, error) {
	if _, err := parseRevision(since); err != nil {
		return models.IncrementalResponse{}, err
	}

	return v.inner.GetChanges(ctx, since)
}

func (v *DictionaryValidationService) ListTypes(ctx context.Context) ([]models.DictType, error) {
	return v.inner.ListTypes(ctx)
}

func (v *DictionaryValidationService) Upsert(ctx context.Context, t models.DictType, entries []models.DictEntry) (models.SyncToken, error) {
	if err := v.validator.Validate(ctx, t); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	req := models.UpsertRequest{Entries: entries, Length: len(entries)}
	if err := v.validator.Validate(ctx, req, validators.FieldEntries); err != nil {
		return "", fmt.Errorf("%w: upsert request: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Upsert(ctx, t, entries)
}

func (v *DictionaryValidationService) Remove(ctx context.Context, t models.DictType, codes []string) (models.SyncToken, error) {
	if err := v.validator.Validate(ctx, t); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	req := models.RemoveRequest{Codes: codes, Length: len(codes)}
	if err := v.validator.Validate(ctx, req, validators.FieldCodes); err != nil {
		return "", fmt.Errorf("%w: remove request: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Remove(ctx, t, codes)
}

func (v *DictionaryValidationService) Wrap(wrapper DictionaryService) DictionaryService {
	v.inner = wrapper
	return v
}

func dedupeTypes(types []models.DictType) []models.DictType {
	seen := make(map[models.DictType]struct{}, len(types))
	out := make([]models.DictType, 0, len(types))
	for _, t := range types {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
