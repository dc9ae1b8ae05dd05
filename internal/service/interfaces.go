package service

import (
	"context"

	"github.com/MKhiriev/go-dict-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type DictionaryService interface {
	// GetBatch returns the live entries of every requested type. A type
	// without entries maps to an empty list.
	GetBatch(ctx context.Context, types []models.DictType) (models.BatchResponse, error)
	// GetChanges returns the per-type diff since the given token together
	// with the token that covers it.
	GetChanges(ctx context.Context, since models.SyncToken) (models.IncrementalResponse, error)
	ListTypes(ctx context.Context) ([]models.DictType, error)

	Upsert(ctx context.Context, t models.DictType, entries []models.DictEntry) (models.SyncToken, error)
	Remove(ctx context.Context, t models.DictType, codes []string) (models.SyncToken, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
