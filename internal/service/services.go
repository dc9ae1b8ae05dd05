package service

import (
	"fmt"

	"github.com/MKhiriev/go-dict-keeper/internal/config"
	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/internal/store"
	"github.com/MKhiriev/go-dict-keeper/models"
)

type Services struct {
	DictionaryService DictionaryService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	dictionaryService := NewDictionaryValidationService().
		Wrap(NewDictionaryService(storages.DictionaryRepository, logger))

	return &Services{
		DictionaryService: dictionaryService,
		AppInfoService:    appInfoService,
	}, nil
}
