package http

import (
	"github.com/MKhiriev/go-dict-keeper/internal/config"
	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/internal/service"
	"github.com/MKhiriev/go-dict-keeper/internal/store"
	"github.com/MKhiriev/go-dict-keeper/internal/utils"
	"github.com/MKhiriev/go-dict-keeper/internal/validators"
)

type Handler struct {
	services   *service.Services
	hasher     *utils.Hasher
	validator  validators.Validator
	classifier store.ErrorClassificator
	traceIDs   *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Bool("hashing", cfg.HashKey != "").Msg("http handler created")
	return &Handler{
		services:   services,
		hasher:     utils.NewHasher(cfg.HashKey),
		validator:  validators.NewDictionaryValidator(),
		classifier: store.NewPostgresErrorClassifier(),
		traceIDs:   utils.NewUUIDGenerator(),
		logger:     logger,
	}
}
