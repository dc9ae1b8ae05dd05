// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service of the dictionary
// server. The reported status follows whether the dictionary store answers.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/internal/service"
)

// ServiceName is the health service name clients ask about. The empty name
// reports the same status.
const ServiceName = "dictionary"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both service names start as
// NOT_SERVING until the first [Handler.CheckReadiness].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// CheckReadiness lists the dictionary types and reports SERVING when that
// succeeds, NOT_SERVING otherwise.
func (h *Handler) CheckReadiness(ctx context.Context) bool {
	_, err := h.services.DictionaryService.ListTypes(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.CheckReadiness").Msg("dictionary store is not ready")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return false
	}

	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	return true
}

// Shutdown reports NOT_SERVING permanently.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
