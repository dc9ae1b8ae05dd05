package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/internal/mock"
	"github.com/MKhiriev/go-dict-keeper/internal/service"
	"github.com/MKhiriev/go-dict-keeper/models"
)

func status(t *testing.T, h *Handler, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_Readiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	dict := mock.NewMockDictionaryService(ctrl)
	h := NewHandler(&service.Services{DictionaryService: dict}, logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h, ServiceName))

	dict.EXPECT().ListTypes(gomock.Any()).Return([]models.DictType{"currency"}, nil)
	assert.True(t, h.CheckReadiness(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, h, ServiceName))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, h, ""))

	dict.EXPECT().ListTypes(gomock.Any()).Return(nil, errors.New("connection refused"))
	assert.False(t, h.CheckReadiness(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h, ServiceName))
}

func TestHandler_ShutdownIsFinal(t *testing.T) {
	ctrl := gomock.NewController(t)
	dict := mock.NewMockDictionaryService(ctrl)
	h := NewHandler(&service.Services{DictionaryService: dict}, logger.Nop())

	h.Shutdown()
	dict.EXPECT().ListTypes(gomock.Any()).Return(nil, nil)
	h.CheckReadiness(context.Background())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h, ServiceName))
}
