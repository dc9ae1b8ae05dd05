package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-dict-keeper/internal/config"
	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/internal/mock"
	"github.com/MKhiriev/go-dict-keeper/internal/service"
)

const testHashKey = "test-key"

type testHandler struct {
	h    *Handler
	dict *mock.MockDictionaryService
	info *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, hashKey string) testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)
	th := testHandler{
		dict: mock.NewMockDictionaryService(ctrl),
		info: mock.NewMockAppInfoService(ctrl),
	}
	th.h = NewHandler(&service.Services{
		DictionaryService: th.dict,
		AppInfoService:    th.info,
	}, config.App{HashKey: hashKey}, logger.Nop())
	return th
}

// serve runs req through the full router.
func (th testHandler) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	th.h.Init().ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return out
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.App{}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.False(t, h.hasher.Enabled())
	assert.NotNil(t, h.validator)
	assert.NotNil(t, h.classifier)
}

func TestNewHandler_HashKeyEnablesHasher(t *testing.T) {
	h := NewHandler(&service.Services{}, config.App{HashKey: testHashKey}, logger.Nop())

	assert.True(t, h.hasher.Enabled())
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_UnknownRoutes(t *testing.T) {
	th := newTestHandler(t, "")

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/api/unknown"},
		{"wrong method on batch", http.MethodGet, "/api/dicts/batch"},
		{"wrong method on changes", http.MethodPost, "/api/dicts/changes"},
		{"wrong method on entries", http.MethodPost, "/api/dicts/currency/entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := th.serve(httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}
