package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-dict-keeper/internal/config"
	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/internal/utils"
	"github.com/MKhiriev/go-dict-keeper/models"
)

const (
	batchPath   = "/api/dicts/batch"
	changesPath = "/api/dicts/changes"
	versionPath = "/api/version/"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] talking to adapterCfg.HTTPAddress. When appCfg.HashKey is
// set every response must carry a matching HashSHA256 header.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	if strings.TrimSpace(adapterCfg.HTTPAddress) == "" {
		return nil, fmt.Errorf("invalid adapter http address: empty address")
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: logger,
	}, nil
}

// FetchBatch implements [ServerAdapter] via POST /api/dicts/batch.
func (h *httpServerAdapter) FetchBatch(ctx context.Context, types []models.DictType) (models.BatchResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.BatchRequest{Types: types, Length: len(types)}).
		Post(batchPath)
	if err != nil {
		return nil, fmt.Errorf("%w: batch: %w", ErrRequestFailed, err)
	}

	var batch models.BatchResponse
	if err = h.decode(resp, &batch); err != nil {
		h.logger.Err(err).
			Str("func", "httpServerAdapter.FetchBatch").
			Int("types", len(types)).
			Msg("batch request failed")
		return nil, err
	}
	if batch == nil {
		batch = models.BatchResponse{}
	}

	return batch, nil
}

// FetchIncremental implements [ServerAdapter] via GET /api/dicts/changes.
// The since parameter is omitted for the zero token.
func (h *httpServerAdapter) FetchIncremental(ctx context.Context, since models.SyncToken) (models.IncrementalResponse, error) {
	req := h.client.R().SetContext(ctx)
	if !since.IsZero() {
		req.SetQueryParam("since", string(since))
	}

	resp, err := req.Get(changesPath)
	if err != nil {
		return models.IncrementalResponse{}, fmt.Errorf("%w: changes: %w", ErrRequestFailed, err)
	}

	var changes models.IncrementalResponse
	if err = h.decode(resp, &changes); err != nil {
		h.logger.Err(err).
			Str("func", "httpServerAdapter.FetchIncremental").
			Str("sync_token", string(since)).
			Msg("incremental request failed")
		return models.IncrementalResponse{}, err
	}

	return changes, nil
}

// GetServerVersion implements [ServerAdapter] via GET /api/version/.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("%w: version: %w", ErrRequestFailed, err)
	}
	if err = h.verify(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// decode checks the status and the integrity header, then unmarshals the
// body into dst.
func (h *httpServerAdapter) decode(resp *resty.Response, dst any) error {
	if err := h.verify(resp); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return nil
}

func (h *httpServerAdapter) verify(resp *resty.Response) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}
	if !h.hasher.Verify(resp.Body(), resp.Header().Get(utils.HashHeader)) {
		return fmt.Errorf("%w: %s %s", ErrIntegrityCheckFailed, resp.Request.Method, resp.Request.URL)
	}
	return nil
}
