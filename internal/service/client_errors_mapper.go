// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-dict-keeper/internal/adapter"
	"github.com/MKhiriev/go-dict-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The original error stays in the chain so the details are logged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidSyncToken:
			return fmt.Errorf("%w: %w", ErrInvalidSyncToken, err)
		case app.MsgInvalidDataProvided:
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}

	case errors.Is(err, adapter.ErrIntegrityCheckFailed),
		errors.Is(err, adapter.ErrDecodingResponse):
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)

	case errors.Is(err, adapter.ErrRequestFailed),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
