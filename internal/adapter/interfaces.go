// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the dictionary server.
//
// The primary abstraction is [ServerAdapter], which decouples the cache
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-dict-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the dictionary
// server. Implementations verify response integrity and map transport-level
// errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// FetchBatch returns the full ordered entry list of every requested type
	// in one round trip.
	FetchBatch(ctx context.Context, types []models.DictType) (models.BatchResponse, error)

	// FetchIncremental returns the changes made after since. A zero token
	// asks for everything.
	FetchIncremental(ctx context.Context, since models.SyncToken) (models.IncrementalResponse, error)

	// GetServerVersion returns the server's version string. The client uses
	// it as a cheap reachability probe.
	GetServerVersion(ctx context.Context) (string, error)
}
