// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// dictionary server handlers and the client's error mapping.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// The client matches them to turn a response body back into a sentinel error,
// so server and client must agree on the wording.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidSyncToken is returned when the "since" query parameter is not
	// a token this server issued.
	MsgInvalidSyncToken = "invalid sync token"

	// MsgNoEntriesAffected is returned when a removal matched no live entry.
	MsgNoEntriesAffected = "no dictionary entries were affected"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header of a
	// request does not match its body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is returned when the database is temporarily
	// unreachable and the request may be retried later.
	MsgServiceUnavailable = "service temporarily unavailable"
)
