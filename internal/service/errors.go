package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrInvalidSyncToken      = errors.New("invalid sync token")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrMalformedResponse is returned when a server response fails
	// validation. Nothing from it is applied and the sync token is kept.
	ErrMalformedResponse = errors.New("malformed server response")

	ErrServerUnavailable = errors.New("dictionary server is unavailable")
)
