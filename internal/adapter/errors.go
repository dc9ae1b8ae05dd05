package adapter

import "errors"

// Errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrRequestFailed wraps transport failures: the server was not reached
	// or the connection broke before a response arrived.
	ErrRequestFailed = errors.New("request to dictionary server failed")

	// ErrIntegrityCheckFailed is returned when the HashSHA256 header of a
	// response does not match its body.
	ErrIntegrityCheckFailed = errors.New("response integrity check failed")

	// ErrDecodingResponse is returned for a 2xx response whose body is not
	// the expected JSON document.
	ErrDecodingResponse = errors.New("error decoding server response")
)
