package client

import "errors"

var (
	ErrProviderStarted = errors.New("dictionary provider was already started")
	ErrProviderStopped = errors.New("dictionary provider is stopped")
)
