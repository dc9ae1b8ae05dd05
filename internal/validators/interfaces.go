// Package validators checks dictionary payloads before they reach the
// store, on the server for incoming mutations and on the client for
// batch and incremental responses.
package validators

import "context"

// Validator validates obj. When fields are given, only the named checks
// run (see the Field* constants); otherwise all of them do.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
