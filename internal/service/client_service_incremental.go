// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-dict-keeper/internal/adapter"
	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/internal/store"
	"github.com/MKhiriev/go-dict-keeper/internal/validators"
)

// incrementalKey is the single singleflight key: there is one sync token
// per process, so there is at most one incremental request.
const incrementalKey = "incremental"

type incrementalSynchronizer struct {
	records   store.RecordStore
	snapshots store.SnapshotStorage
	adapter   adapter.ServerAdapter
	validator validators.Validator

	group singleflight.Group
}

func NewIncrementalSynchronizer(records store.RecordStore, snapshots store.SnapshotStorage, serverAdapter adapter.ServerAdapter) IncrementalSynchronizer {
	return &incrementalSynchronizer{
		records:   records,
		snapshots: snapshots,
		adapter:   serverAdapter,
		validator: validators.NewDictionaryValidator(),
	}
}

// FetchIncremental implements [IncrementalSynchronizer]. A call made while
// another one is pending does not issue its own request; it gets the result
// of the pending one. The request itself is detached from ctx.
func (s *incrementalSynchronizer) FetchIncremental(ctx context.Context) error {
	ch := s.group.DoChan(incrementalKey, func() (any, error) {
		return nil, s.sync(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *incrementalSynchronizer) sync(ctx context.Context) error {
	log := logger.FromContext(ctx)
	held := s.records.Meta().SyncToken

	resp, err := s.adapter.FetchIncremental(ctx, held)
	if err != nil {
		return fmt.Errorf("incremental fetch since %q: %w", held, mapAdapterError(err))
	}

	if err = s.validator.Validate(ctx, resp); err != nil {
		log.Warn().Err(err).
			Str("func", "incrementalSynchronizer.sync").
			Str("sync_token", string(held)).
			Msg("rejecting malformed incremental response")
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if !resp.Token.After(held) {
		log.Debug().
			Str("func", "incrementalSynchronizer.sync").
			Str("sync_token", string(held)).
			Str("response_token", string(resp.Token)).
			Msg("response token is not newer, nothing to apply")
		return nil
	}

	// every diff lands before the token moves; a failure leaves the token
	// where it was so the next sync asks for the same changes again
	for _, t := range slices.Sorted(maps.Keys(resp.Changes)) {
		if err = s.records.ApplyDiff(t, resp.Changes[t]); err != nil {
			return fmt.Errorf("apply diff of %q: %w", t, err)
		}
	}

	if !s.records.AdvanceToken(resp.Token) {
		return nil
	}

	log.Info().
		Str("func", "incrementalSynchronizer.sync").
		Str("sync_token", string(resp.Token)).
		Int("types", len(resp.Changes)).
		Msg("incremental sync applied")

	persistSnapshot(ctx, s.records, s.snapshots, "incrementalSynchronizer.sync")
	return nil
}
