// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-dict-keeper/internal/adapter"
	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/internal/store"
	"github.com/MKhiriev/go-dict-keeper/internal/validators"
	"github.com/MKhiriev/go-dict-keeper/models"
)

// batchFlight is one batch request in progress. done is closed once err is
// final and the store has been updated.
type batchFlight struct {
	types []models.DictType
	done  chan struct{}
	err   error
}

type batchFetcher struct {
	records   store.RecordStore
	snapshots store.SnapshotStorage
	adapter   adapter.ServerAdapter
	validator validators.Validator

	maxAge time.Duration
	now    func() time.Time

	mu       sync.Mutex
	inflight map[models.DictType]*batchFlight
}

// NewBatchFetcher constructs a [BatchFetcher]. Types synced less than maxAge
// ago are skipped; a zero maxAge always refetches.
func NewBatchFetcher(records store.RecordStore, snapshots store.SnapshotStorage, serverAdapter adapter.ServerAdapter, maxAge time.Duration) BatchFetcher {
	return &batchFetcher{
		records:   records,
		snapshots: snapshots,
		adapter:   serverAdapter,
		validator: validators.NewDictionaryValidator(),
		maxAge:    maxAge,
		now:       time.Now,
		inflight:  make(map[models.DictType]*batchFlight),
	}
}

// FetchBatch implements [BatchFetcher].
//
// The requested set is deduplicated and fresh types are dropped. Types that
// another caller is already fetching are awaited; the rest go out in a single
// request. That request runs on a context detached from ctx, so cancelling
// one caller never fails the others waiting on the same flight. ctx only
// bounds how long this caller waits.
func (f *batchFetcher) FetchBatch(ctx context.Context, types ...models.DictType) error {
	wanted := f.stale(types)
	if len(wanted) == 0 {
		return nil
	}

	flights := f.join(wanted)
	if own := flights[0]; own != nil {
		go f.run(context.WithoutCancel(ctx), own)
	}

	var errs []error
	for _, flight := range flights {
		if flight == nil {
			continue
		}
		select {
		case <-flight.done:
			if flight.err != nil {
				errs = append(errs, flight.err)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return errors.Join(errs...)
}

// stale returns the distinct non-empty types that are not fresh enough to
// be skipped, in request order.
func (f *batchFetcher) stale(types []models.DictType) []models.DictType {
	seen := make(map[models.DictType]struct{}, len(types))
	out := make([]models.DictType, 0, len(types))

	for _, t := range types {
		t = models.DictType(strings.TrimSpace(string(t)))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}

		if f.maxAge > 0 {
			if rec, ok := f.records.Record(t); ok && f.now().Sub(rec.LastSyncedAt) < f.maxAge {
				continue
			}
		}
		out = append(out, t)
	}

	return out
}

// join registers the types nobody is fetching yet under a new flight and
// collects the flights already carrying the others. The first element is
// the caller's own flight, or nil when every type was already in flight.
func (f *batchFetcher) join(types []models.DictType) []*batchFlight {
	f.mu.Lock()
	defer f.mu.Unlock()

	flights := []*batchFlight{nil}
	joined := make(map[*batchFlight]struct{})

	var own []models.DictType
	for _, t := range types {
		if flight, ok := f.inflight[t]; ok {
			if _, dup := joined[flight]; !dup {
				joined[flight] = struct{}{}
				flights = append(flights, flight)
			}
			continue
		}
		own = append(own, t)
	}

	if len(own) > 0 {
		flight := &batchFlight{types: own, done: make(chan struct{})}
		for _, t := range own {
			f.inflight[t] = flight
		}
		flights[0] = flight
	}

	return flights
}

func (f *batchFetcher) run(ctx context.Context, flight *batchFlight) {
	defer func() {
		f.mu.Lock()
		for _, t := range flight.types {
			if f.inflight[t] == flight {
				delete(f.inflight, t)
			}
		}
		f.mu.Unlock()
		close(flight.done)
	}()

	flight.err = f.fetch(ctx, flight.types)
}

func (f *batchFetcher) fetch(ctx context.Context, types []models.DictType) error {
	log := logger.FromContext(ctx)

	resp, err := f.adapter.FetchBatch(ctx, types)
	if err != nil {
		return fmt.Errorf("batch fetch of %v: %w", types, mapAdapterError(err))
	}

	if err = f.validator.Validate(ctx, resp); err != nil {
		log.Warn().Err(err).
			Str("func", "batchFetcher.fetch").
			Msg("rejecting malformed batch response")
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	var errs []error
	for _, t := range types {
		entries, ok := resp[t]
		if !ok {
			log.Debug().
				Str("func", "batchFetcher.fetch").
				Str("dict_type", string(t)).
				Msg("type missing from batch response")
			continue
		}
		if err = f.records.ApplyFull(t, entries); err != nil {
			errs = append(errs, fmt.Errorf("apply %q: %w", t, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	log.Debug().
		Str("func", "batchFetcher.fetch").
		Int("types", len(types)).
		Msg("batch applied")

	persistSnapshot(ctx, f.records, f.snapshots, "batchFetcher.fetch")
	return nil
}
