// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/internal/service"
	"github.com/MKhiriev/go-dict-keeper/internal/store"
	"github.com/MKhiriev/go-dict-keeper/internal/workers"
	"github.com/MKhiriev/go-dict-keeper/models"
)

// Provider owns the dictionary cache of one client process. Start runs the
// version guard, an initial incremental sync and the preload, then starts
// the background workers; Stop stops them. Consumers only read through Get
// and friends, which never block on the network.
type Provider struct {
	records  store.RecordStore
	services *service.ClientServices
	workers  *workers.Workers
	preload  []models.DictType

	state    atomic.Int32
	stopOnce sync.Once

	logger *logger.Logger
}

// NewProvider constructs a Provider. The workers must not sync on start:
// Start has already synced by the time they run.
func NewProvider(records store.RecordStore, services *service.ClientServices, ws *workers.Workers, preload []string, logger *logger.Logger) *Provider {
	types := make([]models.DictType, 0, len(preload))
	for _, t := range preload {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, models.DictType(t))
		}
	}
	if ws == nil {
		ws = workers.NewWorkers()
	}

	return &Provider{
		records:  records,
		services: services,
		workers:  ws,
		preload:  types,
		logger:   logger.WithComponent("provider"),
	}
}

// Start brings the cache to [StateReady]. Sync and preload failures are
// logged and do not fail Start: the cache then serves whatever the guard
// restored and the scheduler retries later. Start may be called once.
func (p *Provider) Start(ctx context.Context) error {
	if !p.state.CompareAndSwap(int32(StateUninitialized), int32(StateGuarding)) {
		if p.State() == StateStopped {
			return ErrProviderStopped
		}
		return ErrProviderStarted
	}
	ctx = p.logger.WithContext(ctx)

	wiped, err := p.services.VersionGuard.Run(ctx)
	if err != nil {
		p.logger.Err(err).
			Str("func", "Provider.Start").
			Bool("wiped", wiped).
			Msg("version guard failed")
	}

	p.state.Store(int32(StateHydrating))

	if err = p.services.IncrementalSynchronizer.FetchIncremental(ctx); err != nil {
		p.logger.Warn().Err(err).
			Str("func", "Provider.Start").
			Msg("initial incremental sync failed")
	}

	if len(p.preload) > 0 {
		if err = p.services.BatchFetcher.FetchBatch(ctx, p.preload...); err != nil {
			p.logger.Warn().Err(err).
				Str("func", "Provider.Start").
				Int("types", len(p.preload)).
				Msg("preload failed")
		}
	}

	// Stop may have raced with hydration
	if !p.state.CompareAndSwap(int32(StateHydrating), int32(StateReady)) {
		return ErrProviderStopped
	}

	p.workers.Start(ctx)

	p.logger.Info().
		Str("func", "Provider.Start").
		Bool("wiped", wiped).
		Int("types", len(p.records.Types())).
		Str("sync_token", string(p.records.Meta().SyncToken)).
		Msg("dictionary cache ready")

	return nil
}

// Stop stops the background workers. In-flight fetches are not cancelled.
// Safe to call more than once and before Start.
func (p *Provider) Stop() {
	p.stopOnce.Do(func() {
		p.state.Store(int32(StateStopped))
		p.workers.Stop()
		p.logger.Info().Str("func", "Provider.Stop").Msg("dictionary provider stopped")
	})
}

func (p *Provider) State() State {
	return State(p.state.Load())
}

// Get returns the entries of t, or an empty slice when t is not loaded.
func (p *Provider) Get(t models.DictType) []models.DictEntry {
	return p.records.Get(t)
}

func (p *Provider) Has(t models.DictType) bool {
	return p.records.Has(t)
}

// Types returns the loaded types.
func (p *Provider) Types() []models.DictType {
	return p.records.Types()
}

// Record returns the cached record of t with its last sync time.
func (p *Provider) Record(t models.DictType) (models.CacheRecord, bool) {
	return p.records.Record(t)
}

// EnsureLoaded fetches the types that have no record yet in one batch.
// Loaded types, even stale ones, are left to the incremental sync.
func (p *Provider) EnsureLoaded(ctx context.Context, types ...models.DictType) error {
	missing := make([]models.DictType, 0, len(types))
	for _, t := range types {
		if !p.records.Has(t) {
			missing = append(missing, t)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	return p.services.BatchFetcher.FetchBatch(p.logger.WithContext(ctx), missing...)
}

// Refresh runs an incremental sync out of schedule.
func (p *Provider) Refresh(ctx context.Context) error {
	if p.State() == StateStopped {
		return ErrProviderStopped
	}
	return p.services.IncrementalSynchronizer.FetchIncremental(p.logger.WithContext(ctx))
}

// Status describes the provider for display.
func (p *Provider) Status() string {
	return p.State().String()
}
