// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/internal/utils"
)

const defaultCheckInterval = 30 * time.Minute

// RefreshScheduler re-runs the incremental sync every check interval and
// whenever the connectivity signal fires. At most one run is in flight: a
// trigger that arrives while a run is pending is dropped, not queued.
type RefreshScheduler struct {
	sync     Synchronizer
	signal   ConnectivitySignal
	interval time.Duration

	runImmediately bool

	l           loop
	inflight    atomic.Bool
	mu          sync.Mutex
	unsubscribe func()

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

// SchedulerOption configures a [RefreshScheduler].
type SchedulerOption func(*RefreshScheduler)

// WithRunImmediately sets whether Start runs a sync right away. Defaults to
// true.
func WithRunImmediately(run bool) SchedulerOption {
	return func(s *RefreshScheduler) {
		s.runImmediately = run
	}
}

// NewRefreshScheduler constructs a scheduler driving sync. A nil signal
// disables reconnect triggers; a non-positive interval falls back to 30
// minutes.
func NewRefreshScheduler(synchronizer Synchronizer, signal ConnectivitySignal, interval time.Duration, logger *logger.Logger, opts ...SchedulerOption) *RefreshScheduler {
	if interval <= 0 {
		interval = defaultCheckInterval
	}

	s := &RefreshScheduler{
		sync:           synchronizer,
		signal:         signal,
		interval:       interval,
		runImmediately: true,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger.WithComponent("refresh-scheduler"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start implements [Worker]. Calling Start on a running scheduler does
// nothing.
func (s *RefreshScheduler) Start(ctx context.Context) {
	ctx = s.logger.WithContext(ctx)

	loopCtx, started := s.l.start(ctx, s.interval, func(ctx context.Context) {
		s.trigger(ctx, "interval")
	})
	if !started {
		return
	}

	if s.signal != nil {
		unsubscribe := s.signal.Subscribe(func() {
			s.trigger(loopCtx, "reconnect")
		})
		s.mu.Lock()
		s.unsubscribe = unsubscribe
		s.mu.Unlock()
	}

	s.logger.Info().
		Str("func", "RefreshScheduler.Start").
		Dur("interval", s.interval).
		Bool("run_immediately", s.runImmediately).
		Msg("refresh scheduler started")

	if s.runImmediately {
		s.trigger(loopCtx, "start")
	}
}

// Stop implements [Worker]. It unsubscribes from the connectivity signal,
// stops the ticker and waits for a pending run to return. The sync request
// itself is not cancelled; its result still lands in the cache.
func (s *RefreshScheduler) Stop() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	s.l.stop()
}

func (s *RefreshScheduler) trigger(ctx context.Context, reason string) {
	if !s.inflight.CompareAndSwap(false, true) {
		s.logger.Debug().
			Str("func", "RefreshScheduler.trigger").
			Str("reason", reason).
			Msg("sync already in flight, trigger dropped")
		return
	}

	spawned := s.l.spawn(func() {
		defer s.inflight.Store(false)
		s.run(ctx, reason)
	})
	if !spawned {
		s.inflight.Store(false)
	}
}

func (s *RefreshScheduler) run(ctx context.Context, reason string) {
	// the id travels to the server as X-Trace-ID
	ctx = utils.WithTraceID(ctx, s.traceIDs.Generate())
	err := s.sync.FetchIncremental(ctx)
	switch {
	case err == nil:
		s.logger.Debug().
			Str("func", "RefreshScheduler.run").
			Str("reason", reason).
			Msg("incremental sync finished")
	case errors.Is(err, context.Canceled):
		s.logger.Debug().
			Str("func", "RefreshScheduler.run").
			Str("reason", reason).
			Msg("scheduler stopped while sync was pending")
	default:
		s.logger.Err(err).
			Str("func", "RefreshScheduler.run").
			Str("reason", reason).
			Msg("incremental sync failed")
	}
}
