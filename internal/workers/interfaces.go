// Package workers provides abstractions for managing and running
// background workers of the dictionary cache client.
// It defines the Worker interface, a Workers aggregate that starts and
// stops multiple workers in a unified way, and the concrete workers: the
// RefreshScheduler that keeps the cache fresh and the ConnectivityProbe that
// feeds the connectivity-restored signal.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines, bound
// to ctx. Stop ends them and waits for them to exit; it must be safe to
// call more than once and before Start.
//
// Example implementation:
//
//	type MyWorker struct{ l loop }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    w.l.start(ctx, time.Minute, func(ctx context.Context) { /* ... */ })
//	}
//
//	func (w *MyWorker) Stop() { w.l.stop() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// ConnectivitySignal delivers "connectivity restored" events. The host
// decides what counts as a reconnect.
type ConnectivitySignal interface {
	// Subscribe registers fn and returns a function that removes it.
	Subscribe(fn func()) (unsubscribe func())
}

// Synchronizer is the incremental sync the scheduler drives.
type Synchronizer interface {
	FetchIncremental(ctx context.Context) error
}

// VersionProber is used as a cheap reachability check of the server.
type VersionProber interface {
	GetServerVersion(ctx context.Context) (string, error)
}
