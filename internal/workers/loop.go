package workers

import (
	"context"
	"sync"
	"time"
)

// loop runs a function on a ticker in a background goroutine and tracks
// every goroutine spawned on its behalf so that stop can wait for them.
type loop struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// start launches the ticker goroutine calling tick every interval and
// returns the loop context. It returns false if the loop is already running.
func (l *loop) start(ctx context.Context, interval time.Duration, tick func(ctx context.Context)) (context.Context, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		return nil, false
	}

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				tick(loopCtx)
			}
		}
	}()

	return loopCtx, true
}

// spawn runs fn in a tracked goroutine. It returns false without running fn
// when the loop is not running.
func (l *loop) spawn(fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel == nil {
		return false
	}

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		fn()
	}()
	return true
}

// stop cancels the loop context and blocks until every tracked goroutine
// has exited. Safe to call when the loop is not running.
func (l *loop) stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.wg.Wait()
}
