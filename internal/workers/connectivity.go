package workers

import "sync"

// Connectivity is an in-process [ConnectivitySignal] the host feeds by
// calling Notify whenever the network comes back.
type Connectivity struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]func()
}

func NewConnectivity() *Connectivity {
	return &Connectivity{subs: make(map[uint64]func())}
}

// Subscribe implements [ConnectivitySignal].
func (c *Connectivity) Subscribe(fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

// Notify calls every current subscriber. Subscribers run synchronously on
// the caller's goroutine and must not block.
func (c *Connectivity) Notify() {
	c.mu.Lock()
	subs := make([]func(), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
