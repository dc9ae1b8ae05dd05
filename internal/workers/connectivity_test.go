package workers

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectivity_NotifyCallsSubscribers(t *testing.T) {
	c := NewConnectivity()
	var a, b atomic.Int32

	c.Subscribe(func() { a.Add(1) })
	unsubscribeB := c.Subscribe(func() { b.Add(1) })

	c.Notify()
	unsubscribeB()
	c.Notify()

	assert.Equal(t, int32(2), a.Load())
	assert.Equal(t, int32(1), b.Load())
}

func TestConnectivity_UnsubscribeIsIdempotent(t *testing.T) {
	c := NewConnectivity()
	var calls atomic.Int32

	unsubscribe := c.Subscribe(func() { calls.Add(1) })
	unsubscribe()
	unsubscribe()
	c.Notify()

	assert.Zero(t, calls.Load())
}

func TestConnectivity_SubscriberMayUnsubscribeDuringNotify(t *testing.T) {
	c := NewConnectivity()
	var unsubscribe func()
	unsubscribe = c.Subscribe(func() { unsubscribe() })

	assert.NotPanics(t, c.Notify)
	assert.NotPanics(t, c.Notify)
}
