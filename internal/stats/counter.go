package stats

import (
	"sync/atomic"
)

// counter is read by Cache.Stats without taking the cache lock, so every
// access goes through an atomic word.
type counter struct {
	n atomic.Int64
}

func newCounter() *counter {
	return &counter{}
}

func (c *counter) increment() {
	c.add(1)
}

func (c *counter) add(delta int64) {
	c.n.Add(delta)
}

func (c *counter) value() int64 {
	return c.n.Load()
}

func (c *counter) reset() {
	c.n.Store(0)
}
