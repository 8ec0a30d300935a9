package kv

import (
	"sync"
	"time"
)

// Clock is a wall clock that can be frozen or shifted for tests and
// simulation. The zero state tracks real time.
type Clock struct {
	mu     sync.RWMutex
	fixed  *time.Time
	offset time.Duration
}

// NewClock creates a Clock tracking real time.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current simulated time.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.fixed != nil {
		return *c.fixed
	}
	return time.Now().Add(c.offset)
}

// Set freezes the clock at t. Subsequent Now calls return t until the
// clock is advanced or reset.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fixed = &t
}

// Advance shifts the clock forward by d. A frozen clock stays frozen at
// the shifted instant.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fixed != nil {
		t := c.fixed.Add(d)
		c.fixed = &t
		return
	}
	c.offset += d
}

// Reset returns the clock to real time.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fixed = nil
	c.offset = 0
}
