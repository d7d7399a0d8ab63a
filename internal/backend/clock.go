package backend

import (
	"sync"
	"time"
)

// Clock reports the audio host's notion of "now" in seconds.
type Clock interface {
	Now() float64
}

// WallClock measures seconds elapsed since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock returns a clock starting at zero now.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now implements Clock.
func (c *WallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock is a clock that only moves when told to.
type ManualClock struct {
	mu  sync.Mutex
	now float64
}

// Now implements Clock.
func (c *ManualClock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *ManualClock) Set(t float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
