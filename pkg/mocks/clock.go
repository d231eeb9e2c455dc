package mocks

import (
	"time"

	"github.com/user/gradecast/pkg/ports"
)

// RefreshClock is a manually driven implementation of
// ports.RefreshClock for tests.
type RefreshClock struct {
	ch chan time.Time
}

// NewRefreshClock creates a clock with a buffered tick channel.
func NewRefreshClock() *RefreshClock {
	return &RefreshClock{ch: make(chan time.Time, 16)}
}

// Tick delivers one refresh tick.
func (c *RefreshClock) Tick() {
	c.ch <- time.Now()
}

func (c *RefreshClock) Ticks() <-chan time.Time {
	return c.ch
}

// Stop is a no-op; tests own the channel lifetime.
func (c *RefreshClock) Stop() {}

// Ensure RefreshClock implements ports.RefreshClock
var _ ports.RefreshClock = (*RefreshClock)(nil)
