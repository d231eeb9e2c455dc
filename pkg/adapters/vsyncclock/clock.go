// Package vsyncclock provides a refresh clock driven by a wall-clock
// ticker at the display's nominal refresh rate.
package vsyncclock

import (
	"time"

	"github.com/user/gradecast/pkg/ports"
)

// Clock emits one tick per refresh interval. time.Ticker drops ticks for
// slow receivers, which matches the pipeline's frame-drop policy: a tick
// missed while the previous frame is still rendering is coalesced, never
// queued.
type Clock struct {
	ticker *time.Ticker
}

// New creates a clock ticking at the given refresh rate. Rates at or
// below zero fall back to 60Hz.
func New(refreshHz float64) *Clock {
	if refreshHz <= 0 {
		refreshHz = 60.0
	}
	interval := time.Duration(float64(time.Second) / refreshHz)
	return &Clock{ticker: time.NewTicker(interval)}
}

// Ticks returns the tick channel.
func (c *Clock) Ticks() <-chan time.Time {
	return c.ticker.C
}

// Stop halts tick delivery.
func (c *Clock) Stop() {
	c.ticker.Stop()
}

// Ensure Clock implements ports.RefreshClock
var _ ports.RefreshClock = (*Clock)(nil)
