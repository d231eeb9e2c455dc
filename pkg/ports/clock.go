package ports

import (
	"time"
)

// RefreshClock delivers one tick per display refresh interval. The
// scheduler drives all grading work off this signal; a tick that arrives
// while the previous one is still being processed is coalesced by the
// implementation, never queued unboundedly.
type RefreshClock interface {
	// Ticks returns the tick channel. The channel carries the host
	// timestamp of each refresh.
	Ticks() <-chan time.Time

	// Stop halts tick delivery and releases clock resources.
	Stop()
}
