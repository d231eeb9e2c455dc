package scheduler

import (
	"sync/atomic"
)

// Stats tracks per-pipeline counters. All fields are updated atomically;
// per-frame failures are absorbed here instead of propagating, so the
// visible behavior of a failing frame is "late or skipped", never a
// playback halt.
type Stats struct {
	ticks          atomic.Uint64
	published      atomic.Uint64
	dropped        atomic.Uint64
	renderFailures atomic.Uint64
	discarded      atomic.Uint64
	loops          atomic.Uint64
}

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	Ticks          uint64 `json:"ticks"`
	Published      uint64 `json:"published"`
	Dropped        uint64 `json:"dropped"`
	RenderFailures uint64 `json:"render_failures"`
	Discarded      uint64 `json:"discarded"`
	Loops          uint64 `json:"loops"`
}

// Snapshot returns a copy of the current counter values.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Ticks:          s.ticks.Load(),
		Published:      s.published.Load(),
		Dropped:        s.dropped.Load(),
		RenderFailures: s.renderFailures.Load(),
		Discarded:      s.discarded.Load(),
		Loops:          s.loops.Load(),
	}
}
