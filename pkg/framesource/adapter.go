// Package framesource adapts the playback collaborator's decoded-frame
// queue into a per-tick pull with freshness tracking.
package framesource

import (
	"time"

	"github.com/user/gradecast/pkg/pipeline"
	"github.com/user/gradecast/pkg/ports"
)

// Adapter pulls the next available decoded frame for a host timestamp.
// It deduplicates by presentation timestamp so the same frame is never
// handed out twice, and returns nothing while playback is paused to
// avoid burning render cycles on a static image.
//
// Used from the scheduler tick loop only; not safe for concurrent use.
type Adapter struct {
	source ports.PlaybackSource
	logger ports.Logger

	consumedAny bool
	lastPTS     time.Duration
}

// New creates an adapter over the playback source.
func New(source ports.PlaybackSource, logger ports.Logger) *Adapter {
	return &Adapter{
		source: source,
		logger: logger.WithComponent("framesource"),
	}
}

// NextFrame maps the host timestamp into item time and copies out a
// frame reference if a new one is available. Returns false when there is
// no new frame; that is the normal steady state, not an error.
//
// Idempotent-safe: calling twice at the same host timestamp before a new
// frame arrives returns false the second time.
func (a *Adapter) NextFrame(hostTime time.Duration) (pipeline.RawFrame, bool) {
	if a.source.PlaybackRate() == 0 {
		return pipeline.RawFrame{}, false
	}

	itemTime := a.source.ItemTimeFor(hostTime)
	if !a.source.HasNewFrame(itemTime) {
		return pipeline.RawFrame{}, false
	}

	frame, ok := a.source.CopyFrame(itemTime)
	if !ok {
		return pipeline.RawFrame{}, false
	}

	if a.consumedAny && frame.PTS == a.lastPTS {
		a.logger.Debug("Skipping already consumed frame at pts %s", frame.PTS)
		return pipeline.RawFrame{}, false
	}

	a.consumedAny = true
	a.lastPTS = frame.PTS
	return frame, true
}

// ResetFreshness forgets the last consumed timestamp. Called when
// playback restarts from zero so the first frame of the new pass is not
// mistaken for a duplicate.
func (a *Adapter) ResetFreshness() {
	a.consumedAny = false
	a.lastPTS = 0
}
