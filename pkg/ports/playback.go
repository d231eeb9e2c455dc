// Package ports defines interfaces for external dependencies.
package ports

import (
	"time"

	"github.com/user/gradecast/pkg/pipeline"
)

// MediaStatus reports the lifecycle state of the playback collaborator.
type MediaStatus int

const (
	// StatusLoading means the media item is not yet ready for playback.
	StatusLoading MediaStatus = iota
	// StatusReady means decoded frames can be requested.
	StatusReady
	// StatusFailed means the media item failed to load. Asset-level
	// failures belong to the playback collaborator, not this pipeline.
	StatusFailed
)

// String returns the string representation of the media status.
func (s MediaStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PlaybackSource abstracts the decoder/playback collaborator that owns
// asset loading, buffering, and the decoded-frame output queue. The
// pipeline only consumes frames; it never manages the asset itself.
type PlaybackSource interface {
	// CurrentHostTime returns the current reading of the host clock.
	CurrentHostTime() time.Duration

	// ItemTimeFor maps a host clock reading into the decoder's internal
	// item-time domain.
	ItemTimeFor(hostTime time.Duration) time.Duration

	// HasNewFrame reports whether a decoded frame is available at the
	// given item time. It does not consume the frame.
	HasNewFrame(itemTime time.Duration) bool

	// CopyFrame copies out a reference to the decoded frame at the given
	// item time. The second return is false when no frame is available.
	// The returned buffer is borrowed for the duration of one grading
	// pass and must not be mutated.
	CopyFrame(itemTime time.Duration) (pipeline.RawFrame, bool)

	// PlaybackRate returns the current playback rate. Zero means paused.
	PlaybackRate() float64

	// Status returns the media lifecycle state.
	Status() MediaStatus

	// AtEnd reports whether playback has reached the end of the item.
	AtEnd() bool

	// Restart seeks back to zero and resumes playback at the previous
	// rate. Used by the scheduler's loop semantics.
	Restart() error
}
