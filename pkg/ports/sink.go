package ports

import (
	"github.com/user/gradecast/pkg/pipeline"
)

// PresentationSink accepts graded frames ready for display. Publish is
// fire-and-forget with superseding semantics: a new publish invalidates
// any prior unconsumed frame, so the sink only ever holds the freshest
// result. Ownership of the frame buffer transfers to the sink.
type PresentationSink interface {
	Publish(frame pipeline.GradedFrame)
}

// DebugSink abstracts debug output for intermediate results.
// It allows saving per-tick frames for inspection without touching the
// publish path.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveRawFrame saves the frame as pulled from the source, before
	// grading.
	SaveRawFrame(index int, frame pipeline.RawFrame) error

	// SaveGradedFrame saves the frame after grading.
	SaveGradedFrame(index int, frame pipeline.GradedFrame) error

	// SaveStatsJSON saves scheduler statistics as JSON.
	SaveStatsJSON(data []byte) error
}
