// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"github.com/user/gradecast/pkg/pipeline"
	"github.com/user/gradecast/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveRawFrame does nothing.
func (s *Sink) SaveRawFrame(index int, frame pipeline.RawFrame) error {
	return nil
}

// SaveGradedFrame does nothing.
func (s *Sink) SaveGradedFrame(index int, frame pipeline.GradedFrame) error {
	return nil
}

// SaveStatsJSON does nothing.
func (s *Sink) SaveStatsJSON(data []byte) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
