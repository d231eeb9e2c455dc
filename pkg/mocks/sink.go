package mocks

import (
	"sync"

	"github.com/user/gradecast/pkg/pipeline"
	"github.com/user/gradecast/pkg/ports"
)

// PresentationSink is a mock implementation of ports.PresentationSink.
// It keeps only the most recent frame, matching the superseding publish
// contract, and counts total publishes.
type PresentationSink struct {
	PublishFunc func(frame pipeline.GradedFrame)

	mu        sync.Mutex
	published int
	latest    pipeline.GradedFrame
	hasLatest bool
}

func (m *PresentationSink) Publish(frame pipeline.GradedFrame) {
	m.mu.Lock()
	m.published++
	m.latest = frame
	m.hasLatest = true
	m.mu.Unlock()

	if m.PublishFunc != nil {
		m.PublishFunc(frame)
	}
}

// Published returns the number of publishes seen.
func (m *PresentationSink) Published() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.published
}

// Latest returns the most recent frame, if any.
func (m *PresentationSink) Latest() (pipeline.GradedFrame, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.latest, m.hasLatest
}

// Ensure PresentationSink implements ports.PresentationSink
var _ ports.PresentationSink = (*PresentationSink)(nil)
