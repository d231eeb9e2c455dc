// Package mocks provides mock implementations for testing.
package mocks

import (
	"time"

	"github.com/user/gradecast/pkg/pipeline"
	"github.com/user/gradecast/pkg/ports"
)

// PlaybackSource is a mock implementation of ports.PlaybackSource.
type PlaybackSource struct {
	CurrentHostTimeFunc func() time.Duration
	ItemTimeForFunc     func(hostTime time.Duration) time.Duration
	HasNewFrameFunc     func(itemTime time.Duration) bool
	CopyFrameFunc       func(itemTime time.Duration) (pipeline.RawFrame, bool)
	PlaybackRateFunc    func() float64
	StatusFunc          func() ports.MediaStatus
	AtEndFunc           func() bool
	RestartFunc         func() error
}

func (m *PlaybackSource) CurrentHostTime() time.Duration {
	if m.CurrentHostTimeFunc != nil {
		return m.CurrentHostTimeFunc()
	}
	return 0
}

func (m *PlaybackSource) ItemTimeFor(hostTime time.Duration) time.Duration {
	if m.ItemTimeForFunc != nil {
		return m.ItemTimeForFunc(hostTime)
	}
	return hostTime
}

func (m *PlaybackSource) HasNewFrame(itemTime time.Duration) bool {
	if m.HasNewFrameFunc != nil {
		return m.HasNewFrameFunc(itemTime)
	}
	return false
}

func (m *PlaybackSource) CopyFrame(itemTime time.Duration) (pipeline.RawFrame, bool) {
	if m.CopyFrameFunc != nil {
		return m.CopyFrameFunc(itemTime)
	}
	return pipeline.RawFrame{}, false
}

func (m *PlaybackSource) PlaybackRate() float64 {
	if m.PlaybackRateFunc != nil {
		return m.PlaybackRateFunc()
	}
	return 1.0
}

func (m *PlaybackSource) Status() ports.MediaStatus {
	if m.StatusFunc != nil {
		return m.StatusFunc()
	}
	return ports.StatusReady
}

func (m *PlaybackSource) AtEnd() bool {
	if m.AtEndFunc != nil {
		return m.AtEndFunc()
	}
	return false
}

func (m *PlaybackSource) Restart() error {
	if m.RestartFunc != nil {
		return m.RestartFunc()
	}
	return nil
}

// Ensure PlaybackSource implements ports.PlaybackSource
var _ ports.PlaybackSource = (*PlaybackSource)(nil)
