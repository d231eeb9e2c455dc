// Package mjpegsink provides a presentation sink that records published
// frames as a Motion-JPEG MP4 file.
package mjpegsink

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"sync"
	"time"

	"github.com/user/gradecast/pkg/pipeline"
	"github.com/user/gradecast/pkg/ports"
)

// sample is one recorded frame, already JPEG-encoded.
type sample struct {
	data []byte
	pts  time.Duration
}

// Sink implements ports.PresentationSink by JPEG-encoding each published
// frame and keeping it for muxing. Publish is fire-and-forget: encode
// errors are logged and the frame is skipped, matching the pipeline's
// drop policy.
type Sink struct {
	mu      sync.Mutex
	samples []sample

	width   int
	height  int
	fps     float64
	quality int
	logger  ports.Logger
}

// New creates a recording sink. fps is used for sample durations when
// only one frame is recorded; otherwise durations come from the frame
// timestamps.
func New(fps float64, quality int, logger ports.Logger) *Sink {
	if fps <= 0 {
		fps = 30.0
	}
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	return &Sink{
		fps:     fps,
		quality: quality,
		logger:  logger.WithComponent("mjpegsink"),
	}
}

// Publish records the frame. The first frame fixes the recording
// dimensions; later frames with other dimensions are skipped.
func (s *Sink) Publish(frame pipeline.GradedFrame) {
	if frame.Buffer.Image == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := frame.Buffer.Width(), frame.Buffer.Height()
	if len(s.samples) == 0 {
		s.width, s.height = w, h
	} else if w != s.width || h != s.height {
		s.logger.Warn("Skipping frame with dimensions %dx%d, recording is %dx%d", w, h, s.width, s.height)
		return
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, frame.Buffer.Image, &jpeg.Options{Quality: s.quality}); err != nil {
		s.logger.Warn("Skipping frame at pts %s: %s", frame.PTS, err)
		return
	}

	s.samples = append(s.samples, sample{data: buf.Bytes(), pts: frame.PTS})
	s.logger.Debug("Recorded frame %d at pts %s (%d bytes)", len(s.samples), frame.PTS, buf.Len())
}

// SampleCount returns the number of recorded frames.
func (s *Sink) SampleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.samples)
}

// WriteFile muxes the recording into an MP4 file via the file system
// port.
func (s *Sink) WriteFile(path string, fs ports.FileSystem) error {
	data, err := s.Bytes()
	if err != nil {
		return err
	}
	if err := fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("write recording: %w", err)
	}
	s.logger.Info("Recording written to %s (%d bytes)", path, len(data))
	return nil
}

// Ensure Sink implements ports.PresentationSink
var _ ports.PresentationSink = (*Sink)(nil)
