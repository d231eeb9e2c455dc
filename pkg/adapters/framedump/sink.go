// Package framedump provides a file-based debug sink that saves raw and
// graded frames as PNG images.
package framedump

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"

	"github.com/user/gradecast/pkg/pipeline"
	"github.com/user/gradecast/pkg/ports"
)

// Sink saves debug output under a base directory.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new frame dump sink.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{baseDir: baseDir, fs: fs}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveRawFrame saves a frame as pulled from the source.
func (s *Sink) SaveRawFrame(index int, frame pipeline.RawFrame) error {
	return s.saveImage(filepath.Join("frames", "raw"), index, frame.Buffer.Image)
}

// SaveGradedFrame saves a frame after grading.
func (s *Sink) SaveGradedFrame(index int, frame pipeline.GradedFrame) error {
	return s.saveImage(filepath.Join("frames", "graded"), index, frame.Buffer.Image)
}

// SaveStatsJSON saves scheduler statistics as JSON.
func (s *Sink) SaveStatsJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "stats.json"), data)
}

func (s *Sink) saveImage(subdir string, index int, img image.Image) error {
	if img == nil {
		return nil
	}
	dir := filepath.Join(s.baseDir, subdir)
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode frame %d: %w", index, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", index))
	return s.fs.WriteFile(path, buf.Bytes())
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
