// Package pipeline provides the shared frame and tick types for the
// grading pipeline.
package pipeline

import (
	"fmt"
	"image"
	"image/draw"
	"time"
)

// PixelFormat identifies the memory layout of a frame buffer. Grading
// never changes the pixel format: source and target of one pass always
// share a format.
type PixelFormat int

const (
	// FormatRGBA is 8-bit premultiplied RGBA (image.RGBA).
	FormatRGBA PixelFormat = iota
	// FormatNRGBA is 8-bit non-premultiplied RGBA (image.NRGBA).
	FormatNRGBA
)

// String returns the string representation of the pixel format.
func (f PixelFormat) String() string {
	switch f {
	case FormatRGBA:
		return "rgba"
	case FormatNRGBA:
		return "nrgba"
	default:
		return "unknown"
	}
}

// FrameBuffer is a GPU-addressable pixel buffer with an explicit format
// tag. Image carries dimensions and pixel storage.
type FrameBuffer struct {
	Image  draw.Image
	Format PixelFormat
}

// Width returns the buffer width in pixels.
func (b FrameBuffer) Width() int {
	if b.Image == nil {
		return 0
	}
	return b.Image.Bounds().Dx()
}

// Height returns the buffer height in pixels.
func (b FrameBuffer) Height() int {
	if b.Image == nil {
		return 0
	}
	return b.Image.Bounds().Dy()
}

// Matches reports whether the other buffer has identical dimensions and
// pixel format.
func (b FrameBuffer) Matches(other FrameBuffer) bool {
	return b.Format == other.Format &&
		b.Width() == other.Width() &&
		b.Height() == other.Height()
}

// NewFrameBuffer allocates a frame buffer with the given dimensions and
// format.
func NewFrameBuffer(width, height int, format PixelFormat) (FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return FrameBuffer{}, fmt.Errorf("invalid buffer dimensions %dx%d", width, height)
	}
	rect := image.Rect(0, 0, width, height)
	switch format {
	case FormatRGBA:
		return FrameBuffer{Image: image.NewRGBA(rect), Format: FormatRGBA}, nil
	case FormatNRGBA:
		return FrameBuffer{Image: image.NewNRGBA(rect), Format: FormatNRGBA}, nil
	default:
		return FrameBuffer{}, fmt.Errorf("unsupported pixel format %d", format)
	}
}

// RawFrame is a decoded frame borrowed from the playback source for the
// duration of one grading pass. The buffer is owned by the decoder's
// output queue and must not be mutated.
type RawFrame struct {
	Buffer FrameBuffer
	// PTS is the presentation timestamp in the item-time domain.
	PTS time.Duration
}

// GradedFrame is the output of one grading pass. It is owned by the
// render context until handed to the presentation sink, at which point
// ownership transfers.
type GradedFrame struct {
	Buffer FrameBuffer
	PTS    time.Duration
}

// ScheduleTick is an ephemeral event carrying the host timestamp of one
// display refresh.
type ScheduleTick struct {
	HostTime time.Duration
}
