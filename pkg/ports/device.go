package ports

import (
	"github.com/user/gradecast/pkg/grading"
	"github.com/user/gradecast/pkg/pipeline"
)

// Device abstracts the GPU-like execution device that materializes color
// transforms into pixel buffers. Implementations are not assumed
// reentrant: command encoding happens from a single goroutine (the
// scheduler tick loop) unless an implementation documents otherwise.
type Device interface {
	// Name identifies the device for logging.
	Name() string

	// AllocTarget allocates an output buffer with the exact width,
	// height, and pixel format requested. Returns an error when the
	// allocation fails; the caller drops the frame and continues.
	AllocTarget(width, height int, format pipeline.PixelFormat) (pipeline.FrameBuffer, error)

	// Execute applies the two-stage transform to src and writes the
	// result into dst, clamping to the channel range between stages.
	// Alpha is passed through unmodified. src and dst are guaranteed by
	// the caller to share dimensions and format.
	Execute(t grading.Transform, src pipeline.FrameBuffer, dst pipeline.FrameBuffer) error
}
