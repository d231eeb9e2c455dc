package rendercontext

import (
	"errors"
	"fmt"
)

// ErrDeviceUnavailable is returned at construction time when no usable
// execution device exists. It is the only error that crosses the
// pipeline boundary as a hard failure: the pipeline cannot start
// without a device.
var ErrDeviceUnavailable = errors.New("render device unavailable")

// ErrFormatMismatch is returned when the allocated target does not match
// the source's dimensions or pixel format. Grading never changes pixel
// format, so a mismatch means the frame cannot be rendered; the frame is
// dropped and the pipeline continues.
var ErrFormatMismatch = errors.New("target buffer format mismatch")

// BufferAllocationError wraps a per-frame target allocation failure.
// Recoverable: the frame is dropped and the next tick may succeed.
type BufferAllocationError struct {
	Width  int
	Height int
	Err    error
}

// Error implements the error interface.
func (e *BufferAllocationError) Error() string {
	return fmt.Sprintf("allocate %dx%d target buffer: %v", e.Width, e.Height, e.Err)
}

// Unwrap returns the underlying allocation error.
func (e *BufferAllocationError) Unwrap() error {
	return e.Err
}
