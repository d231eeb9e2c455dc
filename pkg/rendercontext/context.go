// Package rendercontext owns the long-lived execution device binding
// and materializes color transforms into target buffers.
package rendercontext

import (
	"fmt"

	"github.com/user/gradecast/pkg/grading"
	"github.com/user/gradecast/pkg/pipeline"
	"github.com/user/gradecast/pkg/ports"
)

// Context binds the execution device exactly once at pipeline startup
// and is reused by every grading pass until shutdown. Recreating the
// device per frame is prohibitive at frame rate, so the single shared
// binding is essential for throughput.
//
// Not reentrant: command execution is assumed to happen from a single
// goroutine (the scheduler tick loop).
type Context struct {
	device ports.Device
	logger ports.Logger
}

// New binds the device and verifies it is usable by probing a minimal
// target allocation. Returns ErrDeviceUnavailable when the device is
// missing or the probe fails; the pipeline cannot start in that case.
func New(device ports.Device, logger ports.Logger) (*Context, error) {
	if device == nil {
		return nil, ErrDeviceUnavailable
	}
	if _, err := device.AllocTarget(1, 1, pipeline.FormatRGBA); err != nil {
		return nil, fmt.Errorf("%w: probe allocation failed: %v", ErrDeviceUnavailable, err)
	}
	logger.Debug("Render context bound to device %s", device.Name())
	return &Context{
		device: device,
		logger: logger.WithComponent("rendercontext"),
	}, nil
}

// Render executes the transform on the device and materializes the
// result into a freshly allocated target matching the source's width,
// height, and pixel format exactly.
//
// Failure conditions are per-frame and recoverable: the caller drops the
// frame and continues ticking.
func (c *Context) Render(t grading.Transform, raw pipeline.RawFrame) (pipeline.GradedFrame, error) {
	src := raw.Buffer
	target, err := c.device.AllocTarget(src.Width(), src.Height(), src.Format)
	if err != nil {
		return pipeline.GradedFrame{}, &BufferAllocationError{
			Width:  src.Width(),
			Height: src.Height(),
			Err:    err,
		}
	}
	if !target.Matches(src) {
		return pipeline.GradedFrame{}, fmt.Errorf("%w: source %s %dx%d, target %s %dx%d",
			ErrFormatMismatch,
			src.Format, src.Width(), src.Height(),
			target.Format, target.Width(), target.Height())
	}

	if err := c.device.Execute(t, src, target); err != nil {
		return pipeline.GradedFrame{}, fmt.Errorf("execute transform: %w", err)
	}

	return pipeline.GradedFrame{Buffer: target, PTS: raw.PTS}, nil
}

// Device returns the bound device.
func (c *Context) Device() ports.Device {
	return c.device
}
