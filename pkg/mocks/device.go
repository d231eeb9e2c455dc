package mocks

import (
	"github.com/user/gradecast/pkg/grading"
	"github.com/user/gradecast/pkg/pipeline"
	"github.com/user/gradecast/pkg/ports"
)

// Device is a mock implementation of ports.Device. By default it
// allocates real buffers and executes a plain copy.
type Device struct {
	NameFunc        func() string
	AllocTargetFunc func(width, height int, format pipeline.PixelFormat) (pipeline.FrameBuffer, error)
	ExecuteFunc     func(t grading.Transform, src, dst pipeline.FrameBuffer) error
}

func (d *Device) Name() string {
	if d.NameFunc != nil {
		return d.NameFunc()
	}
	return "mock"
}

func (d *Device) AllocTarget(width, height int, format pipeline.PixelFormat) (pipeline.FrameBuffer, error) {
	if d.AllocTargetFunc != nil {
		return d.AllocTargetFunc(width, height, format)
	}
	return pipeline.NewFrameBuffer(width, height, format)
}

func (d *Device) Execute(t grading.Transform, src, dst pipeline.FrameBuffer) error {
	if d.ExecuteFunc != nil {
		return d.ExecuteFunc(t, src, dst)
	}
	return nil
}

// Ensure Device implements ports.Device
var _ ports.Device = (*Device)(nil)
