// Package rasterdevice provides a CPU raster implementation of the
// execution device port.
package rasterdevice

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/user/gradecast/pkg/grading"
	"github.com/user/gradecast/pkg/pipeline"
	"github.com/user/gradecast/pkg/ports"
)

// Device executes color matrices over 8-bit pixel buffers. The diagonal
// matrices produced by the grading package reduce to three per-channel
// scales, which are materialized as 3x256 lookup tables per pass.
type Device struct{}

// New creates a new raster device.
func New() *Device {
	return &Device{}
}

// Name identifies the device for logging.
func (d *Device) Name() string {
	return "cpu-raster"
}

// AllocTarget allocates an output buffer with the exact dimensions and
// format requested.
func (d *Device) AllocTarget(width, height int, format pipeline.PixelFormat) (pipeline.FrameBuffer, error) {
	return pipeline.NewFrameBuffer(width, height, format)
}

// Execute copies src into dst and applies the transform in place.
// The temperature stage runs first and its output is clamped to the
// channel range before the gain stage, so stage order is observable in
// the result. Alpha is passed through unmodified.
func (d *Device) Execute(t grading.Transform, src, dst pipeline.FrameBuffer) error {
	if src.Image == nil || dst.Image == nil {
		return fmt.Errorf("nil frame buffer")
	}

	draw.Copy(dst.Image, image.Point{}, src.Image, src.Image.Bounds(), draw.Src, nil)

	lut := buildLUT(t)
	switch img := dst.Image.(type) {
	case *image.RGBA:
		applyLUT(img.Pix, lut)
	case *image.NRGBA:
		applyLUT(img.Pix, lut)
	default:
		return fmt.Errorf("unsupported target image type %T", dst.Image)
	}
	return nil
}

// buildLUT materializes the two stages as per-channel lookup tables.
// Intermediate values stay floating point; only the clamp between the
// stages and the final 8-bit rounding quantize.
func buildLUT(t grading.Transform) [3][256]uint8 {
	temp := [3]float64{1, 1, 1}
	if t.Temperature != nil {
		temp[0], temp[1], temp[2] = t.Temperature.ChannelScales()
	}
	var gain [3]float64
	gain[0], gain[1], gain[2] = t.Gain.ChannelScales()

	var lut [3][256]uint8
	for c := 0; c < 3; c++ {
		for i := 0; i < 256; i++ {
			v := clamp255(float64(i) * temp[c])
			v = clamp255(v * gain[c])
			lut[c][i] = uint8(v + 0.5)
		}
	}
	return lut
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// applyLUT remaps interleaved RGBA bytes through the channel tables.
func applyLUT(pix []uint8, lut [3][256]uint8) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = lut[0][pix[i]]
		pix[i+1] = lut[1][pix[i+1]]
		pix[i+2] = lut[2][pix[i+2]]
	}
}

// Ensure Device implements ports.Device
var _ ports.Device = (*Device)(nil)
