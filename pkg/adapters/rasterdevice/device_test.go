package rasterdevice

import (
	"image"
	"image/color"
	"testing"

	"github.com/user/gradecast/pkg/grading"
	"github.com/user/gradecast/pkg/pipeline"
)

func solidFrame(t *testing.T, w, h int, c color.RGBA) pipeline.FrameBuffer {
	t.Helper()
	buf, err := pipeline.NewFrameBuffer(w, h, pipeline.FormatRGBA)
	if err != nil {
		t.Fatalf("alloc frame: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.Image.Set(x, y, c)
		}
	}
	return buf
}

func executeOn(t *testing.T, d *Device, tr grading.Transform, src pipeline.FrameBuffer) pipeline.FrameBuffer {
	t.Helper()
	dst, err := d.AllocTarget(src.Width(), src.Height(), src.Format)
	if err != nil {
		t.Fatalf("alloc target: %v", err)
	}
	if err := d.Execute(tr, src, dst); err != nil {
		t.Fatalf("execute: %v", err)
	}
	return dst
}

func pixelAt(buf pipeline.FrameBuffer, x, y int) color.RGBA {
	return buf.Image.(*image.RGBA).RGBAAt(x, y)
}

func TestDevice_IdentityTransform(t *testing.T) {
	d := New()
	src := solidFrame(t, 4, 4, color.RGBA{R: 100, G: 150, B: 200, A: 255})
	dst := executeOn(t, d, grading.BuildTransform(grading.DefaultParameters()), src)

	got := pixelAt(dst, 2, 2)
	want := color.RGBA{R: 100, G: 150, B: 200, A: 255}
	if got != want {
		t.Errorf("identity transform changed pixel: got %+v, want %+v", got, want)
	}
}

func TestDevice_ChannelGains(t *testing.T) {
	// End-to-end grading scenario: (2.0, 1.0, 0.5, 6500K) over a solid
	// RGB(100,100,100) frame yields RGB(200,100,50).
	d := New()
	src := solidFrame(t, 8, 8, color.RGBA{R: 100, G: 100, B: 100, A: 255})
	params := grading.Parameters{RedGain: 2.0, GreenGain: 1.0, BlueGain: 0.5, Temperature: 6500}
	dst := executeOn(t, d, grading.BuildTransform(params), src)

	got := pixelAt(dst, 0, 0)
	want := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	if got != want {
		t.Errorf("graded pixel: got %+v, want %+v", got, want)
	}
}

func TestDevice_ClampsToChannelRange(t *testing.T) {
	d := New()
	src := solidFrame(t, 2, 2, color.RGBA{R: 200, G: 200, B: 200, A: 255})
	params := grading.Parameters{RedGain: 2.0, GreenGain: 1.0, BlueGain: 1.0, Temperature: 6500}
	dst := executeOn(t, d, grading.BuildTransform(params), src)

	if got := pixelAt(dst, 0, 0).R; got != 255 {
		t.Errorf("red should clamp to 255, got %d", got)
	}
}

func TestDevice_AlphaPassthrough(t *testing.T) {
	d := New()
	src := solidFrame(t, 2, 2, color.RGBA{R: 80, G: 80, B: 80, A: 128})
	params := grading.Parameters{RedGain: 2.0, GreenGain: 0.5, BlueGain: 0.1, Temperature: 4500}
	dst := executeOn(t, d, grading.BuildTransform(params), src)

	if got := pixelAt(dst, 1, 1).A; got != 128 {
		t.Errorf("alpha must pass through unmodified, got %d", got)
	}
}

// TestDevice_StageOrderObservable is the regression test for the fixed
// stage order. The clamp between the stages makes ordering visible:
// applying gain before temperature saturates early and produces a
// different pixel than temperature before gain.
func TestDevice_StageOrderObservable(t *testing.T) {
	d := New()
	src := solidFrame(t, 2, 2, color.RGBA{R: 200, G: 200, B: 200, A: 255})

	// Cool temperature attenuates red; red gain 2.0 would saturate the
	// source value if applied first.
	params := grading.Parameters{RedGain: 2.0, GreenGain: 1.0, BlueGain: 1.0, Temperature: 9000}
	tr := grading.BuildTransform(params)
	if tr.Temperature == nil {
		t.Fatal("expected a temperature stage")
	}
	tempR, _, _ := tr.Temperature.ChannelScales()
	if tempR >= 1.0 {
		t.Fatalf("9000K must attenuate red, got scale %v", tempR)
	}

	dst := executeOn(t, d, tr, src)
	got := pixelAt(dst, 0, 0)

	rightR := uint8(clamp255(clamp255(200*tempR)*2.0) + 0.5)
	wrongR := uint8(clamp255(clamp255(200*2.0)*tempR) + 0.5)

	if rightR == wrongR {
		t.Fatal("test setup broken: orders are indistinguishable")
	}
	if got.R != rightR {
		t.Errorf("executed red %d, want temperature-then-gain %d", got.R, rightR)
	}
	if got.R == wrongR {
		t.Errorf("device applied gain before temperature (red %d)", got.R)
	}
}

func TestDevice_NRGBASupport(t *testing.T) {
	d := New()
	src, err := pipeline.NewFrameBuffer(2, 2, pipeline.FormatNRGBA)
	if err != nil {
		t.Fatalf("alloc: %v", err)
	}
	src.Image.Set(0, 0, color.NRGBA{R: 100, G: 100, B: 100, A: 255})

	params := grading.Parameters{RedGain: 2.0, GreenGain: 1.0, BlueGain: 0.5, Temperature: 6500}
	dst := executeOn(t, d, grading.BuildTransform(params), src)

	got := dst.Image.(*image.NRGBA).NRGBAAt(0, 0)
	want := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	if got != want {
		t.Errorf("graded NRGBA pixel: got %+v, want %+v", got, want)
	}
}

func TestDevice_AllocTargetDimensions(t *testing.T) {
	d := New()
	buf, err := d.AllocTarget(64, 32, pipeline.FormatRGBA)
	if err != nil {
		t.Fatalf("alloc: %v", err)
	}
	if buf.Width() != 64 || buf.Height() != 32 || buf.Format != pipeline.FormatRGBA {
		t.Errorf("unexpected target: %dx%d %s", buf.Width(), buf.Height(), buf.Format)
	}

	if _, err := d.AllocTarget(0, 32, pipeline.FormatRGBA); err == nil {
		t.Error("expected error for zero width")
	}
}
