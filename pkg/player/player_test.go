package player

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/user/gradecast/pkg/adapters/logger"
	"github.com/user/gradecast/pkg/adapters/rasterdevice"
	"github.com/user/gradecast/pkg/grading"
	"github.com/user/gradecast/pkg/mocks"
	"github.com/user/gradecast/pkg/pipeline"
	"github.com/user/gradecast/pkg/rendercontext"
)

func steadySource(t *testing.T, c color.RGBA) *mocks.PlaybackSource {
	t.Helper()
	pts := -33 * time.Millisecond
	return &mocks.PlaybackSource{
		HasNewFrameFunc: func(itemTime time.Duration) bool { return true },
		CopyFrameFunc: func(itemTime time.Duration) (pipeline.RawFrame, bool) {
			pts += 33 * time.Millisecond
			buf, err := pipeline.NewFrameBuffer(4, 4, pipeline.FormatRGBA)
			if err != nil {
				return pipeline.RawFrame{}, false
			}
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					buf.Image.Set(x, y, c)
				}
			}
			return pipeline.RawFrame{Buffer: buf, PTS: pts}, true
		},
	}
}

func TestNew_DeviceUnavailableIsFatal(t *testing.T) {
	source := steadySource(t, color.RGBA{A: 255})
	device := &mocks.Device{
		AllocTargetFunc: func(w, h int, f pipeline.PixelFormat) (pipeline.FrameBuffer, error) {
			return pipeline.FrameBuffer{}, fmt.Errorf("no device")
		},
	}

	_, err := New(source, device, &mocks.PresentationSink{}, mocks.NewRefreshClock(), logger.NewNoop(), Options{})
	if !errors.Is(err, rendercontext.ErrDeviceUnavailable) {
		t.Errorf("expected ErrDeviceUnavailable, got %v", err)
	}
}

func TestPlayer_EndToEnd(t *testing.T) {
	source := steadySource(t, color.RGBA{R: 100, G: 100, B: 100, A: 255})
	sink := &mocks.PresentationSink{}
	clock := mocks.NewRefreshClock()

	p, err := New(source, rasterdevice.New(), sink, clock, logger.NewNoop(), Options{})
	if err != nil {
		t.Fatalf("new player: %v", err)
	}

	p.Params().SetRedGain(2.0)
	p.Params().SetBlueGain(0.5)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := p.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer p.Stop()

	if err := p.Play(); err != nil {
		t.Fatalf("play: %v", err)
	}
	clock.Tick()

	deadline := time.Now().Add(2 * time.Second)
	for sink.Published() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	frame, ok := sink.Latest()
	if !ok {
		t.Fatal("expected a published frame")
	}
	got := frame.Buffer.Image.(*image.RGBA).RGBAAt(0, 0)
	want := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	if got != want {
		t.Errorf("graded pixel: got %+v, want %+v", got, want)
	}

	p.Pause()
	stats := p.Stats()
	if stats.Published == 0 {
		t.Error("stats should record the publish")
	}
}

func TestPlayer_ParamsSnapshotConsistency(t *testing.T) {
	source := steadySource(t, color.RGBA{A: 255})
	p, err := New(source, rasterdevice.New(), &mocks.PresentationSink{}, mocks.NewRefreshClock(), logger.NewNoop(), Options{})
	if err != nil {
		t.Fatalf("new player: %v", err)
	}

	p.Params().SetTemperature(4200)
	snap := p.Params().Snapshot()
	if snap.Temperature != 4200 {
		t.Errorf("expected temperature 4200, got %v", snap.Temperature)
	}
	if snap.RedGain != grading.DefaultParameters().RedGain {
		t.Errorf("untouched field changed: %v", snap.RedGain)
	}
}
