package testpattern

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/user/gradecast/pkg/pipeline"
	"github.com/user/gradecast/pkg/ports"
)

func barsSource() *Source {
	return New(Config{
		Width:    70,
		Height:   40,
		FPS:      10,
		Duration: time.Second,
	})
}

func TestNew_FrameCount(t *testing.T) {
	s := barsSource()
	if got := s.FrameCount(); got != 10 {
		t.Errorf("expected 10 frames at 10fps over 1s, got %d", got)
	}
}

func TestNew_Defaults(t *testing.T) {
	s := New(Config{})
	if s.FrameCount() == 0 {
		t.Error("defaults must render at least one frame")
	}
	if s.Status() != ports.StatusReady {
		t.Errorf("pre-rendered source must be ready, got %s", s.Status())
	}
	if s.PlaybackRate() != 1.0 {
		t.Errorf("expected rate 1.0, got %v", s.PlaybackRate())
	}
}

func TestItemTimeFor_ClampsToDuration(t *testing.T) {
	s := barsSource()
	if got := s.ItemTimeFor(10 * time.Second); got != time.Second {
		t.Errorf("item time must clamp to duration, got %s", got)
	}
}

func TestCopyFrame_DedupAtSameItemTime(t *testing.T) {
	s := barsSource()

	itemTime := 150 * time.Millisecond
	if !s.HasNewFrame(itemTime) {
		t.Fatal("expected a new frame")
	}
	frame, ok := s.CopyFrame(itemTime)
	if !ok {
		t.Fatal("expected copy to succeed")
	}
	if frame.PTS != 100*time.Millisecond {
		t.Errorf("expected pts of frame 1, got %s", frame.PTS)
	}

	if s.HasNewFrame(itemTime) {
		t.Error("same frame must not be new twice")
	}
	if !s.HasNewFrame(250 * time.Millisecond) {
		t.Error("next frame interval must be new")
	}
}

func TestCopyFrame_OutOfRange(t *testing.T) {
	s := barsSource()
	if _, ok := s.CopyFrame(2 * time.Second); ok {
		t.Error("item time past the end must yield no frame")
	}
	if _, ok := s.CopyFrame(-time.Millisecond); ok {
		t.Error("negative item time must yield no frame")
	}
}

func TestSetRate_PauseFreezesItemTime(t *testing.T) {
	s := barsSource()

	s.SetRate(0)
	frozen := s.ItemTimeFor(s.CurrentHostTime())

	time.Sleep(20 * time.Millisecond)
	if got := s.ItemTimeFor(s.CurrentHostTime()); got != frozen {
		t.Errorf("item time advanced while paused: %s != %s", got, frozen)
	}
	if s.AtEnd() {
		t.Error("paused playback never reports end of item")
	}
}

func TestRestart_ResetsSequence(t *testing.T) {
	s := barsSource()

	if _, ok := s.CopyFrame(0); !ok {
		t.Fatal("expected first frame")
	}
	if s.HasNewFrame(0) {
		t.Fatal("frame 0 consumed")
	}

	s.SetRate(0)
	if err := s.Restart(); err != nil {
		t.Fatalf("restart: %v", err)
	}

	if s.PlaybackRate() != 1.0 {
		t.Errorf("restart must resume playback, got rate %v", s.PlaybackRate())
	}
	if got := s.ItemTimeFor(s.CurrentHostTime()); got > 50*time.Millisecond {
		t.Errorf("item time should restart near zero, got %s", got)
	}
	if !s.HasNewFrame(0) {
		t.Error("restart must reset frame freshness")
	}
}

func TestRenderFrame_SolidPattern(t *testing.T) {
	s := New(Config{
		Width:    16,
		Height:   16,
		FPS:      10,
		Duration: 100 * time.Millisecond,
		Pattern:  PatternSolid,
		Solid:    color.RGBA{R: 40, G: 80, B: 120, A: 255},
	})

	frame, ok := s.CopyFrame(0)
	if !ok {
		t.Fatal("expected a frame")
	}
	got := frame.Buffer.Image.(*image.RGBA).RGBAAt(2, 2)
	want := color.RGBA{R: 40, G: 80, B: 120, A: 255}
	if got != want {
		t.Errorf("solid pixel: got %+v, want %+v", got, want)
	}
}

func TestRenderFrame_MarkerMoves(t *testing.T) {
	// Consecutive frames must differ so freshness checks observe real
	// frame advancement.
	s := barsSource()

	a, _ := s.CopyFrame(0)
	b, _ := s.CopyFrame(500 * time.Millisecond)

	imgA := a.Buffer.Image.(*image.RGBA)
	imgB := b.Buffer.Image.(*image.RGBA)
	same := true
	for i := range imgA.Pix {
		if imgA.Pix[i] != imgB.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("frames at different item times must not be identical")
	}
}

func TestNew_NRGBAFormat(t *testing.T) {
	s := New(Config{
		Width:    8,
		Height:   8,
		FPS:      10,
		Duration: 100 * time.Millisecond,
		Format:   pipeline.FormatNRGBA,
	})

	frame, ok := s.CopyFrame(0)
	if !ok {
		t.Fatal("expected a frame")
	}
	if frame.Buffer.Format != pipeline.FormatNRGBA {
		t.Errorf("expected NRGBA frames, got %s", frame.Buffer.Format)
	}
	if _, isNRGBA := frame.Buffer.Image.(*image.NRGBA); !isNRGBA {
		t.Error("buffer image type must match the declared format")
	}
}
