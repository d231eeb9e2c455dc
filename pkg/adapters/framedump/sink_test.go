package framedump

import (
	"bytes"
	"testing"
	"time"

	"github.com/user/gradecast/pkg/mocks"
	"github.com/user/gradecast/pkg/pipeline"
)

func TestSaveRawFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	s := New("debug", fs)

	buf, err := pipeline.NewFrameBuffer(8, 8, pipeline.FormatRGBA)
	if err != nil {
		t.Fatalf("alloc: %v", err)
	}
	if err := s.SaveRawFrame(3, pipeline.RawFrame{Buffer: buf, PTS: 99 * time.Millisecond}); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, ok := fs.GetFile("debug/frames/raw/frame-0003.png")
	if !ok {
		t.Fatal("expected raw frame file")
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("saved frame must be a PNG")
	}
}

func TestSaveGradedFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	s := New("debug", fs)

	buf, err := pipeline.NewFrameBuffer(8, 8, pipeline.FormatRGBA)
	if err != nil {
		t.Fatalf("alloc: %v", err)
	}
	if err := s.SaveGradedFrame(0, pipeline.GradedFrame{Buffer: buf}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, ok := fs.GetFile("debug/frames/graded/frame-0000.png"); !ok {
		t.Error("expected graded frame file")
	}
}

func TestSaveStatsJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	s := New("debug", fs)

	if err := s.SaveStatsJSON([]byte(`{"ticks":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, ok := fs.GetFile("debug/stats.json")
	if !ok {
		t.Fatal("expected stats file")
	}
	if string(data) != `{"ticks":1}` {
		t.Errorf("unexpected stats content %s", data)
	}
}

func TestSaveRawFrame_NilImage(t *testing.T) {
	fs := mocks.NewFileSystem()
	s := New("debug", fs)

	if err := s.SaveRawFrame(0, pipeline.RawFrame{}); err != nil {
		t.Errorf("nil image must be a no-op, got %v", err)
	}
	if len(fs.GetAllFiles()) != 0 {
		t.Error("nil image must write nothing")
	}
}
