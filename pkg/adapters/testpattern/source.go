// Package testpattern provides a synthetic playback source that stands
// in for a real decoder. It pre-renders a short pattern sequence and
// serves frames against a host clock, including pause, end-of-item, and
// restart semantics.
package testpattern

import (
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/fogleman/gg"

	"github.com/user/gradecast/pkg/pipeline"
	"github.com/user/gradecast/pkg/ports"
)

// Pattern selects the synthetic content.
type Pattern int

const (
	// PatternBars renders vertical color bars with a moving marker.
	PatternBars Pattern = iota
	// PatternSolid renders a single solid color.
	PatternSolid
)

// barColors approximates the classic 75% color-bar order.
var barColors = []color.RGBA{
	{R: 191, G: 191, B: 191, A: 255},
	{R: 191, G: 191, B: 0, A: 255},
	{R: 0, G: 191, B: 191, A: 255},
	{R: 0, G: 191, B: 0, A: 255},
	{R: 191, G: 0, B: 191, A: 255},
	{R: 191, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 191, A: 255},
}

// Config describes the synthetic sequence.
type Config struct {
	Width    int
	Height   int
	FPS      float64
	Duration time.Duration
	Pattern  Pattern
	// Solid is the fill color for PatternSolid.
	Solid color.Color
	// Format of the produced frame buffers. Defaults to RGBA.
	Format pipeline.PixelFormat
}

// Source implements ports.PlaybackSource over a pre-rendered frame
// sequence. Safe for concurrent use: rate changes may come from a
// control goroutine while the scheduler pulls frames.
type Source struct {
	mu sync.Mutex

	frames   []pipeline.FrameBuffer
	frameDur time.Duration
	duration time.Duration

	started time.Time

	rate       float64
	epoch      time.Duration // host time of item time zero at the current rate
	pausedItem time.Duration // frozen item time while rate is zero

	lastCopied int // index of last copied frame, -1 when none
}

// New pre-renders the sequence and returns a source that is immediately
// ready and playing at rate 1.
func New(cfg Config) *Source {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 360
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 30.0
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 2 * time.Second
	}
	if cfg.Solid == nil {
		cfg.Solid = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	}

	frameDur := time.Duration(float64(time.Second) / cfg.FPS)
	count := int(cfg.Duration / frameDur)
	if count < 1 {
		count = 1
	}

	frames := make([]pipeline.FrameBuffer, count)
	for i := 0; i < count; i++ {
		frames[i] = renderFrame(cfg, i, count)
	}

	return &Source{
		frames:     frames,
		frameDur:   frameDur,
		duration:   cfg.Duration,
		started:    time.Now(),
		rate:       1.0,
		lastCopied: -1,
	}
}

// renderFrame draws one pattern frame. Each frame differs from its
// neighbors so freshness checks see real frame advancement.
func renderFrame(cfg Config, index, total int) pipeline.FrameBuffer {
	dc := gg.NewContext(cfg.Width, cfg.Height)

	switch cfg.Pattern {
	case PatternSolid:
		dc.SetColor(cfg.Solid)
		dc.Clear()
	default:
		barWidth := float64(cfg.Width) / float64(len(barColors))
		for i, c := range barColors {
			dc.SetColor(c)
			dc.DrawRectangle(float64(i)*barWidth, 0, barWidth, float64(cfg.Height))
			dc.Fill()
		}
	}

	// Moving marker strip along the bottom edge.
	markerX := float64(cfg.Width) * float64(index) / float64(total)
	dc.SetColor(color.White)
	dc.DrawRectangle(markerX, float64(cfg.Height)-8, 8, 8)
	dc.Fill()

	rgba, ok := dc.Image().(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	}

	buf := pipeline.FrameBuffer{Image: rgba, Format: pipeline.FormatRGBA}
	if cfg.Format == pipeline.FormatNRGBA {
		n := image.NewNRGBA(rgba.Bounds())
		copy(n.Pix, rgba.Pix)
		buf = pipeline.FrameBuffer{Image: n, Format: pipeline.FormatNRGBA}
	}
	return buf
}

// CurrentHostTime returns the host clock reading since construction.
func (s *Source) CurrentHostTime() time.Duration {
	return time.Since(s.started)
}

// ItemTimeFor maps a host clock reading to item time at the current
// rate, clamped to the item duration.
func (s *Source) ItemTimeFor(hostTime time.Duration) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemTimeLocked(hostTime)
}

func (s *Source) itemTimeLocked(hostTime time.Duration) time.Duration {
	if s.rate == 0 {
		return s.pausedItem
	}
	item := time.Duration(float64(hostTime-s.epoch) * s.rate)
	if item < 0 {
		item = 0
	}
	if item > s.duration {
		item = s.duration
	}
	return item
}

// HasNewFrame reports whether the frame at the given item time has not
// yet been copied out.
func (s *Source) HasNewFrame(itemTime time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.frameIndexLocked(itemTime)
	return idx >= 0 && idx != s.lastCopied
}

// CopyFrame copies out the frame reference at the given item time and
// marks it consumed.
func (s *Source) CopyFrame(itemTime time.Duration) (pipeline.RawFrame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.frameIndexLocked(itemTime)
	if idx < 0 {
		return pipeline.RawFrame{}, false
	}
	s.lastCopied = idx
	return pipeline.RawFrame{
		Buffer: s.frames[idx],
		PTS:    time.Duration(idx) * s.frameDur,
	}, true
}

func (s *Source) frameIndexLocked(itemTime time.Duration) int {
	if itemTime < 0 || itemTime >= s.duration {
		return -1
	}
	idx := int(itemTime / s.frameDur)
	if idx >= len(s.frames) {
		idx = len(s.frames) - 1
	}
	return idx
}

// PlaybackRate returns the current rate. Zero means paused.
func (s *Source) PlaybackRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rate
}

// SetRate changes the playback rate, freezing or unfreezing item time.
func (s *Source) SetRate(rate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	host := time.Since(s.started)
	if rate == 0 {
		s.pausedItem = s.itemTimeLocked(host)
	} else if s.rate == 0 {
		// Resume: item time continues from where it froze.
		s.epoch = host - time.Duration(float64(s.pausedItem)/rate)
	}
	s.rate = rate
}

// Status always reports ready: the sequence is rendered up front.
func (s *Source) Status() ports.MediaStatus {
	return ports.StatusReady
}

// AtEnd reports whether item time has reached the end of the sequence.
func (s *Source) AtEnd() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rate == 0 {
		return false
	}
	return s.itemTimeLocked(time.Since(s.started)) >= s.duration
}

// Restart seeks back to zero and resumes at rate 1.
func (s *Source) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch = time.Since(s.started)
	s.pausedItem = 0
	s.lastCopied = -1
	if s.rate == 0 {
		s.rate = 1.0
	}
	return nil
}

// FrameCount returns the number of pre-rendered frames.
func (s *Source) FrameCount() int {
	return len(s.frames)
}

// Ensure Source implements ports.PlaybackSource
var _ ports.PlaybackSource = (*Source)(nil)
