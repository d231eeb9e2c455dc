// Package scheduler drives the grading pipeline off the display refresh
// signal.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/user/gradecast/pkg/framesource"
	"github.com/user/gradecast/pkg/grading"
	"github.com/user/gradecast/pkg/pipeline"
	"github.com/user/gradecast/pkg/ports"
	"github.com/user/gradecast/pkg/rendercontext"
)

// State is the scheduler's playback state.
type State int32

const (
	// Idle means no media is loaded or playback is paused/stopped. Ticks
	// still arrive but start no grading work.
	Idle State = iota
	// Active means every refresh tick pulls, grades, and publishes.
	Active
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// DefaultPositionInterval is the coarse cadence of the playback-position
// poller consumed by the UI.
const DefaultPositionInterval = 100 * time.Millisecond

// Scheduler runs the per-tick grading loop.
//
// Goroutine topology:
//   - 1 tick loop (single writer of the render context)
//   - 1 position poller (shares only read-only playback rate with the
//     tick loop)
//
// All grading work for one frame happens within one tick: adapter pull,
// parameter snapshot, transform, device execution, publish. A blocking
// execution delays the tick, which degrades to a late frame rather than
// a deadlock.
type Scheduler struct {
	source  ports.PlaybackSource
	adapter *framesource.Adapter
	store   *grading.Store
	rc      *rendercontext.Context
	sink    ports.PresentationSink
	clock   ports.RefreshClock
	debug   ports.DebugSink
	logger  ports.Logger

	state      atomic.Int32
	positionUs atomic.Int64
	frameIndex atomic.Uint64
	stats      Stats

	positionInterval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	startedMu sync.Mutex
	started   bool
}

// Options configures optional scheduler collaborators.
type Options struct {
	// Debug receives per-tick raw and graded frames when enabled.
	Debug ports.DebugSink
	// PositionInterval overrides the position poller cadence.
	PositionInterval time.Duration
}

// New creates a scheduler in the Idle state.
func New(
	source ports.PlaybackSource,
	adapter *framesource.Adapter,
	store *grading.Store,
	rc *rendercontext.Context,
	sink ports.PresentationSink,
	clock ports.RefreshClock,
	logger ports.Logger,
	opts Options,
) *Scheduler {
	interval := opts.PositionInterval
	if interval <= 0 {
		interval = DefaultPositionInterval
	}
	return &Scheduler{
		source:           source,
		adapter:          adapter,
		store:            store,
		rc:               rc,
		sink:             sink,
		clock:            clock,
		debug:            opts.Debug,
		logger:           logger.WithComponent("scheduler"),
		positionInterval: interval,
	}
}

// Start launches the tick loop and the position poller. Non-blocking;
// the scheduler stays Idle until Play is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.startedMu.Lock()
	defer s.startedMu.Unlock()

	if s.started {
		return fmt.Errorf("scheduler already started")
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.started = true

	s.wg.Add(2)
	go s.tickLoop()
	go s.positionLoop()
	return nil
}

// Stop transitions to Idle, halts both loops, and waits for them to
// exit. Idempotent.
func (s *Scheduler) Stop() {
	s.startedMu.Lock()
	if !s.started {
		s.startedMu.Unlock()
		return
	}
	s.startedMu.Unlock()

	s.state.Store(int32(Idle))
	s.cancel()
	s.clock.Stop()
	s.wg.Wait()
}

// Play transitions Idle to Active. The transition is guarded by the
// source lifecycle: media that is still loading or has failed cannot be
// played.
func (s *Scheduler) Play() error {
	if st := s.source.Status(); st != ports.StatusReady {
		return fmt.Errorf("cannot play: media status is %s", st)
	}
	if s.state.CompareAndSwap(int32(Idle), int32(Active)) {
		s.logger.Info("Playback started")
	}
	return nil
}

// Pause transitions to Idle. No new grading work starts on the next
// tick; a render that the current tick already launched completes and
// its result is discarded.
func (s *Scheduler) Pause() {
	if s.state.CompareAndSwap(int32(Active), int32(Idle)) {
		s.logger.Info("Playback paused")
	}
}

// State returns the current scheduler state.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Position returns the latest polled playback position in item time.
func (s *Scheduler) Position() time.Duration {
	return time.Duration(s.positionUs.Load()) * time.Microsecond
}

// Stats returns a snapshot of the pipeline counters.
func (s *Scheduler) Stats() StatsSnapshot {
	return s.stats.Snapshot()
}

// tickLoop consumes refresh ticks until the context is cancelled. One
// tick, one frame at most; ticks outside the Active state are counted
// and otherwise ignored.
func (s *Scheduler) tickLoop() {
	defer s.wg.Done()

	ticks := s.clock.Ticks()
	for {
		select {
		case <-s.ctx.Done():
			return
		case _, ok := <-ticks:
			if !ok {
				return
			}
			s.tick()
		}
	}
}

// tick performs one refresh-synchronized grading pass.
func (s *Scheduler) tick() {
	if s.State() != Active {
		return
	}
	s.stats.ticks.Add(1)

	// Loop semantics: reaching the end restarts from zero and resumes.
	if s.source.AtEnd() {
		if err := s.source.Restart(); err != nil {
			s.logger.Warn("Restart after end of media failed: %s", err)
			return
		}
		s.adapter.ResetFreshness()
		s.stats.loops.Add(1)
		s.logger.Debug("Reached end of media, restarted from zero")
		return
	}

	frame, ok := s.adapter.NextFrame(s.source.CurrentHostTime())
	if !ok {
		// No new frame yet. Normal steady state.
		return
	}

	idx := s.frameIndex.Add(1) - 1
	if s.debug != nil && s.debug.Enabled() {
		s.debug.SaveRawFrame(int(idx), frame)
	}

	params := s.store.Snapshot()
	graded, err := s.rc.Render(grading.BuildTransform(params), frame)
	if err != nil {
		// Per-frame failure is never fatal to the stream: drop and keep
		// ticking.
		s.stats.dropped.Add(1)
		s.stats.renderFailures.Add(1)
		s.logger.Warn("Frame at pts %s dropped: %s", frame.PTS, err)
		return
	}

	// Pausing must not abort an in-flight execution, but its result is
	// discarded once the pipeline has left the Active state.
	if s.State() != Active {
		s.stats.discarded.Add(1)
		s.logger.Debug("Discarding graded frame at pts %s after pause", graded.PTS)
		return
	}

	s.publish(graded, int(idx))
}

// publish hands the graded frame to the presentation sink. At most one
// publish per tick, always with the freshest result.
func (s *Scheduler) publish(frame pipeline.GradedFrame, index int) {
	s.sink.Publish(frame)
	s.stats.published.Add(1)
	if s.debug != nil && s.debug.Enabled() {
		s.debug.SaveGradedFrame(index, frame)
	}
}

// positionLoop updates the playback position at a coarse cadence for UI
// consumption. Independent of the tick loop; reads only the playback
// rate and clock from the source.
func (s *Scheduler) positionLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.positionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			if s.source.PlaybackRate() == 0 {
				continue
			}
			itemTime := s.source.ItemTimeFor(s.source.CurrentHostTime())
			s.positionUs.Store(itemTime.Microseconds())
		}
	}
}
