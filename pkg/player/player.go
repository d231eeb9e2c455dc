// Package player wires the grading pipeline components for one playback
// session.
package player

import (
	"context"
	"fmt"
	"time"

	"github.com/user/gradecast/pkg/framesource"
	"github.com/user/gradecast/pkg/grading"
	"github.com/user/gradecast/pkg/ports"
	"github.com/user/gradecast/pkg/rendercontext"
	"github.com/user/gradecast/pkg/scheduler"
)

// Player owns one pipeline instance: parameter store, render context,
// frame source adapter, and scheduler. The render context is created
// exactly once here; a missing device fails construction, everything
// downstream of that is per-frame recoverable.
type Player struct {
	store *grading.Store
	rc    *rendercontext.Context
	sched *scheduler.Scheduler
	log   ports.Logger
}

// Options configures optional player collaborators.
type Options struct {
	// Debug receives per-tick frames when enabled.
	Debug ports.DebugSink
	// PositionInterval overrides the position poller cadence.
	PositionInterval time.Duration
}

// New builds a pipeline over the given collaborators. Returns
// rendercontext.ErrDeviceUnavailable when the device cannot be bound;
// that is the only fatal error this layer surfaces.
func New(
	source ports.PlaybackSource,
	device ports.Device,
	sink ports.PresentationSink,
	clock ports.RefreshClock,
	logger ports.Logger,
	opts Options,
) (*Player, error) {
	rc, err := rendercontext.New(device, logger)
	if err != nil {
		return nil, fmt.Errorf("bind render context: %w", err)
	}

	store := grading.NewStore()
	adapter := framesource.New(source, logger)
	sched := scheduler.New(source, adapter, store, rc, sink, clock, logger, scheduler.Options{
		Debug:            opts.Debug,
		PositionInterval: opts.PositionInterval,
	})

	return &Player{
		store: store,
		rc:    rc,
		sched: sched,
		log:   logger.WithComponent("player"),
	}, nil
}

// Start launches the scheduler loops. The pipeline stays idle until
// Play is called.
func (p *Player) Start(ctx context.Context) error {
	return p.sched.Start(ctx)
}

// Stop halts the pipeline and waits for its goroutines to exit.
func (p *Player) Stop() {
	p.sched.Stop()
}

// Play begins refresh-synchronized grading.
func (p *Player) Play() error {
	return p.sched.Play()
}

// Pause stops new grading work from starting on the next tick.
func (p *Player) Pause() {
	p.sched.Pause()
}

// Position returns the latest polled playback position.
func (p *Player) Position() time.Duration {
	return p.sched.Position()
}

// Stats returns the pipeline counters.
func (p *Player) Stats() scheduler.StatsSnapshot {
	return p.sched.Stats()
}

// Params returns the parameter store for UI mutation. Setters may be
// called from any goroutine; each grading pass sees a self-consistent
// snapshot.
func (p *Player) Params() *grading.Store {
	return p.store
}
