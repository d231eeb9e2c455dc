// Package grading implements the color-grading parameter store and the
// pure color transform (temperature correction followed by per-channel
// gain).
package grading

import (
	"sync/atomic"
)

// Parameter value ranges documented for callers. The store does not
// enforce them: out-of-range values pass through unchanged and the UI
// layer is responsible for clamping.
const (
	MinGain        = 0.0
	MaxGain        = 2.0
	MinTemperature = 3000.0
	MaxTemperature = 9000.0

	// NeutralTemperature is the Kelvin value at which the temperature
	// stage is the identity.
	NeutralTemperature = 6500.0
)

// Parameters holds the four grading inputs. A Parameters value is
// immutable once published to the store; mutation always swaps in a
// fresh record so one grading pass never observes a half-updated set.
type Parameters struct {
	RedGain     float64
	GreenGain   float64
	BlueGain    float64
	Temperature float64
}

// DefaultParameters returns the neutral grading parameters.
func DefaultParameters() Parameters {
	return Parameters{
		RedGain:     1.0,
		GreenGain:   1.0,
		BlueGain:    1.0,
		Temperature: NeutralTemperature,
	}
}

// Store holds the grading parameters as an atomically swapped immutable
// record. Safe for concurrent use: setters may run on a UI goroutine
// while the scheduler tick loop snapshots on every tick.
type Store struct {
	current atomic.Pointer[Parameters]
}

// NewStore creates a store initialized with the default parameters.
func NewStore() *Store {
	s := &Store{}
	p := DefaultParameters()
	s.current.Store(&p)
	return s
}

// Snapshot returns a self-consistent copy of all four values. All fields
// come from the same generation of mutations.
func (s *Store) Snapshot() Parameters {
	return *s.current.Load()
}

// SetRedGain updates the red channel gain.
func (s *Store) SetRedGain(v float64) {
	s.update(func(p *Parameters) { p.RedGain = v })
}

// SetGreenGain updates the green channel gain.
func (s *Store) SetGreenGain(v float64) {
	s.update(func(p *Parameters) { p.GreenGain = v })
}

// SetBlueGain updates the blue channel gain.
func (s *Store) SetBlueGain(v float64) {
	s.update(func(p *Parameters) { p.BlueGain = v })
}

// SetTemperature updates the color temperature in Kelvin.
func (s *Store) SetTemperature(v float64) {
	s.update(func(p *Parameters) { p.Temperature = v })
}

// Set replaces all four parameters at once.
func (s *Store) Set(p Parameters) {
	s.current.Store(&p)
}

// Reset restores the default parameters.
func (s *Store) Reset() {
	s.Set(DefaultParameters())
}

// update copies the current record, applies the mutation, and swaps the
// result in. Retries on concurrent mutation so no update is lost.
func (s *Store) update(mutate func(*Parameters)) {
	for {
		old := s.current.Load()
		next := *old
		mutate(&next)
		if s.current.CompareAndSwap(old, &next) {
			return
		}
	}
}
