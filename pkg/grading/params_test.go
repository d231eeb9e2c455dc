package grading

import (
	"sync"
	"testing"
)

func TestStore_Defaults(t *testing.T) {
	s := NewStore()
	p := s.Snapshot()

	want := Parameters{RedGain: 1.0, GreenGain: 1.0, BlueGain: 1.0, Temperature: 6500.0}
	if p != want {
		t.Errorf("expected defaults %+v, got %+v", want, p)
	}
}

func TestStore_SetFields(t *testing.T) {
	s := NewStore()
	s.SetRedGain(2.0)
	s.SetGreenGain(0.25)
	s.SetBlueGain(0.5)
	s.SetTemperature(4000)

	p := s.Snapshot()
	want := Parameters{RedGain: 2.0, GreenGain: 0.25, BlueGain: 0.5, Temperature: 4000}
	if p != want {
		t.Errorf("expected %+v, got %+v", want, p)
	}
}

func TestStore_OutOfRangePassesThrough(t *testing.T) {
	// The store does not validate: clamping is the caller's job.
	s := NewStore()
	s.SetRedGain(-3.0)
	s.SetTemperature(100000)

	p := s.Snapshot()
	if p.RedGain != -3.0 {
		t.Errorf("expected red gain -3.0 to pass through, got %v", p.RedGain)
	}
	if p.Temperature != 100000 {
		t.Errorf("expected temperature 100000 to pass through, got %v", p.Temperature)
	}
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	s.SetRedGain(2.0)
	s.SetTemperature(3000)
	s.Reset()

	if p := s.Snapshot(); p != DefaultParameters() {
		t.Errorf("expected defaults after reset, got %+v", p)
	}
}

// TestStore_SnapshotConsistency verifies a snapshot never mixes values
// from two different generations: writers always publish whole records
// where all gains are equal, so any mixed snapshot is a torn read.
func TestStore_SnapshotConsistency(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		v := 0.0
		for {
			select {
			case <-stop:
				return
			default:
			}
			v += 0.125
			s.Set(Parameters{RedGain: v, GreenGain: v, BlueGain: v, Temperature: 6500})
		}
	}()

	for i := 0; i < 10000; i++ {
		p := s.Snapshot()
		if p.RedGain != p.GreenGain || p.GreenGain != p.BlueGain {
			t.Fatalf("torn snapshot: %+v", p)
		}
	}
	close(stop)
	wg.Wait()
}

func TestStore_ConcurrentFieldUpdatesNotLost(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.SetRedGain(2.0)
	}()
	go func() {
		defer wg.Done()
		s.SetBlueGain(0.5)
	}()
	wg.Wait()

	p := s.Snapshot()
	if p.RedGain != 2.0 || p.BlueGain != 0.5 {
		t.Errorf("concurrent field update lost: %+v", p)
	}
}
