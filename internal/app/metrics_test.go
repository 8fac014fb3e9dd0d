package app

import (
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()
	s := m.Snapshot()
	if s.FrameCount != 0 || s.EventCount != 0 {
		t.Errorf("fresh metrics: %d frames %d events", s.FrameCount, s.EventCount)
	}
	if s.MinFrameTimeNs != 0 {
		t.Errorf("expected 0 min frame time (sentinel handled), got %d", s.MinFrameTimeNs)
	}
	if s.AvgFPS() != 0 || s.CellsPerFrame() != 0 {
		t.Errorf("derived values on empty metrics: fps %v cells %v", s.AvgFPS(), s.CellsPerFrame())
	}
}

func TestMetrics_RecordFrame(t *testing.T) {
	m := NewMetrics()
	m.RecordFrame(10*time.Millisecond, 100)
	m.RecordFrame(20*time.Millisecond, 0)
	m.RecordFrame(5*time.Millisecond, 50)

	s := m.Snapshot()
	if s.FrameCount != 3 {
		t.Errorf("expected 3 frames, got %d", s.FrameCount)
	}
	if s.MinFrameTimeNs != int64(5*time.Millisecond) {
		t.Errorf("expected min 5ms, got %d ns", s.MinFrameTimeNs)
	}
	if s.MaxFrameTimeNs != int64(20*time.Millisecond) {
		t.Errorf("expected max 20ms, got %d ns", s.MaxFrameTimeNs)
	}
	if s.LastFrameNs != int64(5*time.Millisecond) {
		t.Errorf("expected last 5ms, got %d ns", s.LastFrameNs)
	}
	if s.CellsWritten != 150 || s.CellsPerFrame() != 50 {
		t.Errorf("cells %d per frame %v", s.CellsWritten, s.CellsPerFrame())
	}
	if fps := s.AvgFPS(); fps < 85 || fps > 86 {
		t.Errorf("AvgFPS = %v", fps)
	}
}

func TestMetrics_EventsAndReset(t *testing.T) {
	m := NewMetrics()
	m.RecordEvent(2 * time.Millisecond)
	m.RecordEvent(4 * time.Millisecond)
	m.RecordIgnored()

	s := m.Snapshot()
	if s.EventCount != 2 || s.AvgEventNs != int64(3*time.Millisecond) || s.EventsIgnored != 1 {
		t.Errorf("events %d avg %d ignored %d", s.EventCount, s.AvgEventNs, s.EventsIgnored)
	}

	m.Reset()
	s = m.Snapshot()
	if s.EventCount != 0 || s.EventsIgnored != 0 || s.MinFrameTimeNs != 0 {
		t.Errorf("after reset: %+v", s)
	}
}
