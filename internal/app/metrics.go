package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts painted frames and processed events.
type Metrics struct {
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64
	cellsWritten atomic.Uint64

	eventCount   atomic.Uint64
	eventTotalNs atomic.Int64
	// input that reached no control, e.g. clicks outside a modal window
	eventsIgnored atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{startTime: time.Now()}
	m.frameMinNs.Store(1<<63 - 1)
	return m
}

// RecordFrame records one paint pass and the cells it flushed.
func (m *Metrics) RecordFrame(duration time.Duration, cells int) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)
	m.cellsWritten.Add(uint64(max(cells, 0)))

	for {
		old := m.frameMinNs.Load()
		if ns >= old || m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordEvent records event processing timing.
func (m *Metrics) RecordEvent(duration time.Duration) {
	m.eventCount.Add(1)
	m.eventTotalNs.Add(duration.Nanoseconds())
}

// RecordIgnored records an input event no control received.
func (m *Metrics) RecordIgnored() {
	m.eventsIgnored.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frames := m.frameCount.Load()
	events := m.eventCount.Load()

	var avgFrameNs, avgEventNs int64
	if frames > 0 {
		avgFrameNs = m.frameTotalNs.Load() / int64(frames)
	}
	if events > 0 {
		avgEventNs = m.eventTotalNs.Load() / int64(events)
	}
	minFrameNs := m.frameMinNs.Load()
	if minFrameNs == 1<<63-1 {
		minFrameNs = 0
	}

	return MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		FrameCount:     frames,
		AvgFrameTimeNs: avgFrameNs,
		MinFrameTimeNs: minFrameNs,
		MaxFrameTimeNs: m.frameMaxNs.Load(),
		LastFrameNs:    m.lastFrameNs.Load(),
		CellsWritten:   m.cellsWritten.Load(),
		EventCount:     events,
		AvgEventNs:     avgEventNs,
		EventsIgnored:  m.eventsIgnored.Load(),
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.frameCount.Store(0)
	m.frameTotalNs.Store(0)
	m.frameMinNs.Store(1<<63 - 1)
	m.frameMaxNs.Store(0)
	m.lastFrameNs.Store(0)
	m.cellsWritten.Store(0)
	m.eventCount.Store(0)
	m.eventTotalNs.Store(0)
	m.eventsIgnored.Store(0)
	m.startTime = time.Now()
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	AvgFrameTimeNs int64
	MinFrameTimeNs int64
	MaxFrameTimeNs int64
	LastFrameNs    int64
	CellsWritten   uint64
	EventCount     uint64
	AvgEventNs     int64
	EventsIgnored  uint64
}

// AvgFPS returns the frames per second the paint time would allow.
func (s MetricsSnapshot) AvgFPS() float64 {
	if s.AvgFrameTimeNs == 0 {
		return 0
	}
	return 1e9 / float64(s.AvgFrameTimeNs)
}

// CellsPerFrame returns the average number of cells flushed per frame.
func (s MetricsSnapshot) CellsPerFrame() float64 {
	if s.FrameCount == 0 {
		return 0
	}
	return float64(s.CellsWritten) / float64(s.FrameCount)
}

// Metrics returns the application's metrics.
func (a *Application) Metrics() *Metrics {
	return a.metrics
}
