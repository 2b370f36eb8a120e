package app

import (
	"time"

	"github.com/dshills/lineedit/internal/dispatcher"
)

// Metrics tracks per-session counters and timings.
// The event loop is single-threaded, so no synchronization is needed.
type Metrics struct {
	keys    uint64
	edits   uint64
	moves   uint64
	noops   uint64
	resizes uint64

	dispatchTotal time.Duration

	renderCount uint64
	renderTotal time.Duration

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordKey records one dispatched key and its outcome.
func (m *Metrics) RecordKey(res dispatcher.Result, duration time.Duration) {
	m.keys++
	m.dispatchTotal += duration

	switch {
	case !res.IsOK():
		m.noops++
	case res.Action == dispatcher.ActionMove:
		m.moves++
	default:
		m.edits++
	}
}

// RecordRender records render timing.
func (m *Metrics) RecordRender(duration time.Duration) {
	m.renderCount++
	m.renderTotal += duration
}

// RecordResize records a display resize.
func (m *Metrics) RecordResize() {
	m.resizes++
}

// MetricsSnapshot is a point-in-time copy of the metrics.
type MetricsSnapshot struct {
	Keys    uint64
	Edits   uint64
	Moves   uint64
	NoOps   uint64
	Resizes uint64
	Renders uint64

	AvgDispatch time.Duration
	AvgRender   time.Duration
	Uptime      time.Duration
}

// Snapshot returns a copy of the current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Keys:    m.keys,
		Edits:   m.edits,
		Moves:   m.moves,
		NoOps:   m.noops,
		Resizes: m.resizes,
		Renders: m.renderCount,
		Uptime:  time.Since(m.startTime),
	}
	if m.keys > 0 {
		s.AvgDispatch = m.dispatchTotal / time.Duration(m.keys)
	}
	if m.renderCount > 0 {
		s.AvgRender = m.renderTotal / time.Duration(m.renderCount)
	}
	return s
}

// Fields returns the snapshot as log fields.
func (s MetricsSnapshot) Fields() map[string]any {
	return map[string]any{
		"keys":        s.Keys,
		"edits":       s.Edits,
		"moves":       s.Moves,
		"noops":       s.NoOps,
		"resizes":     s.Resizes,
		"renders":     s.Renders,
		"avgDispatch": s.AvgDispatch,
		"avgRender":   s.AvgRender,
		"uptime":      s.Uptime.Round(time.Millisecond),
	}
}
