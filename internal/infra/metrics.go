package infra

import (
	"sync/atomic"
	"time"
)

// Metrics provides lightweight observability without external dependencies.
// Uses atomic operations for thread-safety across path workers.
type Metrics struct {
	pathsCompleted atomic.Uint64
	beliefUpdates  atomic.Uint64
	runsCompleted  atomic.Uint64
	runDurationNs  atomic.Int64
}

// GlobalMetrics is the singleton metrics instance.
var GlobalMetrics = &Metrics{}

// RecordPath records one completed path and its belief update count.
func (m *Metrics) RecordPath(updates int) {
	m.pathsCompleted.Add(1)
	m.beliefUpdates.Add(uint64(updates))
}

// RecordRun records one completed Monte Carlo run.
func (m *Metrics) RecordRun(d time.Duration) {
	m.runsCompleted.Add(1)
	m.runDurationNs.Add(int64(d))
}

// MetricsSnapshot is a point-in-time view of all metrics.
type MetricsSnapshot struct {
	PathsCompleted uint64
	BeliefUpdates  uint64
	RunsCompleted  uint64
	RunDuration    time.Duration
	Timestamp      time.Time
}

// Snapshot returns current metrics as a snapshot.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		PathsCompleted: m.pathsCompleted.Load(),
		BeliefUpdates:  m.beliefUpdates.Load(),
		RunsCompleted:  m.runsCompleted.Load(),
		RunDuration:    time.Duration(m.runDurationNs.Load()),
		Timestamp:      time.Now(),
	}
}

// Reset clears all metrics (for testing).
func (m *Metrics) Reset() {
	m.pathsCompleted.Store(0)
	m.beliefUpdates.Store(0)
	m.runsCompleted.Store(0)
	m.runDurationNs.Store(0)
}
