package infra

import (
	"testing"
	"time"
)

func TestMetrics(t *testing.T) {
	m := &Metrics{}

	m.RecordPath(1000)
	m.RecordPath(1000)
	m.RecordRun(3 * time.Second)

	snap := m.Snapshot()
	if snap.PathsCompleted != 2 {
		t.Errorf("PathsCompleted = %d, want 2", snap.PathsCompleted)
	}
	if snap.BeliefUpdates != 2000 {
		t.Errorf("BeliefUpdates = %d, want 2000", snap.BeliefUpdates)
	}
	if snap.RunsCompleted != 1 {
		t.Errorf("RunsCompleted = %d, want 1", snap.RunsCompleted)
	}
	if snap.RunDuration != 3*time.Second {
		t.Errorf("RunDuration = %v, want 3s", snap.RunDuration)
	}

	m.Reset()
	snap = m.Snapshot()
	if snap.PathsCompleted != 0 || snap.BeliefUpdates != 0 || snap.RunsCompleted != 0 {
		t.Error("Reset did not clear counters")
	}
}
