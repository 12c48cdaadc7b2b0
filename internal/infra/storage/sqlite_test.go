package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Cava11/Glosten-and-Milgorm-model/internal/domain"
)

func setupTestDB(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return s
}

func sampleRun() *domain.SimulationRun {
	return &domain.SimulationRun{
		VHigh:  101,
		VLow:   99,
		Mu:     0.2,
		Delta0: 0.5,
		Ticks:  3,
		Paths:  10,
		Seed:   42,
		Policy: "simplified",
	}
}

func sampleResult() *domain.AggregateResult {
	r := domain.NewAggregateResult(3)
	for t := 0; t < 3; t++ {
		r.Spread[t] = 0.2 - 0.01*float64(t)
		r.Belief[t] = 0.5 - 0.1*float64(t)
		r.Fundamental[t] = 100
		r.Ask[t] = 100.1
		r.Bid[t] = 99.9
	}
	return r
}

func TestSaveAndLoadRun(t *testing.T) {
	s := setupTestDB(t)

	run := sampleRun()
	result := sampleResult()

	id, err := s.SaveRun(run, result)
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveRun returned empty id")
	}

	fetched, err := s.GetRun(id)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if fetched.Mu != 0.2 || fetched.Ticks != 3 || fetched.Policy != "simplified" {
		t.Errorf("fetched run does not match: %+v", fetched)
	}

	series, err := s.LoadSeries(id)
	if err != nil {
		t.Fatalf("LoadSeries failed: %v", err)
	}
	if series.Len() != result.Len() {
		t.Fatalf("series length %d, want %d", series.Len(), result.Len())
	}
	for i := 0; i < result.Len(); i++ {
		if series.Spread[i] != result.Spread[i] || series.Belief[i] != result.Belief[i] {
			t.Errorf("tick %d: series diverged after round-trip", i)
		}
	}
}

func TestListRuns(t *testing.T) {
	s := setupTestDB(t)

	for i := 0; i < 3; i++ {
		if _, err := s.SaveRun(sampleRun(), sampleResult()); err != nil {
			t.Fatalf("SaveRun %d failed: %v", i, err)
		}
	}

	runs, err := s.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("expected 3 runs, got %d", len(runs))
	}
}

func TestDeleteRun(t *testing.T) {
	s := setupTestDB(t)

	id, err := s.SaveRun(sampleRun(), sampleResult())
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	if err := s.DeleteRun(id); err != nil {
		t.Fatalf("DeleteRun failed: %v", err)
	}

	if _, err := s.GetRun(id); !errors.Is(err, domain.ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
	if _, err := s.LoadSeries(id); !errors.Is(err, domain.ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound for series, got %v", err)
	}
}

func TestUnknownRun(t *testing.T) {
	s := setupTestDB(t)

	if _, err := s.GetRun("no-such-run"); !errors.Is(err, domain.ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}
