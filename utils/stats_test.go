package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(0, 100, 400, 0)
	if s.AveragePopulation != 100 || s.Density != 25 {
		t.Fatalf("got avg %v density %v, want 100 and 25", s.AveragePopulation, s.Density)
	}

	s.Update(1, 200, 400, 500*time.Millisecond)
	if s.AveragePopulation != 110 || s.Generation != 1 {
		t.Fatalf("got avg %v gen %d, want 110 and 1", s.AveragePopulation, s.Generation)
	}
	if s.GenerationsPerSecond != 2 {
		t.Fatalf("GenerationsPerSecond = %v, want 2", s.GenerationsPerSecond)
	}

	s.Update(2, 0, 400, 0)
	if !s.Extinct() || s.PeakPopulation != 200 || s.Density != 0 {
		t.Fatalf("got extinct=%v peak=%d density=%v", s.Extinct(), s.PeakPopulation, s.Density)
	}
}
