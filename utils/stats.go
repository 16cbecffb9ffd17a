package utils

import "time"

// Stats tracks population and throughput of a running simulation.
type Stats struct {
	Generation           int
	Population           int
	PeakPopulation       int
	Density              float64 // percent of cells alive
	AveragePopulation    float64
	GenerationsPerSecond float64
	StartTime            time.Time
}

// NewStats starts the runtime clock.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one observed generation of population live cells out of
// cells, drawn frameDuration after the previous one.
func (s *Stats) Update(generation, population, cells int, frameDuration time.Duration) {
	s.Generation = generation
	s.Population = population
	s.PeakPopulation = max(s.PeakPopulation, population)
	if cells > 0 {
		s.Density = float64(population) / float64(cells) * 100
	}
	if frameDuration > 0 {
		s.GenerationsPerSecond = 1.0 / frameDuration.Seconds()
	}

	// Exponential moving average, seeded by the first observation
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns how long the simulation has been running.
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

// Extinct reports whether the last observed generation had no live cells.
func (s *Stats) Extinct() bool {
	return s.Population == 0
}
