package utils

import "time"

// Stats summarises a run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	FinalPopulation      int
	TotalGenerations     int
	StartTime            time.Time
	Elapsed              time.Duration
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the population after a round
func (s *Stats) Update(generation int, population int) {
	s.TotalGenerations = generation
	s.FinalPopulation = population
	s.Elapsed = time.Since(s.StartTime)
	if s.Elapsed > 0 {
		s.GenerationsPerSecond = float64(generation) / s.Elapsed.Seconds()
	}

	// Running mean over all rounds so far
	if generation <= 1 {
		s.AveragePopulation = float64(population)
	} else {
		n := float64(generation)
		s.AveragePopulation += (float64(population) - s.AveragePopulation) / n
	}
}
