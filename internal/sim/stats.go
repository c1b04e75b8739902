package sim

import "sparse-life/pkg/life"

// Stats summarizes the run so far.
type Stats struct {
	Generation        uint64
	Population        int
	PeakPopulation    int
	Births            int
	Deaths            int
	AveragePopulation float64
	// StillGenerations counts consecutive steps that changed nothing.
	StillGenerations int
}

func newStats(population int) Stats {
	return Stats{
		Population:        population,
		PeakPopulation:    population,
		AveragePopulation: float64(population),
	}
}

// record folds one completed step into the stats.
func (s *Stats) record(gen uint64, population int, t life.Transition) {
	s.Generation = gen
	s.Population = population
	s.Births = len(t.Born)
	s.Deaths = len(t.Killed)
	if population > s.PeakPopulation {
		s.PeakPopulation = population
	}
	s.AveragePopulation = s.AveragePopulation*0.9 + float64(population)*0.1
	if t.Empty() {
		s.StillGenerations++
	} else {
		s.StillGenerations = 0
	}
}

// Extinct reports whether every cell has died.
func (s Stats) Extinct() bool { return s.Population == 0 }
