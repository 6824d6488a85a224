package simulation

import "time"

// Generation The census taken at the end of one complete generation tick
type Generation struct {
	// The generation index, starting at zero
	Id int
	// The time when the generation finished
	Executed time.Time
	// The elapsed time of the generation tick
	Duration time.Duration

	// The live population at the end of the generation
	Rabbits int
	Foxes   int
	// The number of static obstacles (constant over a run)
	Rocks int
}

// Entities returns the number of live agents at the end of the generation.
func (g *Generation) Entities() int {
	return g.Rabbits + g.Foxes
}

// Generations The ordered census records of a run
type Generations []Generation

// RabbitSeries The rabbit population per generation
func (gs Generations) RabbitSeries() []float64 {
	x := make([]float64, len(gs))
	for i := range gs {
		x[i] = float64(gs[i].Rabbits)
	}
	return x
}

// FoxSeries The fox population per generation
func (gs Generations) FoxSeries() []float64 {
	x := make([]float64, len(gs))
	for i := range gs {
		x[i] = float64(gs[i].Foxes)
	}
	return x
}

// EntitySeries The live agent total per generation
func (gs Generations) EntitySeries() []float64 {
	x := make([]float64, len(gs))
	for i := range gs {
		x[i] = float64(gs[i].Entities())
	}
	return x
}

// AvgDuration Calculates the average duration of the generation ticks
func (gs Generations) AvgDuration() time.Duration {
	if len(gs) == 0 {
		return 0
	}
	total := time.Duration(0)
	for i := range gs {
		total += gs[i].Duration
	}
	return total / time.Duration(len(gs))
}
