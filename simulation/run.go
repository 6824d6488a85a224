package simulation

import (
	"io"
	"math"
	"time"

	"github.com/sbinet/npyio/npz"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Run The collected results of advancing one world through its configured
// number of generations. Useful for statistical analysis of population
// dynamics across a run.
type Run struct {
	// The number of worker threads the run used
	Threads int
	// The census per generation
	Generations Generations
	// The elapsed time between run start and finish
	Duration time.Duration
}

// WriteNPZ Dumps the per generation population series and their summary
// statistics to the NPZ file, ready for offline analysis.
func (r *Run) WriteNPZ(w io.Writer) error {
	rabbits := r.Generations.RabbitSeries()
	foxes := r.Generations.FoxSeries()
	entities := r.Generations.EntitySeries()

	// mean, variance per series
	summary := mat.NewDense(3, 2, nil)
	summary.SetRow(0, censusSummary(rabbits))
	summary.SetRow(1, censusSummary(foxes))
	summary.SetRow(2, censusSummary(entities))

	out := npz.NewWriter(w)
	if err := out.Write("summary", summary); err != nil {
		return err
	}
	if err := out.Write("generation_rabbits", rabbits); err != nil {
		return err
	}
	if err := out.Write("generation_foxes", foxes); err != nil {
		return err
	}
	if err := out.Write("generation_entities", entities); err != nil {
		return err
	}
	return out.Close()
}

// censusSummary reduces a population series to its sample mean and unbiased
// variance; a zero generation run yields NaN for both.
func censusSummary(series []float64) []float64 {
	if len(series) == 0 {
		return []float64{math.NaN(), math.NaN()}
	}
	mean, variance := stat.MeanVariance(series, nil)
	return []float64{mean, variance}
}
