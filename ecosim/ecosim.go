// Package ecosim holds the configuration of the rabbits-and-foxes ecosystem
// simulation: the reproduction and starvation thresholds, the world dimensions,
// and the runner settings shared by the sequential and parallel executors.
package ecosim

import "github.com/pkg/errors"

// The number of integer fields in the plain simulation header
const numHeaderFields = 7

// Options The simulation parameters holder. The threshold and dimension fields
// are immutable for the lifetime of a run.
type Options struct {
	// The number of generations a rabbit must survive before it procreates
	GenProcRabbits int `yaml:"gen_proc_rabbits"`
	// The number of generations a fox must survive before it procreates
	GenProcFoxes int `yaml:"gen_proc_foxes"`
	// The number of generations a fox survives without eating a rabbit
	GenFoodFoxes int `yaml:"gen_food_foxes"`
	// The number of generations to simulate
	NumGenerations int `yaml:"num_generations"`
	// The world dimensions
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
	// The number of entity records following the header
	InitialPopulation int `yaml:"initial_population"`

	// The number of worker threads; values below 2 select the sequential executor
	Threads int `yaml:"threads"`

	// The log output level
	LogLevel string `yaml:"log_level"`
	// The flag to indicate whether every generation state should be dumped
	DumpState bool `yaml:"dump_state"`
	// The file path to store the per-generation census in NPZ format, or empty
	StatsFile string `yaml:"stats_file"`
}

// Validate is to check that the provided options comprise a runnable
// configuration.
func (o *Options) Validate() error {
	if o.Rows < 1 || o.Columns < 1 {
		return errors.Errorf("world dimensions must be positive, got: [%d x %d]", o.Rows, o.Columns)
	}
	if o.NumGenerations < 0 {
		return errors.Errorf("negative generation count: [%d]", o.NumGenerations)
	}
	if o.InitialPopulation < 0 {
		return errors.Errorf("negative initial population: [%d]", o.InitialPopulation)
	}
	if o.Threads < 1 {
		return errors.Errorf("thread count must be at least 1, got: [%d]", o.Threads)
	}
	if o.Threads > o.Rows {
		return errors.Errorf("thread count [%d] can not exceed row count [%d]", o.Threads, o.Rows)
	}
	return nil
}

// Sequential is to check if the options select single threaded execution
func (o *Options) Sequential() bool {
	return o.Threads < 2
}
