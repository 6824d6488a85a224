package ecosim

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func validOptions() *Options {
	return &Options{
		GenProcRabbits:    3,
		GenProcFoxes:      4,
		GenFoodFoxes:      5,
		NumGenerations:    10,
		Rows:              8,
		Columns:           8,
		InitialPopulation: 4,
		Threads:           2,
		LogLevel:          "info",
	}
}

func TestOptions_Validate(t *testing.T) {
	assert.NoError(t, validOptions().Validate())
}

func TestOptions_Validate_invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(o *Options)
	}{
		{"zero rows", func(o *Options) { o.Rows = 0 }},
		{"zero columns", func(o *Options) { o.Columns = 0 }},
		{"negative generations", func(o *Options) { o.NumGenerations = -1 }},
		{"negative population", func(o *Options) { o.InitialPopulation = -1 }},
		{"zero threads", func(o *Options) { o.Threads = 0 }},
		{"threads exceed rows", func(o *Options) { o.Threads = 9 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts := validOptions()
			c.mutate(opts)
			assert.Error(t, opts.Validate())
		})
	}
}

func TestOptions_Sequential(t *testing.T) {
	opts := validOptions()
	opts.Threads = 1
	assert.True(t, opts.Sequential())

	opts.Threads = 2
	assert.False(t, opts.Sequential())
}
