package ecosim

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
	"io"
)

// LoadOptions is to load simulation parameters from the plain text header of
// the world description: seven whitespace separated integers in the order
// gen_proc_rabbits, gen_proc_foxes, gen_food_foxes, num_generations, rows,
// columns, initial_population. The entity records that follow the header are
// read separately by the world reader from the same stream.
func LoadOptions(r io.Reader) (*Options, error) {
	fields := make([]string, numHeaderFields)
	for i := range fields {
		if _, err := fmt.Fscan(r, &fields[i]); err != nil {
			return nil, errors.Wrapf(err, "failed to read header field %d of %d", i+1, numHeaderFields)
		}
	}

	opts := &Options{
		GenProcRabbits:    cast.ToInt(fields[0]),
		GenProcFoxes:      cast.ToInt(fields[1]),
		GenFoodFoxes:      cast.ToInt(fields[2]),
		NumGenerations:    cast.ToInt(fields[3]),
		Rows:              cast.ToInt(fields[4]),
		Columns:           cast.ToInt(fields[5]),
		InitialPopulation: cast.ToInt(fields[6]),
		Threads:           1,
		LogLevel:          "info",
	}
	return opts, nil
}

// LoadYAMLOptions is to load runner settings encoded as YAML file. Only the
// keys present in the document override the receiver-independent defaults, so
// a settings file carrying just log_level and threads is valid.
func LoadYAMLOptions(r io.Reader) (*Options, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	opts := Options{Threads: 1, LogLevel: "info"}
	if err = yaml.Unmarshal(content, &opts); err != nil {
		return nil, errors.Wrap(err, "failed to decode simulation options from YAML")
	}

	// initialize logger
	if err = InitLogger(opts.LogLevel); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}

	return &opts, nil
}
