package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/digaso/rabbitsandfoxes/ecosim"
	"github.com/digaso/rabbitsandfoxes/ecosim/world"
	"github.com/digaso/rabbitsandfoxes/simulation"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// The simulation runner boilerplate code
func main() {
	var inPath = flag.String("in", "", "The world description file to load. Reads standard input when empty.")
	var outPath = flag.String("out", "", "The file to store the final state. Writes standard output when empty.")
	var settingsPath = flag.String("settings", "", "The optional YAML runner settings file.")
	var statsPath = flag.String("stats", "", "The optional NPZ file to store the per-generation census.")
	var logLevel = flag.String("log_level", "", "The logger level to be used. Overrides the one set in settings.")
	var dumpState = flag.Bool("dump_state", false, "Dump every generation state to standard output.")

	flag.Parse()

	// Runner settings come from the environment and the optional settings
	// file; command line flags override both.
	vp := viper.New()
	vp.SetEnvPrefix("rbf")
	vp.AutomaticEnv()
	vp.SetDefault("log_level", "error")
	vp.SetDefault("dump_state", false)
	vp.SetDefault("stats_file", "")
	if *settingsPath != "" {
		vp.SetConfigFile(*settingsPath)
		vp.SetConfigType("yaml")
		if err := vp.ReadInConfig(); err != nil {
			log.Fatal("Failed to read runner settings: ", err)
		}
	}
	if *logLevel != "" {
		vp.Set("log_level", *logLevel)
	}
	if *dumpState {
		vp.Set("dump_state", true)
	}
	if *statsPath != "" {
		vp.Set("stats_file", *statsPath)
	}

	// The single positional argument selects the worker count. A missing or
	// non numeric value selects sequential execution.
	threads := 1
	if flag.NArg() > 0 {
		if parsed := cast.ToInt(flag.Arg(0)); parsed > 0 {
			threads = parsed
		}
	}

	in := os.Stdin
	if *inPath != "" {
		file, err := os.Open(*inPath)
		if err != nil {
			log.Fatal("Failed to open world description file: ", err)
		}
		defer file.Close()
		in = file
	}

	// Load the simulation header followed by the entity placements
	opts, err := ecosim.LoadOptions(in)
	if err != nil {
		log.Fatal("Failed to load simulation parameters: ", err)
	}
	opts.Threads = threads
	opts.LogLevel = vp.GetString("log_level")
	opts.DumpState = vp.GetBool("dump_state")
	opts.StatsFile = vp.GetString("stats_file")

	if err = ecosim.InitLogger(opts.LogLevel); err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	if err = opts.Validate(); err != nil {
		log.Fatal("Invalid simulation configuration: ", err)
	}

	grid, err := world.ReadWorld(in, opts)
	if err != nil {
		log.Fatal("Failed to load initial world state: ", err)
	}

	ecosim.InfoLog("Initial population: %d, running %d generation(s) on %d thread(s)",
		opts.InitialPopulation, opts.NumGenerations, opts.Threads)

	// prepare to execute
	errChan := make(chan error)
	ctx, cancel := context.WithCancel(context.Background())

	executor := simulation.NewExecutor(opts)

	var run *simulation.Run

	// run simulation in the separate GO routine
	go func() {
		var execErr error
		run, execErr = executor.Execute(ctx, opts, grid)
		errChan <- execErr
	}()

	// register handler to wait for termination signals
	go func(cancel context.CancelFunc) {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
		select {
		case <-signals:
			// signal to stop the run
			cancel()
		case <-ctx.Done():
			// stop waiting
		}
	}(cancel)

	// Wait for simulation completion
	err = <-errChan
	cancel()
	if err != nil {
		log.Fatalf("Simulation execution failed: %s", err)
	}

	ecosim.InfoLog("Simulation took %s (%s per generation)",
		run.Duration, run.Generations.AvgDuration())

	// Emit the final state
	out := os.Stdout
	if *outPath != "" {
		file, err := os.Create(*outPath)
		if err != nil {
			log.Fatal("Failed to create results file: ", err)
		}
		defer file.Close()
		out = file
	}
	if err = grid.Write(out, opts); err != nil {
		log.Fatal("Failed to write simulation results: ", err)
	}

	// Save the census series in Numpy NPZ format if requested
	if opts.StatsFile != "" {
		statsFile, err := os.Create(opts.StatsFile)
		if err != nil {
			log.Fatal("Failed to create stats file: ", err)
		}
		defer statsFile.Close()
		if err = run.WriteNPZ(statsFile); err != nil {
			log.Fatal("Failed to save census statistics: ", err)
		}
	}
}
