package simulation

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/digaso/rabbitsandfoxes/ecosim"
	"github.com/digaso/rabbitsandfoxes/ecosim/world"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// GenerationExecutor Advances a world through the configured number of
// generations and collects the per generation census
type GenerationExecutor interface {
	// Execute runs the full simulation of the given options against the world.
	// The context only carries cancellation.
	Execute(ctx context.Context, opts *ecosim.Options, w *world.World) (*Run, error)
}

// NewExecutor picks the executor matching the thread count of the options:
// sequential below two threads, the band partitioned pool otherwise.
func NewExecutor(opts *ecosim.Options) GenerationExecutor {
	if opts.Sequential() {
		return &SequentialExecutor{}
	}
	return &ParallelExecutor{}
}

// SequentialExecutor The executor that ticks the whole grid in a single
// thread: one full snapshot per sub-phase, no conflict protocol and no band
// re-partitioning.
type SequentialExecutor struct{}

func (e *SequentialExecutor) Execute(ctx context.Context, opts *ecosim.Options, w *world.World) (*Run, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid simulation options")
	}

	ecosim.InfoLog(">>>>> Sequential run: %d generation(s) over %d x %d world",
		opts.NumGenerations, w.Rows, w.Columns)

	run := &Run{Threads: 1, Generations: make(Generations, 0, opts.NumGenerations)}
	started := time.Now()

	band := bandRange{start: 0, end: w.Rows - 1}
	wk := newWorker(0, nil, opts, w)

	for g := 0; g < opts.NumGenerations; g++ {
		select {
		case <-ctx.Done():
			return run, ctx.Err()
		default:
		}

		if opts.DumpState {
			fmt.Fprintf(os.Stdout, "Generation %d\n", g)
			w.DumpState(os.Stdout)
		}

		genStarted := time.Now()

		wk.snapshot = w.CopyRegion(band.start, band.end)
		w.ZeroRowCounts(band.start, band.end)
		wk.rabbitPhase(g, band)

		wk.snapshot = w.CopyRegion(band.start, band.end)
		wk.foxPhase(g, band)

		run.Generations = append(run.Generations, censusOf(g, w, genStarted))
	}

	run.Duration = time.Since(started)
	return run, nil
}

// ParallelExecutor The executor that cuts the rows into entity balanced bands
// and ticks them on a fixed pool of workers, one OS-thread-like goroutine per
// band, synchronized on the shared barrier and the conflict protocol.
type ParallelExecutor struct{}

func (e *ParallelExecutor) Execute(ctx context.Context, opts *ecosim.Options, w *world.World) (*Run, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid simulation options")
	}

	ecosim.InfoLog(">>>>> Parallel run: %d generation(s) over %d x %d world on %d workers",
		opts.NumGenerations, w.Rows, w.Columns, opts.Threads)

	p := newPool(opts, w)
	started := time.Now()

	group, gctx := errgroup.WithContext(ctx)
	for i := 0; i < p.size; i++ {
		wk := p.workers[i]
		group.Go(func() error {
			return p.runWorker(gctx, wk)
		})
	}
	err := group.Wait()

	p.run.Duration = time.Since(started)
	return p.run, err
}

// pool The shared state of one parallel run: the band table every worker
// consults after the generation barrier, the conflict semaphores, and the
// preceding chain that serializes the prefix sum update.
type pool struct {
	opts  *ecosim.Options
	world *world.World

	size    int
	bands   []bandRange
	workers []*worker

	barrier       *barrier
	conflictSems  []*countSem
	precedingSems []*countSem

	run *Run
	// set by worker 0 before the generation barrier, read by all after it
	stopped bool
	// the start instant of the current generation, kept by worker 0
	genStarted time.Time
}

func newPool(opts *ecosim.Options, w *world.World) *pool {
	p := &pool{
		opts:          opts,
		world:         w,
		size:          opts.Threads,
		bands:         make([]bandRange, opts.Threads),
		workers:       make([]*worker, opts.Threads),
		barrier:       newBarrier(opts.Threads),
		conflictSems:  make([]*countSem, opts.Threads),
		precedingSems: make([]*countSem, opts.Threads),
		run:           &Run{Threads: opts.Threads, Generations: make(Generations, 0, opts.NumGenerations)},
	}
	for i := 0; i < p.size; i++ {
		p.workers[i] = newWorker(i, p, opts, w)
		p.conflictSems[i] = newCountSem(2)
		p.precedingSems[i] = newCountSem(1)
	}
	partitionBands(w.CumulativeCounts(), p.bands)
	for i, band := range p.bands {
		ecosim.DebugLog("POOL: worker %d owns rows [%d, %d]", i, band.start, band.end)
	}
	return p
}

// runWorker loops one worker through all generations. Cancellation is decided
// by worker 0 and published through the barrier so the whole pool stops at the
// same generation boundary.
func (p *pool) runWorker(ctx context.Context, wk *worker) error {
	for g := 0; g < p.opts.NumGenerations; g++ {
		if wk.id == 0 && ctx.Err() != nil {
			p.stopped = true
		}
		p.barrier.Await()
		if p.stopped {
			if wk.id == 0 {
				return ctx.Err()
			}
			return nil
		}

		if wk.id == 0 {
			if p.opts.DumpState {
				fmt.Fprintf(os.Stdout, "Generation %d\n", g)
				p.world.DumpState(os.Stdout)
			}
			p.genStarted = time.Now()
		}

		wk.runGeneration(g)

		// the generation closed on the barrier inside the counter update; the
		// other workers can not write again before the next snapshot barrier,
		// so worker 0 reads a quiescent grid here
		if wk.id == 0 {
			p.run.Generations = append(p.run.Generations, censusOf(g, p.world, p.genStarted))
		}
	}
	return nil
}

// censusOf takes the population census of a finished generation.
func censusOf(g int, w *world.World, started time.Time) Generation {
	rabbits, foxes := w.Census()
	return Generation{
		Id:       g,
		Executed: time.Now(),
		Duration: time.Since(started),
		Rabbits:  rabbits,
		Foxes:    foxes,
		Rocks:    w.Rocks(),
	}
}
