package simulation

import (
	"runtime"

	"github.com/digaso/rabbitsandfoxes/ecosim"
	"github.com/digaso/rabbitsandfoxes/ecosim/world"
)

// worker Executes the two sub-phase tick of one row band per generation. All
// rule reads come from the band snapshot; all writes go to the live grid,
// either directly for in-band destinations or through the conflict protocol
// for boundary crossings.
type worker struct {
	id   int
	pool *pool

	opts  *ecosim.Options
	world *world.World

	snapshot  *world.Region
	conflicts *conflictBuffers

	rabbitMoves *world.RabbitMoves
	foxMoves    *world.FoxMoves
}

func newWorker(id int, p *pool, opts *ecosim.Options, w *world.World) *worker {
	return &worker{
		id:          id,
		pool:        p,
		opts:        opts,
		world:       w,
		conflicts:   newConflictBuffers(w.Columns),
		rabbitMoves: world.NewRabbitMoves(),
		foxMoves:    world.NewFoxMoves(),
	}
}

// runGeneration advances the worker's band through one complete generation of
// the parallel schedule: snapshot, rabbit sub-phase, conflict exchange,
// re-snapshot, fox sub-phase, conflict exchange, serialized counter update and
// re-partition.
func (wk *worker) runGeneration(g int) {
	band := wk.pool.bands[wk.id]

	// halo rows let the analyzer look one row past the band
	copyStart, copyEnd := band.start, band.end
	if copyStart > 0 {
		copyStart--
	}
	if copyEnd < wk.world.Rows-1 {
		copyEnd++
	}

	wk.snapshot = wk.world.CopyRegion(copyStart, copyEnd)
	wk.pool.barrier.Await()

	wk.conflicts.reset()
	wk.world.ZeroRowCounts(band.start, band.end)
	wk.rabbitPhase(g, band)
	wk.exchangeConflicts(band)
	wk.pool.barrier.Await()

	wk.snapshot = wk.world.CopyRegion(copyStart, copyEnd)
	wk.pool.barrier.Await()

	wk.conflicts.reset()
	wk.foxPhase(g, band)
	wk.exchangeConflicts(band)

	wk.updateCumulativeCounts(band)
}

// rabbitPhase runs the rabbit rules over every rabbit of the band snapshot in
// row-major order.
func (wk *worker) rabbitPhase(g int, band bandRange) {
	for r := band.start; r <= band.end; r++ {
		for c := 0; c < wk.world.Columns; c++ {
			slot := wk.snapshot.At(r, c)
			if slot.Content != world.RabbitKind {
				continue
			}
			wk.snapshot.AnalyzeRabbitMoves(r, c, wk.rabbitMoves)
			wk.rabbitTurn(g, band, r, c, slot.Rabbit)
		}
	}
}

// rabbitTurn ages, procreates and moves a single rabbit. A destination outside
// the band is enqueued as a conflict and resolved later by the owning
// neighbor; the record is considered moved either way.
func (wk *worker) rabbitTurn(g int, band bandRange, r, c int, rabbit *world.Rabbit) {
	procreated := false

	if len(wk.rabbitMoves.Empty) > 0 {
		dir := world.SelectDirection(wk.rabbitMoves.Empty, g, r, c)
		destRow, destCol := dir.Apply(r, c)

		src := wk.world.At(r, c)
		if rabbit.Age >= wk.opts.GenProcRabbits {
			// old enough: a fresh born rabbit stays behind at the source
			born := world.NewRabbit()
			born.GenUpdated = g
			src.Rabbit = born
			rabbit.GenUpdated = g
			rabbit.PrevAge = 0
			rabbit.Age = 0
			wk.world.IncRowCount(r)
			procreated = true
		} else {
			src.Clear()
		}

		if !band.contains(destRow) {
			wk.conflicts.add(destRow < band.start, destRow, destCol, wk.snapshot.At(r, c))
		} else if world.MoveRabbit(rabbit, wk.world.At(destRow, destCol)) == world.MovedToEmpty {
			// a lost conflict drops the record; the winner keeps the slot
			wk.world.IncRowCount(destRow)
		}
	} else {
		// boxed in: the rabbit stays where it is and ages
		wk.world.IncRowCount(r)
	}

	// age after performing the move but before conflict resolution, so the
	// skew rule sees a consistent update generation on both sides
	if !procreated {
		rabbit.PrevAge = rabbit.Age
		rabbit.GenUpdated = g
		rabbit.Age++
	}
}

// foxPhase runs the fox rules over every fox of the band snapshot in row-major
// order.
func (wk *worker) foxPhase(g int, band bandRange) {
	for r := band.start; r <= band.end; r++ {
		for c := 0; c < wk.world.Columns; c++ {
			slot := wk.snapshot.At(r, c)
			if slot.Content != world.FoxKind {
				continue
			}
			wk.snapshot.AnalyzeFoxMoves(r, c, wk.foxMoves)
			wk.foxTurn(g, band, r, c, slot.Fox)
		}
	}
}

// foxTurn ages, starves, procreates and moves a single fox. Hunger rises
// before the starvation check so a fox with no prey in reach dies before it
// could move.
func (wk *worker) foxTurn(g int, band bandRange, r, c int, fox *world.Fox) {
	fox.FoodAge++

	if len(wk.foxMoves.Prey) == 0 && fox.FoodAge >= wk.opts.GenFoodFoxes {
		wk.world.At(r, c).Clear()
		return
	}

	canMove := len(wk.foxMoves.Prey) > 0 || len(wk.foxMoves.Empty) > 0
	procreated := false

	if canMove {
		src := wk.world.At(r, c)
		if fox.ProcAge >= wk.opts.GenProcFoxes {
			born := world.NewFox()
			born.GenUpdated = g
			src.Fox = born
			wk.world.IncRowCount(r)
			fox.GenUpdated = g
			fox.PrevProcAge = fox.ProcAge
			fox.ProcAge = 0
			procreated = true
		} else {
			src.Clear()
		}
	}

	// presumed successful while a boundary crossing waits for resolution
	result := world.MovedToEmpty

	if canMove {
		dirs := wk.foxMoves.Prey
		if len(dirs) == 0 {
			dirs = wk.foxMoves.Empty
		}
		dir := world.SelectDirection(dirs, g, r, c)
		destRow, destCol := dir.Apply(r, c)

		if !band.contains(destRow) {
			wk.conflicts.add(destRow < band.start, destRow, destCol, wk.snapshot.At(r, c))
		} else {
			result = world.MoveFox(fox, wk.world.At(destRow, destCol))
			if result == world.MovedToEmpty {
				wk.world.IncRowCount(destRow)
			}
		}
	} else {
		wk.world.IncRowCount(r)
	}

	if !procreated {
		fox.GenUpdated = g
		fox.PrevProcAge = fox.ProcAge
	}

	if result.Occupies() {
		if !procreated {
			fox.ProcAge++
		}
		if result == world.KilledPrey {
			fox.FoodAge = 0
		}
	}
}

// resolveConflicts applies the boundary crossing moves a neighbor produced
// against this worker's live band.
func (wk *worker) resolveConflicts(band bandRange, conflicts []conflict) {
	for i := range conflicts {
		cf := &conflicts[i]

		if !band.contains(cf.destRow) {
			ecosim.ErrorLog("conflict destination row %d lies outside resolving band [%d, %d]; conflict skipped",
				cf.destRow, band.start, band.end)
			continue
		}

		dst := wk.world.At(cf.destRow, cf.destCol)
		switch cf.kind {
		case world.RabbitKind:
			if world.MoveRabbit(cf.rabbit, dst) == world.MovedToEmpty {
				wk.world.IncRowCount(cf.destRow)
			}
		case world.FoxKind:
			switch world.MoveFox(cf.fox, dst) {
			case world.MovedToEmpty:
				wk.world.IncRowCount(cf.destRow)
			case world.KilledPrey:
				// hunger was already raised during the fox's own turn
				cf.fox.FoodAge = 0
			}
		}
	}
}

// exchangeConflicts synchronizes with the band neighbors and resolves the
// conflicts they enqueued for this worker's rows. Every worker posts its own
// semaphore once per neighbor; interior workers service whichever neighbor is
// ready first instead of blocking on a fixed order.
func (wk *worker) exchangeConflicts(band bandRange) {
	p := wk.pool
	if p.size < 2 {
		return
	}

	own := p.conflictSems[wk.id]
	switch {
	case wk.id == 0:
		own.post()
		p.conflictSems[wk.id+1].wait()
		wk.resolveConflicts(band, p.workers[wk.id+1].conflicts.above)

	case wk.id < p.size-1:
		own.post()
		own.post()

		top, bottom := wk.id-1, wk.id+1
		topDone, bottomDone := false, false
		for !topDone || !bottomDone {
			if !topDone && p.conflictSems[top].tryWait() {
				wk.resolveConflicts(band, p.workers[top].conflicts.below)
				topDone = true
			}
			if !bottomDone && p.conflictSems[bottom].tryWait() {
				wk.resolveConflicts(band, p.workers[bottom].conflicts.above)
				bottomDone = true
			}
			runtime.Gosched()
		}

	default:
		own.post()
		p.conflictSems[wk.id-1].wait()
		wk.resolveConflicts(band, p.workers[wk.id-1].conflicts.below)
	}
}

// updateCumulativeCounts folds the worker's per-row counts into the global
// prefix sums under the preceding worker chain, lets the last worker re-cut
// the bands for the next generation, and closes the generation on the shared
// barrier.
func (wk *worker) updateCumulativeCounts(band bandRange) {
	p := wk.pool

	if wk.id > 0 {
		p.precedingSems[wk.id-1].wait()
	}

	wk.world.UpdateCumulativeCounts(band.start, band.end)

	if wk.id == p.size-1 {
		partitionBands(wk.world.CumulativeCounts(), p.bands)
	} else {
		p.precedingSems[wk.id].post()
	}

	p.barrier.Await()
}
