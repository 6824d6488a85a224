package simulation

import (
	"context"

	"github.com/digaso/rabbitsandfoxes/ecosim/world"
	"golang.org/x/sync/semaphore"
)

// conflict A pending move whose destination row lies outside the enqueuing
// worker's band. The conflict holds the agent record taken from the band
// snapshot; the source cell was already cleared (or handed a fresh born agent)
// when the move was enqueued, and the owning neighbor applies the move against
// its live band.
type conflict struct {
	destRow int
	destCol int
	kind    world.Kind
	rabbit  *world.Rabbit
	fox     *world.Fox
}

// conflictBuffers The per worker conflict stores: above holds moves whose
// destination row precedes the band, below the ones past it. A sub-phase can
// produce at most one boundary crossing per column per side, so the buffers
// are sized once to the world width.
type conflictBuffers struct {
	above []conflict
	below []conflict
}

func newConflictBuffers(columns int) *conflictBuffers {
	return &conflictBuffers{
		above: make([]conflict, 0, columns),
		below: make([]conflict, 0, columns),
	}
}

// reset drops the stored conflicts, keeping the arrays for reuse. Each worker
// resets only its own buffers, so no synchronization is required.
func (b *conflictBuffers) reset() {
	b.above = b.above[:0]
	b.below = b.below[:0]
}

// add stores a boundary crossing move for later resolution by the neighbor
// owning the destination row.
func (b *conflictBuffers) add(isAbove bool, destRow, destCol int, slot *world.Slot) {
	cf := conflict{
		destRow: destRow,
		destCol: destCol,
		kind:    slot.Content,
		rabbit:  slot.Rabbit,
		fox:     slot.Fox,
	}
	if isAbove {
		b.above = append(b.above, cf)
	} else {
		b.below = append(b.below, cf)
	}
}

// countSem A counting semaphore with post/wait semantics starting at zero.
// Built over the weighted semaphore so consumers can make non-blocking
// progress attempts while servicing two producers.
type countSem struct {
	w *semaphore.Weighted
}

func newCountSem(capacity int64) *countSem {
	s := &countSem{w: semaphore.NewWeighted(capacity)}
	// drain the full capacity so the semaphore starts at zero
	_ = s.w.Acquire(context.Background(), capacity)
	return s
}

func (s *countSem) post() {
	s.w.Release(1)
}

func (s *countSem) wait() {
	_ = s.w.Acquire(context.Background(), 1)
}

func (s *countSem) tryWait() bool {
	return s.w.TryAcquire(1)
}
