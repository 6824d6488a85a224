// Package simulation implements the generation engine of the ecosystem: the
// band partitioned worker pool, the two sub-phase tick with snapshot reads and
// live grid writes, the cross band conflict protocol, and the executors that
// advance a world through the configured number of generations while
// collecting per generation census statistics.
package simulation

import "sync"

// barrier A reusable cycle barrier for a fixed size worker pool. Every party
// blocks in Await until all parties of the cycle arrived; the barrier then
// releases them together and resets for the next cycle.
type barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	cycle   uint64
}

func newBarrier(parties int) *barrier {
	b := &barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Await blocks until all parties of the current cycle arrived.
func (b *barrier) Await() {
	b.mu.Lock()
	cycle := b.cycle
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.cycle++
		b.cond.Broadcast()
	} else {
		for cycle == b.cycle {
			b.cond.Wait()
		}
	}
	b.mu.Unlock()
}
