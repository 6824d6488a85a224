package world

import "github.com/digaso/rabbitsandfoxes/ecosim"

// Rabbit The per-agent record of a rabbit. A record is owned by exactly one
// slot at a time; moving a rabbit transfers the record to the destination slot.
type Rabbit struct {
	// The generations survived since birth or since the last procreation
	Age int
	// The value of Age before the last update
	PrevAge int
	// The last generation in which this record was mutated
	GenUpdated int
}

// NewRabbit creates a fresh born rabbit record.
func NewRabbit() *Rabbit {
	return &Rabbit{}
}

// MoveResult The outcome of applying an agent move to a live destination slot
type MoveResult int

const (
	// MoveLost The mover lost a same species conflict and must be destroyed
	MoveLost MoveResult = iota
	// MovedToEmpty The destination was empty and the mover now occupies it
	MovedToEmpty
	// WonConflict The mover displaced a same species occupier, which was destroyed
	WonConflict
	// KilledPrey The fox ate the rabbit at the destination and occupies it
	KilledPrey
	// MoveIllegal The destination can never be entered; indicates an analyzer bug
	MoveIllegal
)

// Occupies reports whether the mover holds the destination slot after the move.
func (r MoveResult) Occupies() bool {
	return r == MovedToEmpty || r == WonConflict || r == KilledPrey
}

// MoveRabbit applies the move of the given rabbit into the destination slot of
// the live grid and resolves any same species conflict found there. The age
// comparison normalizes both records to the same generation instant: whichever
// record was updated in an earlier generation has its age raised by one.
func MoveRabbit(mover *Rabbit, dst *Slot) MoveResult {
	switch dst.Content {
	case RabbitKind:
		moverAge, occupierAge := effectiveAges(mover.GenUpdated, mover.Age, dst.Rabbit.GenUpdated, dst.Rabbit.Age)
		if moverAge > occupierAge {
			dst.Rabbit = mover
			return WonConflict
		}
		return MoveLost
	case Empty:
		dst.Content = RabbitKind
		dst.Rabbit = mover
		return MovedToEmpty
	}
	ecosim.ErrorLog("attempt to move a rabbit onto %v", dst.Content)
	return MoveIllegal
}

// effectiveAges normalizes the ages of a mover and an occupier updated in
// possibly different generations to a common instant.
func effectiveAges(moverGen, moverAge, occupierGen, occupierAge int) (int, int) {
	if moverGen > occupierGen {
		return moverAge, occupierAge + 1
	}
	if moverGen < occupierGen {
		return moverAge + 1, occupierAge
	}
	return moverAge, occupierAge
}
