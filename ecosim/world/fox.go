package world

import "github.com/digaso/rabbitsandfoxes/ecosim"

// Fox The per-agent record of a fox. Ownership follows the same single slot
// rule as for rabbits.
type Fox struct {
	// The generations survived since birth or since the last procreation
	ProcAge int
	// The generations since the last meal
	FoodAge int
	// The value of ProcAge before the last update
	PrevProcAge int
	// The last generation in which this record was mutated
	GenUpdated int
}

// NewFox creates a fresh born fox record.
func NewFox() *Fox {
	return &Fox{}
}

// MoveFox applies the move of the given fox into the destination slot of the
// live grid. A rabbit found there is destroyed and eaten. A fox found there is
// a same species conflict: the higher effective procreation age wins, on a tie
// the less hungry fox wins, and on an exact tie the occupier stays.
func MoveFox(mover *Fox, dst *Slot) MoveResult {
	switch dst.Content {
	case FoxKind:
		moverAge, occupierAge := effectiveAges(mover.GenUpdated, mover.ProcAge, dst.Fox.GenUpdated, dst.Fox.ProcAge)
		if moverAge > occupierAge {
			dst.Fox = mover
			return WonConflict
		}
		if moverAge == occupierAge && mover.FoodAge < dst.Fox.FoodAge {
			dst.Fox = mover
			return WonConflict
		}
		return MoveLost
	case RabbitKind:
		dst.Content = FoxKind
		dst.Rabbit = nil
		dst.Fox = mover
		return KilledPrey
	case Empty:
		dst.Content = FoxKind
		dst.Fox = mover
		return MovedToEmpty
	}
	ecosim.ErrorLog("attempt to move a fox onto %v", dst.Content)
	return MoveIllegal
}
