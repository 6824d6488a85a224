package world

// RabbitMoves The reusable analysis buffer for a rabbit's legal moves. Only
// empty destinations are legal for rabbits: a cell holding a fox, another
// rabbit, or a rock is excluded entirely.
type RabbitMoves struct {
	Empty []Direction
}

// NewRabbitMoves creates an analysis buffer sized for the four directions.
func NewRabbitMoves() *RabbitMoves {
	return &RabbitMoves{Empty: make([]Direction, 0, len(AllDirections))}
}

// FoxMoves The reusable analysis buffer for a fox's legal moves, partitioned
// by destination content. Prey destinations take priority over empty ones when
// the destination is selected.
type FoxMoves struct {
	Empty []Direction
	Prey  []Direction
}

// NewFoxMoves creates an analysis buffer sized for the four directions.
func NewFoxMoves() *FoxMoves {
	return &FoxMoves{
		Empty: make([]Direction, 0, len(AllDirections)),
		Prey:  make([]Direction, 0, len(AllDirections)),
	}
}

// AnalyzeRabbitMoves fills the buffer with the empty-destination directions of
// the rabbit at (r, c), read from this snapshot. The cached direction list of
// the cell already excludes rocks and the world boundary.
func (rg *Region) AnalyzeRabbitMoves(r, c int, moves *RabbitMoves) {
	moves.Empty = moves.Empty[:0]
	for _, d := range rg.At(r, c).defaultDirs {
		nr, nc := d.Apply(r, c)
		if rg.At(nr, nc).Content == Empty {
			moves.Empty = append(moves.Empty, d)
		}
	}
}

// AnalyzeFoxMoves fills the buffer with the prey and empty destination
// directions of the fox at (r, c), read from this snapshot.
func (rg *Region) AnalyzeFoxMoves(r, c int, moves *FoxMoves) {
	moves.Empty = moves.Empty[:0]
	moves.Prey = moves.Prey[:0]
	for _, d := range rg.At(r, c).defaultDirs {
		nr, nc := d.Apply(r, c)
		switch rg.At(nr, nc).Content {
		case RabbitKind:
			moves.Prey = append(moves.Prey, d)
		case Empty:
			moves.Empty = append(moves.Empty, d)
		}
	}
}

// SelectDirection implements the deterministic movement selection: the agent
// at (r, c) in generation g picks index (g + r + c) mod len(dirs). The list
// must be non-empty.
func SelectDirection(dirs []Direction, g, r, c int) Direction {
	return dirs[(g+r+c)%len(dirs)]
}
