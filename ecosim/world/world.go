package world

// Slot A single cell of the world grid. The content tag says what the cell
// holds; at most one of the record pointers is set, and only when the tag is
// RabbitKind or FoxKind. The cached direction list is computed once at load
// and never mutated afterwards.
type Slot struct {
	Content Kind
	Rabbit  *Rabbit
	Fox     *Fox

	// in-bounds, non-rock directions from this cell in fixed scan order
	defaultDirs []Direction
}

// Directions returns the cached in-bounds, non-rock directions of the slot.
func (s *Slot) Directions() []Direction {
	return s.defaultDirs
}

// Clear empties the slot without touching the cached directions.
func (s *Slot) Clear() {
	s.Content = Empty
	s.Rabbit = nil
	s.Fox = nil
}

// World The live simulation grid together with the per-row entity counters
// used by the band partitioner. Slots are packed row-major.
type World struct {
	Rows    int
	Columns int

	slots []Slot

	// live count of rabbits and foxes per row, refreshed every generation
	entitiesPerRow []int
	// prefix sums of entitiesPerRow, refreshed under the serialized chain
	entitiesCum []int
	// the number of rocks placed at load
	rocks int
}

// NewWorld creates an empty world of the given dimensions.
func NewWorld(rows, columns int) *World {
	return &World{
		Rows:           rows,
		Columns:        columns,
		slots:          make([]Slot, rows*columns),
		entitiesPerRow: make([]int, rows),
		entitiesCum:    make([]int, rows),
	}
}

// At returns the live slot at (r, c).
func (w *World) At(r, c int) *Slot {
	return &w.slots[r*w.Columns+c]
}

// InBounds reports whether (r, c) lies on the grid.
func (w *World) InBounds(r, c int) bool {
	return r >= 0 && c >= 0 && r < w.Rows && c < w.Columns
}

// InitializeCounts computes the cached direction list of every slot, the
// per-row and cumulative entity counts, and the rock total. Called once after
// the initial placements are loaded.
func (w *World) InitializeCounts() {
	total := 0
	rocks := 0
	for r := 0; r < w.Rows; r++ {
		inRow := 0
		for c := 0; c < w.Columns; c++ {
			slot := w.At(r, c)
			slot.defaultDirs = w.legalDirections(r, c)
			switch slot.Content {
			case RabbitKind, FoxKind:
				total++
				inRow++
			case Rock:
				rocks++
			}
		}
		w.entitiesPerRow[r] = inRow
		w.entitiesCum[r] = total
	}
	w.rocks = rocks
}

// legalDirections lists the in-bounds, non-rock directions from (r, c). When
// all four are legal the shared all-directions array is reused.
func (w *World) legalDirections(r, c int) []Direction {
	legal := make([]Direction, 0, len(AllDirections))
	for _, d := range AllDirections {
		nr, nc := d.Apply(r, c)
		if !w.InBounds(nr, nc) {
			continue
		}
		if w.At(nr, nc).Content == Rock {
			continue
		}
		legal = append(legal, d)
	}
	if len(legal) == len(AllDirections) {
		return AllDirections[:]
	}
	return legal
}

// ZeroRowCounts resets the live per-row counters of rows [start, end].
func (w *World) ZeroRowCounts(start, end int) {
	for r := start; r <= end; r++ {
		w.entitiesPerRow[r] = 0
	}
}

// IncRowCount bumps the live counter of row r by one.
func (w *World) IncRowCount(r int) {
	w.entitiesPerRow[r]++
}

// RowCount returns the live counter of row r.
func (w *World) RowCount(r int) int {
	return w.entitiesPerRow[r]
}

// CumulativeCount returns the prefix sum of entity counts up to row r inclusive.
func (w *World) CumulativeCount(r int) int {
	return w.entitiesCum[r]
}

// UpdateCumulativeCounts recomputes the prefix sums of rows [start, end] from
// the live per-row counters. The caller serializes invocations so that the
// counts of row start-1 are final when this runs.
func (w *World) UpdateCumulativeCounts(start, end int) {
	for r := start; r <= end; r++ {
		prev := 0
		if r > 0 {
			prev = w.entitiesCum[r-1]
		}
		w.entitiesCum[r] = prev + w.entitiesPerRow[r]
	}
}

// CumulativeCounts exposes the prefix sum array for the band partitioner.
// Callers must treat it as read-only.
func (w *World) CumulativeCounts() []int {
	return w.entitiesCum
}

// Rocks returns the number of rocks placed at load.
func (w *World) Rocks() int {
	return w.rocks
}

// Census scans the grid and counts the live rabbits and foxes.
func (w *World) Census() (rabbits, foxes int) {
	for i := range w.slots {
		switch w.slots[i].Content {
		case RabbitKind:
			rabbits++
		case FoxKind:
			foxes++
		}
	}
	return rabbits, foxes
}

// TotalEntities counts the non-empty cells, rocks included. This is the entity
// total the results header carries.
func (w *World) TotalEntities() int {
	total := 0
	for i := range w.slots {
		if w.slots[i].Content != Empty {
			total++
		}
	}
	return total
}

// Region An immutable copy of a contiguous row range of the world, read during
// a sub-phase while the live grid is being mutated. Agent record pointers are
// shared with the live grid; the content tags are the frozen part.
type Region struct {
	startRow int
	columns  int
	slots    []Slot
}

// CopyRegion snapshots rows [start, end] of the world.
func (w *World) CopyRegion(start, end int) *Region {
	n := (end - start + 1) * w.Columns
	slots := make([]Slot, n)
	copy(slots, w.slots[start*w.Columns:start*w.Columns+n])
	return &Region{startRow: start, columns: w.Columns, slots: slots}
}

// At returns the snapshot slot at the absolute coordinates (r, c). The row must
// lie inside the copied range.
func (rg *Region) At(r, c int) *Slot {
	return &rg.slots[(r-rg.startRow)*rg.columns+c]
}
