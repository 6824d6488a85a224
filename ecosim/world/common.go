// Package world holds the grid model of the ecosystem: the packed slot matrix,
// the rabbit and fox records, the neighborhood analyzer, and the movement
// resolution rules applied when an agent enters an occupied cell.
package world

import "github.com/pkg/errors"

// Kind The content tag of a world slot
type Kind byte

const (
	// Empty The slot holds nothing
	Empty Kind = iota
	// Rock The slot holds a static obstacle
	Rock
	// RabbitKind The slot holds a rabbit record
	RabbitKind
	// FoxKind The slot holds a fox record
	FoxKind
)

// String returns the record name of the kind as it appears in the world
// description files.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "EMPTY"
	case Rock:
		return "ROCK"
	case RabbitKind:
		return "RABBIT"
	case FoxKind:
		return "FOX"
	}
	return "UNKNOWN"
}

// KindOf parses the record name of a kind from the world description files.
func KindOf(name string) (Kind, error) {
	switch name {
	case "ROCK":
		return Rock, nil
	case "RABBIT":
		return RabbitKind, nil
	case "FOX":
		return FoxKind, nil
	}
	return Empty, errors.Errorf("unknown entity kind: [%s]", name)
}

// Direction The compass direction of a single cell move
type Direction byte

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections The four directions in the fixed scan order used everywhere a
// direction list is built or consumed. Published once; never mutated.
var AllDirections = [...]Direction{North, East, South, West}

// The row/column offsets per direction, indexed by Direction
var moveVectors = [...][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// Apply returns the coordinates one step away from (r, c) in this direction.
func (d Direction) Apply(r, c int) (int, int) {
	v := moveVectors[d]
	return r + v[0], c + v[1]
}
