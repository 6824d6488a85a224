package world

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestWorld_InitializeCounts(t *testing.T) {
	w := buildWorld(3, 3, func(w *World) {
		placeRock(w, 0, 0)
		placeRabbit(w, 0, 1)
		placeFox(w, 1, 1)
		placeRabbit(w, 2, 2)
	})

	assert.Equal(t, 1, w.RowCount(0))
	assert.Equal(t, 1, w.RowCount(1))
	assert.Equal(t, 1, w.RowCount(2))
	assert.Equal(t, 1, w.CumulativeCount(0))
	assert.Equal(t, 2, w.CumulativeCount(1))
	assert.Equal(t, 3, w.CumulativeCount(2))
	assert.Equal(t, 1, w.Rocks())
	assert.Equal(t, 4, w.TotalEntities())

	rabbits, foxes := w.Census()
	assert.Equal(t, 2, rabbits)
	assert.Equal(t, 1, foxes)
}

func TestWorld_directionCache(t *testing.T) {
	w := buildWorld(3, 3, func(w *World) {
		placeRock(w, 1, 2)
	})

	// interior cell blocked by the rock to its east
	assert.Equal(t, []Direction{North, South, West}, w.At(1, 1).Directions())
	// corner cell
	assert.Equal(t, []Direction{East, South}, w.At(0, 0).Directions())
	// all four legal: the shared all-directions array is reused
	center := buildWorld(5, 5, nil)
	assert.Equal(t, AllDirections[:], center.At(2, 2).Directions())
}

func TestWorld_UpdateCumulativeCounts(t *testing.T) {
	w := buildWorld(4, 2, func(w *World) {
		placeRabbit(w, 0, 0)
		placeRabbit(w, 2, 0)
		placeRabbit(w, 2, 1)
	})

	// simulate a generation that moved the row 0 rabbit to row 1
	w.ZeroRowCounts(0, 3)
	w.IncRowCount(1)
	w.IncRowCount(2)
	w.IncRowCount(2)
	w.UpdateCumulativeCounts(0, 3)

	assert.Equal(t, 0, w.CumulativeCount(0))
	assert.Equal(t, 1, w.CumulativeCount(1))
	assert.Equal(t, 3, w.CumulativeCount(2))
	assert.Equal(t, 3, w.CumulativeCount(3))
}

func TestWorld_CopyRegion(t *testing.T) {
	w := buildWorld(4, 3, func(w *World) {
		placeRabbit(w, 1, 1)
	})

	rg := w.CopyRegion(0, 2)
	require.Equal(t, RabbitKind, rg.At(1, 1).Content)

	// the snapshot shares the agent record but freezes the content tag
	assert.Same(t, w.At(1, 1).Rabbit, rg.At(1, 1).Rabbit)
	w.At(1, 1).Clear()
	assert.Equal(t, RabbitKind, rg.At(1, 1).Content)
	assert.Equal(t, Empty, w.At(1, 1).Content)
}

func TestWorld_CopyRegion_offsetRows(t *testing.T) {
	w := buildWorld(5, 2, func(w *World) {
		placeFox(w, 3, 0)
	})

	rg := w.CopyRegion(2, 4)
	assert.Equal(t, FoxKind, rg.At(3, 0).Content)
	assert.Equal(t, Empty, rg.At(2, 0).Content)
}

func TestSlot_Clear(t *testing.T) {
	w := buildWorld(2, 2, func(w *World) {
		placeRabbit(w, 0, 0)
	})

	slot := w.At(0, 0)
	dirs := slot.Directions()
	slot.Clear()

	assert.Equal(t, Empty, slot.Content)
	assert.Nil(t, slot.Rabbit)
	// the cached directions survive the content change
	assert.Equal(t, dirs, slot.Directions())
}
