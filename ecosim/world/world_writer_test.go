package world

import (
	"bytes"
	"github.com/digaso/rabbitsandfoxes/ecosim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestWorld_Write(t *testing.T) {
	opts := &ecosim.Options{
		GenProcRabbits:    3,
		GenProcFoxes:      4,
		GenFoodFoxes:      5,
		NumGenerations:    100,
		Rows:              2,
		Columns:           3,
		InitialPopulation: 3,
		Threads:           1,
	}
	w := buildWorld(2, 3, func(w *World) {
		placeFox(w, 1, 2)
		placeRock(w, 0, 1)
		placeRabbit(w, 1, 0)
	})

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, opts))

	// the header repeats the parameters with a zero generation count, and the
	// records come out in row-major order
	expected := "3 4 5 0 2 3 3\n" +
		"ROCK 0 1\n" +
		"RABBIT 1 0\n" +
		"FOX 1 2\n"
	assert.Equal(t, expected, buf.String())
}

func TestWorld_Write_roundTrip(t *testing.T) {
	const input = "3 4 5 0 3 3 4\n" +
		"ROCK 0 0\n" +
		"RABBIT 0 2\n" +
		"FOX 1 1\n" +
		"ROCK 2 1\n"

	r := strings.NewReader(input)
	opts, err := ecosim.LoadOptions(r)
	require.NoError(t, err)
	w, err := ReadWorld(r, opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, opts))
	assert.Equal(t, input, buf.String())
}

func TestWorld_DumpState(t *testing.T) {
	w := buildWorld(2, 2, func(w *World) {
		placeRock(w, 0, 0)
		rabbit := placeRabbit(w, 0, 1)
		rabbit.Age = 7
		fox := placeFox(w, 1, 0)
		fox.ProcAge = 2
		fox.FoodAge = 3
	})

	var buf bytes.Buffer
	w.DumpState(&buf)
	out := buf.String()

	// three panels per row: tags, procreation ages, food ages
	assert.Contains(t, out, "|*R|")
	assert.Contains(t, out, "|*7|")
	assert.Contains(t, out, "|F |")
	assert.Contains(t, out, "|2 |")
	assert.Contains(t, out, "|3 |")
}
