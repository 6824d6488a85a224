package simulation

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/digaso/rabbitsandfoxes/ecosim"
	"github.com/digaso/rabbitsandfoxes/ecosim/world"
	"github.com/stretchr/testify/require"
)

// loadTestWorld parses a full world description (header plus placements).
func loadTestWorld(t *testing.T, input string) (*ecosim.Options, *world.World) {
	t.Helper()
	r := strings.NewReader(input)
	opts, err := ecosim.LoadOptions(r)
	require.NoError(t, err, "failed to parse the test world header")
	w, err := world.ReadWorld(r, opts)
	require.NoError(t, err, "failed to parse the test world placements")
	return opts, w
}

// runTestWorld loads the description and advances it on the given thread count.
func runTestWorld(t *testing.T, input string, threads int) (*world.World, *Run) {
	t.Helper()
	w, _, run := executeTestWorld(t, input, threads)
	return w, run
}

// runTestWorldWithOptions is runTestWorld for tests that also render the
// final state.
func runTestWorldWithOptions(t *testing.T, input string, threads int) (*world.World, *ecosim.Options) {
	t.Helper()
	w, opts, _ := executeTestWorld(t, input, threads)
	return w, opts
}

func executeTestWorld(t *testing.T, input string, threads int) (*world.World, *ecosim.Options, *Run) {
	t.Helper()
	opts, w := loadTestWorld(t, input)
	opts.Threads = threads

	executor := NewExecutor(opts)
	run, err := executor.Execute(context.Background(), opts, w)
	require.NoError(t, err, "simulation failed on %d thread(s)", threads)
	return w, opts, run
}

// finalState renders the world in the results format for comparisons.
func finalState(t *testing.T, w *world.World, opts *ecosim.Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, opts))
	return buf.String()
}

// checkRowCountInvariant verifies that the live per-row counters sum to the
// number of live agents on the grid.
func checkRowCountInvariant(t *testing.T, w *world.World) {
	t.Helper()
	total := 0
	for r := 0; r < w.Rows; r++ {
		total += w.RowCount(r)
	}
	rabbits, foxes := w.Census()
	require.Equal(t, rabbits+foxes, total, "per-row counters disagree with the census")
}

// checkRecordInvariant verifies that agent records exist exactly where the
// content tags claim.
func checkRecordInvariant(t *testing.T, w *world.World) {
	t.Helper()
	for r := 0; r < w.Rows; r++ {
		for c := 0; c < w.Columns; c++ {
			slot := w.At(r, c)
			switch slot.Content {
			case world.RabbitKind:
				require.NotNil(t, slot.Rabbit, "rabbit tag without record at (%d, %d)", r, c)
				require.Nil(t, slot.Fox, "stray fox record at (%d, %d)", r, c)
			case world.FoxKind:
				require.NotNil(t, slot.Fox, "fox tag without record at (%d, %d)", r, c)
				require.Nil(t, slot.Rabbit, "stray rabbit record at (%d, %d)", r, c)
			default:
				require.Nil(t, slot.Rabbit, "rabbit record on %v at (%d, %d)", slot.Content, r, c)
				require.Nil(t, slot.Fox, "fox record on %v at (%d, %d)", slot.Content, r, c)
			}
		}
	}
}

// checkFoxHungerInvariant verifies that no surviving fox passed the
// starvation threshold.
func checkFoxHungerInvariant(t *testing.T, w *world.World, threshold int) {
	t.Helper()
	for r := 0; r < w.Rows; r++ {
		for c := 0; c < w.Columns; c++ {
			slot := w.At(r, c)
			if slot.Content == world.FoxKind {
				require.LessOrEqual(t, slot.Fox.FoodAge, threshold,
					"fox at (%d, %d) outlived the starvation threshold", r, c)
			}
		}
	}
}

// denseTestWorld builds a reproducible mixed population description.
func denseTestWorld(rows, cols, generations int) string {
	var sb strings.Builder
	placements := 0
	var records strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			switch (r*cols + c*3 + 1) % 7 {
			case 1:
				fmt.Fprintf(&records, "RABBIT %d %d\n", r, c)
				placements++
			case 3:
				fmt.Fprintf(&records, "FOX %d %d\n", r, c)
				placements++
			case 5:
				fmt.Fprintf(&records, "ROCK %d %d\n", r, c)
				placements++
			}
		}
	}
	fmt.Fprintf(&sb, "3 4 3 %d %d %d %d\n", generations, rows, cols, placements)
	sb.WriteString(records.String())
	return sb.String()
}
