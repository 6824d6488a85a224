package world

import (
	"bufio"
	"fmt"
	"github.com/digaso/rabbitsandfoxes/ecosim"
	"github.com/pkg/errors"
	"io"
)

// Write emits the final state in the same shape as the input: the parameter
// header with a zero in the generation-count position, then one "KIND row col"
// record per non-empty cell in row-major order.
func (w *World) Write(out io.Writer, opts *ecosim.Options) error {
	bw := bufio.NewWriter(out)

	_, err := fmt.Fprintf(bw, "%d %d %d %d %d %d %d\n",
		opts.GenProcRabbits, opts.GenProcFoxes, opts.GenFoodFoxes,
		0, w.Rows, w.Columns, w.TotalEntities())
	if err != nil {
		return errors.Wrap(err, "failed to write results header")
	}

	for r := 0; r < w.Rows; r++ {
		for c := 0; c < w.Columns; c++ {
			slot := w.At(r, c)
			if slot.Content == Empty {
				continue
			}
			if _, err = fmt.Fprintf(bw, "%v %d %d\n", slot.Content, r, c); err != nil {
				return errors.Wrapf(err, "failed to write entity record at (%d, %d)", r, c)
			}
		}
	}
	return bw.Flush()
}

// DumpState renders the grid as three side by side panels: the content tags,
// the procreation ages, and the food ages. Useful when inspecting a run
// generation by generation.
func (w *World) DumpState(out io.Writer) {
	bw := bufio.NewWriter(out)

	dumpBorder(bw, w.Columns)
	for r := 0; r < w.Rows; r++ {
		for panel := 0; panel < 3; panel++ {
			if panel == 1 {
				fmt.Fprint(bw, "   ")
			} else if panel == 2 {
				fmt.Fprint(bw, " ")
			}
			fmt.Fprint(bw, "|")
			for c := 0; c < w.Columns; c++ {
				fmt.Fprint(bw, dumpCell(w.At(r, c), panel))
			}
			fmt.Fprint(bw, "|")
		}
		fmt.Fprintln(bw)
	}
	dumpBorder(bw, w.Columns)

	if err := bw.Flush(); err != nil {
		ecosim.ErrorLog("failed to dump world state: %v", err)
	}
}

func dumpCell(slot *Slot, panel int) string {
	switch slot.Content {
	case Rock:
		return "*"
	case FoxKind:
		switch panel {
		case 1:
			return fmt.Sprintf("%d", slot.Fox.ProcAge)
		case 2:
			return fmt.Sprintf("%d", slot.Fox.FoodAge)
		}
		return "F"
	case RabbitKind:
		if panel == 1 {
			return fmt.Sprintf("%d", slot.Rabbit.Age)
		}
		return "R"
	}
	return " "
}

func dumpBorder(bw *bufio.Writer, columns int) {
	line := ""
	for i := 0; i < columns+2; i++ {
		line += "-"
	}
	fmt.Fprintf(bw, "%s   %s %s\n", line, line, line)
}
