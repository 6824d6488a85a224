package world

import (
	"fmt"
	"github.com/digaso/rabbitsandfoxes/ecosim"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"io"
)

// ReadWorld builds the initial world from the placement records following the
// header in the world description stream: InitialPopulation lines of
// "KIND row col" with zero based coordinates. A later record for an already
// occupied coordinate replaces the earlier one. After loading, the per-slot
// direction caches and the row counters are initialized.
func ReadWorld(r io.Reader, opts *ecosim.Options) (*World, error) {
	w := NewWorld(opts.Rows, opts.Columns)

	var name, rowField, colField string
	for i := 0; i < opts.InitialPopulation; i++ {
		if _, err := fmt.Fscan(r, &name, &rowField, &colField); err != nil {
			return nil, errors.Wrapf(err, "failed to read placement record %d of %d", i+1, opts.InitialPopulation)
		}
		kind, err := KindOf(name)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid placement record %d", i+1)
		}
		row, col := cast.ToInt(rowField), cast.ToInt(colField)
		if !w.InBounds(row, col) {
			return nil, errors.Errorf("placement record %d at (%d, %d) is outside the %d x %d world",
				i+1, row, col, w.Rows, w.Columns)
		}

		slot := w.At(row, col)
		slot.Clear()
		slot.Content = kind
		switch kind {
		case RabbitKind:
			slot.Rabbit = NewRabbit()
		case FoxKind:
			slot.Fox = NewFox()
		}
	}

	w.InitializeCounts()
	return w, nil
}
