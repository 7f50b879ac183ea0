// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/insolar/hanoi/hanoi/solver"
	"github.com/insolar/hanoi/hanoi/tower"
)

// Towers draws one column per tower, bottoms aligned, with disc counts in the footer.
func Towers(w io.Writer, towers ...*tower.Tower) {
	height := 0
	header := make([]string, len(towers))
	footer := make([]string, len(towers))
	columns := make([][]tower.Index, len(towers))

	for i, t := range towers {
		header[i] = t.Name()
		footer[i] = strconv.Itoa(t.Count())
		columns[i] = t.Discs()
		if n := t.Count(); n > height {
			height = n
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetHeader(header)
	table.SetFooter(footer)

	for row := 0; row < height; row++ {
		line := make([]string, len(towers))
		for i, discs := range columns {
			// discs are top first, pad shorter towers from above
			if pos := row - (height - len(discs)); pos >= 0 {
				line[i] = strconv.Itoa(int(discs[pos]))
			}
		}
		table.Append(line)
	}
	table.Render()
}

// Board draws the three towers of b.
func Board(w io.Writer, b *solver.Board) {
	towers := b.Towers()
	Towers(w, towers[0], towers[1], towers[2])
}

// Snapshot returns a solver.SnapshotFunc drawing the board with a step caption.
func Snapshot(w io.Writer) solver.SnapshotFunc {
	return func(step uint64, b *solver.Board) {
		_, _ = fmt.Fprintf(w, "step %d\n", step)
		Board(w, b)
	}
}
