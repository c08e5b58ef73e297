//go:build govterm_debug

package govterm

import "fmt"

// checkInvariants asserts the data model's width invariants on both screen
// buffers: every line's cell widths sum to cols, and every continuation
// cell (width 0) is immediately preceded, in the same line, by a width-2
// cell sharing its pen. Only compiled with -tags govterm_debug; panics on
// the first violation found.
func checkInvariants(t *Terminal) {
	checkBufferInvariants(t.buffer)
	checkBufferInvariants(t.otherBuffer)
}

func checkBufferInvariants(b *Buffer) {
	for row, line := range b.lines {
		sum := 0
		for col, c := range line.Cells {
			sum += c.Width
			if c.Width == 0 {
				if col == 0 || line.Cells[col-1].Width != 2 || line.Cells[col-1].Pen != c.Pen {
					panic(fmt.Sprintf("govterm: line %d col %d is a continuation cell not preceded by a matching width-2 cell", row, col))
				}
			}
		}
		if sum != b.cols {
			panic(fmt.Sprintf("govterm: line %d cell widths sum to %d, want %d", row, sum, b.cols))
		}
	}
}
