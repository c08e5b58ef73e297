package govterm

import "strings"

// Line is a row of exactly cols cells (except transiently during reflow),
// plus a flag marking whether it continues into the next line as part of
// the same logical line.
type Line struct {
	Cells   []Cell
	Wrapped bool
}

// blankLine builds a line of cols single-width space cells carrying pen.
func blankLine(cols int, pen Pen) Line {
	cells := make([]Cell, cols)
	for i := range cells {
		cells[i] = BlankCell(pen)
	}
	return Line{Cells: cells}
}

// Len returns the number of cells (== cols, outside of reflow).
func (l *Line) Len() int { return len(l.Cells) }

// IsEmpty reports whether the line has no cells at all.
func (l *Line) IsEmpty() bool { return len(l.Cells) == 0 }

// repairContinuation turns the cell at i, if it is a width-0 continuation,
// into a standalone space so removing its wide partner doesn't leave a
// dangling half-glyph.
func (l *Line) repairContinuation(i int, pen Pen) {
	if i >= 0 && i < len(l.Cells) && l.Cells[i].Width == 0 {
		l.Cells[i] = BlankCell(pen)
	}
}

// repairWideLeft turns the cell at i, if it is a width-2 left half, into a
// standalone space, for when its continuation partner is about to be
// overwritten independently.
func (l *Line) repairWideLeft(i int, pen Pen) {
	if i >= 0 && i < len(l.Cells) && l.Cells[i].Width == 2 {
		l.Cells[i] = BlankCell(pen)
	}
}

// Clear fills cells in [start, end) with blanks carrying pen, repairing
// wide-glyph halves at both boundaries.
func (l *Line) Clear(start, end int, pen Pen) {
	if start >= len(l.Cells) {
		return
	}
	if end > len(l.Cells) {
		end = len(l.Cells)
	}
	if start > 0 {
		l.repairWideLeft(start-1, pen)
	}
	if l.Cells[start].Width == 0 {
		l.repairWideLeft(start-1, pen)
	}
	for i := start; i < end; i++ {
		l.Cells[i] = BlankCell(pen)
	}
	if end < len(l.Cells) && l.Cells[end].Width == 0 {
		l.Cells[end] = BlankCell(pen)
	}
}

// Print writes ch (already classified to width charWidth) at col and
// returns the width actually consumed (0 or charWidth). Handles every
// combination of existing-cell width and new-char width, repairing
// whichever wide glyph halves are orphaned by the write.
func (l *Line) Print(col int, ch rune, charWidth int, pen Pen) int {
	existing := l.Cells[col].Width
	remaining := len(l.Cells) - 1 - col

	switch {
	case existing == 1 && charWidth == 1:
		l.Cells[col] = NewCell(ch, 1, pen)
		return 1

	case existing == 1 && charWidth == 2 && remaining == 0:
		l.Cells[col] = BlankCell(pen)
		return 0

	case existing == 1 && charWidth == 2 && remaining >= 1:
		if col+2 < len(l.Cells) && l.Cells[col+2].Width == 0 {
			l.Cells[col+2] = BlankCell(pen)
		}
		l.Cells[col] = NewCell(ch, 2, pen)
		l.Cells[col+1] = NewCell(' ', 0, pen)
		return 2

	case existing == 2 && charWidth == 1:
		l.Cells[col] = NewCell(ch, 1, pen)
		if col+1 < len(l.Cells) {
			l.Cells[col+1] = BlankCell(pen)
		}
		return 1

	case existing == 2 && charWidth == 2:
		if col+2 < len(l.Cells) && l.Cells[col+2].Width == 0 {
			l.Cells[col+2] = BlankCell(pen)
		}
		l.Cells[col] = NewCell(ch, 2, pen)
		l.Cells[col+1] = NewCell(' ', 0, pen)
		return 2

	case existing == 0 && charWidth == 1:
		l.repairWideLeft(col-1, pen)
		l.Cells[col] = NewCell(ch, 1, pen)
		return 1

	case existing == 0 && charWidth == 2 && remaining == 0:
		return 0

	case existing == 0 && charWidth == 2 && remaining == 1:
		l.Cells[col+1] = BlankCell(pen)
		return 0

	case existing == 0 && charWidth == 2 && remaining >= 2:
		l.repairWideLeft(col-1, pen)
		if col+2 < len(l.Cells) && l.Cells[col+2].Width == 0 {
			l.Cells[col+2] = BlankCell(pen)
		}
		l.Cells[col] = NewCell(ch, 2, pen)
		l.Cells[col+1] = NewCell(' ', 0, pen)
		return 2
	}
	return 0
}

// ShiftRight rotates cells[col:] right by n, dropping what falls off the
// end, repairing wide-glyph halves at both the insertion seam and the end.
func (l *Line) ShiftRight(col, n int, pen Pen) {
	if col >= len(l.Cells) {
		return
	}
	l.repairWideLeft(col-1, pen)
	if n > len(l.Cells)-col {
		n = len(l.Cells) - col
	}
	tail := l.Cells[col:]
	copy(tail[n:], tail[:len(tail)-n])
	for i := 0; i < n; i++ {
		tail[i] = BlankCell(pen)
	}
	l.repairContinuation(col+n, pen)
	l.repairWideLeft(len(l.Cells)-1, pen)
}

// Delete rotates cells[col:] left by n, blanking the freed tail at the
// right edge, and clears Wrapped since the line now ends in blanks.
func (l *Line) Delete(col, n int, pen Pen) {
	if col >= len(l.Cells) {
		return
	}
	l.repairWideLeft(col-1, pen)
	if n > len(l.Cells)-col {
		n = len(l.Cells) - col
	}
	tail := l.Cells[col:]
	copy(tail, tail[n:])
	for i := len(tail) - n; i < len(tail); i++ {
		tail[i] = BlankCell(pen)
	}
	l.repairContinuation(col, pen)
	l.Wrapped = false
}

// Expand pads the line with blank cells carrying pen up to len.
func (l *Line) Expand(length int, pen Pen) {
	for len(l.Cells) < length {
		l.Cells = append(l.Cells, BlankCell(pen))
	}
}

// trailers counts the trailing default cells, for trimming non-wrapped
// lines during reflow.
func (l *Line) trailers() int {
	n := 0
	for i := len(l.Cells) - 1; i >= 0 && l.Cells[i].IsDefault(); i-- {
		n++
	}
	return n
}

// trim drops trailing default cells (only meaningful on non-wrapped lines).
func (l *Line) trim() {
	l.Cells = l.Cells[:len(l.Cells)-l.trailers()]
}

// Extend appends cells from other until the line reaches length,
// splitting other if it has more than needed. Returns true if this line
// is now complete (reached length) along with whatever of other remains
// to be consumed by the next physical line, or false if other was fully
// consumed and more source lines are still needed.
func (l *Line) Extend(other *Line, length int, pen Pen) (done bool, rest *Line) {
	if len(l.Cells) >= length {
		return true, other
	}
	if !l.Wrapped {
		l.Expand(length, pen)
		return true, other
	}
	if !other.Wrapped {
		other.trim()
	}

	needed := length - len(l.Cells)
	if needed < len(other.Cells) {
		if other.Cells[needed].Width == 0 {
			needed--
		}
		l.Cells = append(l.Cells, other.Cells[:needed]...)
		if len(l.Cells) < length {
			l.Cells = append(l.Cells, BlankCell(pen))
		}
		remainder := Line{Cells: append([]Cell(nil), other.Cells[needed:]...), Wrapped: other.Wrapped}
		return true, &remainder
	}

	l.Cells = append(l.Cells, other.Cells...)
	if !other.Wrapped {
		l.Wrapped = false
		l.Expand(length, pen)
		return true, nil
	}
	return false, nil
}

// Contract splits the line at length if it exceeds it, returning the tail
// as a new (possibly further-splittable) line and marking this line
// wrapped. Returns nil if the line already fits.
func (l *Line) Contract(length int) *Line {
	if !l.Wrapped {
		trim := len(l.Cells) - l.trailers()
		if trim < length {
			trim = length
		}
		if trim < len(l.Cells) {
			l.Cells = l.Cells[:trim]
		}
	}
	if len(l.Cells) <= length {
		return nil
	}

	wideBoundary := l.Cells[length].Width == 0
	cut := length
	if wideBoundary {
		cut--
	}

	rest := append([]Cell(nil), l.Cells[cut:]...)
	l.Cells = l.Cells[:cut]
	if wideBoundary {
		l.Cells = append(l.Cells, BlankCell(l.Cells[len(l.Cells)-1].Pen))
	}

	restLine := Line{Cells: rest, Wrapped: l.Wrapped}
	if !restLine.Wrapped {
		restLine.trim()
	}
	if len(restLine.Cells) == 0 {
		return nil
	}
	l.Wrapped = true
	return &restLine
}

// Chars returns every character in the line, including continuation
// spaces.
func (l *Line) Chars() []rune {
	out := make([]rune, 0, len(l.Cells))
	for _, c := range l.Cells {
		out = append(out, c.Char)
	}
	return out
}

// Text returns the line's printable text, skipping width-0 continuation
// cells.
func (l *Line) Text() string {
	var b strings.Builder
	for _, c := range l.Cells {
		if c.Width == 0 {
			continue
		}
		b.WriteRune(c.Char)
	}
	return b.String()
}

// IsBlank reports whether every cell is a default space.
func (l *Line) IsBlank() bool {
	for _, c := range l.Cells {
		if !c.IsDefault() {
			return false
		}
	}
	return true
}

// Chunks groups consecutive non-zero-width cells into runs, starting a
// new run whenever split(prev, next) is true.
func (l *Line) Chunks(split func(prev, next Cell) bool) [][]Cell {
	var out [][]Cell
	var cur []Cell
	for _, c := range l.Cells {
		if c.Width == 0 {
			continue
		}
		if len(cur) > 0 && split(cur[len(cur)-1], c) {
			out = append(out, cur)
			cur = nil
		}
		cur = append(cur, c)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Dump renders the line's contents as a byte sequence with embedded pen
// changes (used by Buffer.Dump / Terminal.Dump).
func (l *Line) Dump() string {
	var b strings.Builder
	var pen Pen
	first := true
	for _, c := range l.Cells {
		if c.Width == 0 {
			continue
		}
		if first || c.Pen != pen {
			b.WriteString(c.Pen.Dump())
			pen = c.Pen
			first = false
		}
		b.WriteRune(c.Char)
	}
	return b.String()
}
