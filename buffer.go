package govterm

// EraseKind tags which region Buffer.Erase clears.
type EraseKind uint8

const (
	EraseNextChars EraseKind = iota
	EraseFromCursorToEndOfView
	EraseFromStartOfViewToCursor
	EraseWholeView
	EraseFromCursorToEndOfLine
	EraseFromStartOfLineToCursor
	EraseWholeLine
)

// Buffer is a vertically stacked collection of Lines representing one
// screen, plus (for the primary screen) scrollback. lines always holds at
// least rows entries; the last rows of them are the visible view, any
// lines before that are scrollback.
type Buffer struct {
	cols, rows      int
	lines           []Line
	scrollbackLimit *int // nil = unlimited, pointer-to-0 = disabled (alternate screen)
}

// NewBuffer builds a buffer of cols x rows blank cells. A nil
// scrollbackLimit means unlimited scrollback; a pointer to 0 disables it.
// If pen is non-nil, every cell is initialized with it instead of the
// default pen (used when freshly blanking the alternate screen on entry).
func NewBuffer(cols, rows int, scrollbackLimit *int, pen *Pen) *Buffer {
	p := Pen{}
	if pen != nil {
		p = *pen
	}
	lines := make([]Line, rows)
	for i := range lines {
		lines[i] = blankLine(cols, p)
	}
	return &Buffer{cols: cols, rows: rows, lines: lines, scrollbackLimit: scrollbackLimit}
}

// View returns the rows currently on screen.
func (b *Buffer) View() []Line {
	return b.lines[len(b.lines)-b.rows:]
}

// Lines returns scrollback followed by the view.
func (b *Buffer) Lines() []Line {
	return b.lines
}

// Line returns the nth line of the full (scrollback+view) sequence.
func (b *Buffer) Line(n int) Line {
	return b.lines[n]
}

// viewLine returns a pointer to row r (0-based within the view).
func (b *Buffer) viewLine(r int) *Line {
	return &b.lines[len(b.lines)-b.rows+r]
}

// Print writes ch at (col, row) within the view.
func (b *Buffer) Print(col, row int, ch rune, pen Pen) int {
	return b.viewLine(row).Print(col, ch, charDisplayWidth(ch), pen)
}

// Wrap marks row as continuing into the next line.
func (b *Buffer) Wrap(row int) {
	b.viewLine(row).Wrapped = true
}

// Insert shifts cells at (col, row) right by n, clamped to the line width.
func (b *Buffer) Insert(col, row, n int, pen Pen) {
	if n > b.cols-col {
		n = b.cols - col
	}
	b.viewLine(row).ShiftRight(col, n, pen)
}

// Delete removes n cells at (col, row), clamped to the line width.
func (b *Buffer) Delete(col, row, n int, pen Pen) {
	if n > b.cols-col {
		n = b.cols - col
	}
	b.viewLine(row).Delete(col, n, pen)
}

// Erase clears part of the view per mode, anchored at (col, row).
func (b *Buffer) Erase(col, row int, mode EraseKind, n int, pen Pen) {
	switch mode {
	case EraseNextChars:
		end := col + n
		if end > b.cols {
			end = b.cols
		}
		b.viewLine(row).Clear(col, end, pen)
	case EraseFromCursorToEndOfView:
		b.viewLine(row).Clear(col, b.cols, pen)
		b.clearLines(row+1, len(b.View()), pen)
	case EraseFromStartOfViewToCursor:
		b.clearLines(0, row, pen)
		b.viewLine(row).Clear(0, col+1, pen)
	case EraseWholeView:
		b.clearLines(0, len(b.View()), pen)
	case EraseFromCursorToEndOfLine:
		b.viewLine(row).Clear(col, b.cols, pen)
	case EraseFromStartOfLineToCursor:
		b.viewLine(row).Clear(0, col+1, pen)
	case EraseWholeLine:
		b.viewLine(row).Clear(0, b.cols, pen)
	}
}

func (b *Buffer) clearLines(from, to int, pen Pen) {
	base := len(b.lines) - b.rows
	for r := from; r < to; r++ {
		b.lines[base+r] = blankLine(b.cols, pen)
	}
}

// scrollbackEnabled reports whether this buffer grows scrollback instead
// of discarding on a full-view scroll.
func (b *Buffer) scrollbackEnabled() bool {
	return b.scrollbackLimit == nil || *b.scrollbackLimit > 0
}

// ScrollUp scrolls [top, bottom] (inclusive, view-relative) up by n,
// clearing wrapped on the row above the range and on the range's last row
// if it is not the buffer's last row. On the primary buffer, a scroll
// across the full default-margin view (top==0, bottom==rows-1) grows
// scrollback instead of discarding the departing lines.
func (b *Buffer) ScrollUp(top, bottom, n int, pen Pen) {
	rows := len(b.View())
	if top > 0 {
		b.viewLine(top - 1).Wrapped = false
	}
	if bottom < rows-1 {
		b.viewLine(bottom).Wrapped = false
	}

	fullView := top == 0 && bottom == rows-1
	if fullView && b.scrollbackEnabled() {
		for i := 0; i < n; i++ {
			b.lines = append(b.lines, blankLine(b.cols, pen))
		}
		return
	}

	base := len(b.lines) - b.rows
	region := b.lines[base+top : base+bottom+1]
	if n > len(region) {
		n = len(region)
	}
	copy(region, region[n:])
	for i := len(region) - n; i < len(region); i++ {
		region[i] = blankLine(b.cols, pen)
	}
}

// ScrollDown scrolls [top, bottom] down by n, clearing wrapped on the row
// above the range and always on the range's last row.
func (b *Buffer) ScrollDown(top, bottom, n int, pen Pen) {
	if top > 0 {
		b.viewLine(top - 1).Wrapped = false
	}
	b.viewLine(bottom).Wrapped = false

	base := len(b.lines) - b.rows
	region := b.lines[base+top : base+bottom+1]
	if n > len(region) {
		n = len(region)
	}
	copy(region[n:], region[:len(region)-n])
	for i := 0; i < n; i++ {
		region[i] = blankLine(b.cols, pen)
	}
}

// GC trims scrollback down to scrollbackLimit (if set), returning the
// evicted lines oldest-first.
func (b *Buffer) GC() []Line {
	if b.scrollbackLimit == nil {
		return nil
	}
	scrollback := len(b.lines) - b.rows
	excess := scrollback - *b.scrollbackLimit
	if excess <= 0 {
		return nil
	}
	evicted := append([]Line(nil), b.lines[:excess]...)
	b.lines = b.lines[excess:]
	return evicted
}

// RelCursor converts an absolute (col, row) within view to a logical
// (col, row) where row counts logical lines from the bottom and col is the
// position within that logical line (summed across wrapped predecessors).
func RelCursor(view []Line, col, row int) (relCol, relRow int) {
	relCol = col
	for r := row; r > 0 && view[r-1].Wrapped; r-- {
		relCol += view[r-1].Len()
	}
	for r := row; r < len(view)-1; r++ {
		if !view[r].Wrapped {
			relRow++
		}
	}
	return relCol, relRow
}

// AbsCursor is the inverse of RelCursor against a new set of lines.
func AbsCursor(view []Line, relCol, relRow int) (col, row int) {
	row = len(view) - 1
	for {
		for row > 0 && view[row-1].Wrapped {
			row--
		}
		if relRow == 0 || row == 0 {
			break
		}
		relRow--
		row--
	}
	col = relCol
	for row < len(view)-1 && view[row].Wrapped && col >= view[row].Len() {
		col -= view[row].Len()
		row++
	}
	return col, row
}

// flattenLogical groups lines into logical-line runs terminated by
// Wrapped==false (the last line in the buffer is always such a
// terminator).
func flattenLogical(lines []Line) [][]Line {
	var out [][]Line
	var cur []Line
	for i := range lines {
		cur = append(cur, lines[i])
		if !lines[i].Wrapped {
			out = append(out, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// reflow re-splits every logical line in lines into physical lines of
// exactly newCols columns, preserving wrapped chains and wide-glyph
// integrity via Line.Contract/Extend.
func reflow(lines []Line, newCols int, pen Pen) []Line {
	var out []Line
	for _, group := range flattenLogical(lines) {
		cur := group[0]
		src := 1
		for {
			if cur.Len() < newCols {
				if src < len(group) {
					next := group[src]
					done, rest := cur.Extend(&next, newCols, pen)
					if rest != nil {
						group[src] = *rest
					} else {
						src++
					}
					if done {
						out = append(out, cur)
						if src < len(group) {
							cur = group[src]
							src++
						} else {
							break
						}
					}
					continue
				}
				cur.Expand(newCols, pen)
				out = append(out, cur)
				break
			}
			rest := cur.Contract(newCols)
			out = append(out, cur)
			if rest == nil {
				break
			}
			cur = *rest
		}
	}
	if len(out) == 0 {
		out = append(out, blankLine(newCols, pen))
	}
	return out
}

// Resize changes the buffer's dimensions, reflowing text if cols changed
// and growing/shrinking the view (preferring to keep the cursor visible)
// if rows changed. Returns the new absolute cursor position.
func (b *Buffer) Resize(newCols, newRows, cursorCol, cursorRow int, pen Pen) (col, row int) {
	if newCols != b.cols {
		view := b.View()
		relCol, relRow := RelCursor(view, cursorCol, cursorRow)
		b.lines = reflow(b.lines, newCols, pen)
		b.cols = newCols
		newView := b.lines[len(b.lines)-minInt(b.rows, len(b.lines)):]
		col, row = AbsCursor(newView, relCol, relRow)
	} else {
		col, row = cursorCol, cursorRow
	}

	if newRows < b.rows {
		decrement := b.rows - newRows
		keepCursorRoom := b.rows - row - 1
		drop := decrement
		if decrement > keepCursorRoom {
			drop = decrement - keepCursorRoom
		} else {
			drop = 0
		}
		if drop > len(b.lines)-newRows {
			drop = len(b.lines) - newRows
		}
		if drop > 0 {
			b.lines = b.lines[drop:]
			row -= drop
			if row < 0 {
				row = 0
			}
		}
		if len(b.lines) > newRows {
			b.lines = b.lines[len(b.lines)-newRows:]
		}
	} else if newRows > b.rows {
		for i := 0; i < newRows-b.rows; i++ {
			b.lines = append(b.lines, blankLine(b.cols, pen))
		}
	}
	for len(b.lines) < newRows {
		b.lines = append(b.lines, blankLine(b.cols, pen))
	}

	b.rows = newRows
	if col > newCols {
		col = newCols
	}
	if row >= newRows {
		row = newRows - 1
	}
	return col, row
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Text returns every logical line (wrapped runs joined), trimming
// trailing default cells from the closing physical line of each.
func (b *Buffer) Text() []string {
	var out []string
	for _, group := range flattenLogical(b.lines) {
		var s string
		for i, l := range group {
			if i == len(group)-1 {
				l.trim()
			}
			s += l.Text()
		}
		out = append(out, s)
	}
	return out
}

// Dump renders every line (scrollback + view) joined by CRLF after each
// non-wrapped line except the last.
func (b *Buffer) Dump() string {
	var out string
	for i, l := range b.lines {
		out += l.Dump()
		if i < len(b.lines)-1 && !l.Wrapped {
			out += "\r\n"
		}
	}
	return out
}
