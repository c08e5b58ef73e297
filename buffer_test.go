package govterm

import "testing"

func TestNewBufferBlank(t *testing.T) {
	b := NewBuffer(4, 3, nil, nil)
	if len(b.View()) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(b.View()))
	}
	for _, l := range b.View() {
		if !l.IsBlank() {
			t.Errorf("expected blank line, got %+v", l)
		}
	}
}

func TestBufferPrintAndView(t *testing.T) {
	b := NewBuffer(4, 2, nil, nil)
	b.Print(0, 0, 'a', Pen{})
	if got := b.View()[0].Text(); got != "a   " {
		t.Errorf("View()[0].Text() = %q, want %q", got, "a   ")
	}
}

func TestBufferEraseWholeLine(t *testing.T) {
	b := NewBuffer(4, 2, nil, nil)
	b.Print(0, 0, 'a', Pen{})
	b.Erase(0, 0, EraseWholeLine, 0, Pen{})
	if !b.View()[0].IsBlank() {
		t.Error("expected line to be blank after EraseWholeLine")
	}
}

func TestBufferScrollUpGrowsScrollbackOnFullView(t *testing.T) {
	zero := 0
	b := NewBuffer(4, 2, nil, nil)
	b.Print(0, 0, 'a', Pen{})
	b.Print(0, 1, 'b', Pen{})
	b.ScrollUp(0, 1, 1, Pen{})
	if len(b.Lines()) != 3 {
		t.Fatalf("expected scrollback to grow by 1, got %d lines", len(b.Lines()))
	}
	if got := b.Lines()[0].Text(); got != "a   " {
		t.Errorf("scrollback line = %q, want %q", got, "a   ")
	}
	_ = zero
}

func TestBufferScrollUpDiscardsWhenScrollbackDisabled(t *testing.T) {
	zero := 0
	b := NewBuffer(4, 2, &zero, nil)
	b.Print(0, 0, 'a', Pen{})
	b.ScrollUp(0, 1, 1, Pen{})
	if len(b.Lines()) != 2 {
		t.Fatalf("expected no scrollback growth, got %d lines", len(b.Lines()))
	}
}

func TestBufferScrollUpWithinSubRegionRotates(t *testing.T) {
	b := NewBuffer(4, 4, nil, nil)
	for r := 0; r < 4; r++ {
		b.Print(0, r, rune('0'+r), Pen{})
	}
	b.ScrollUp(1, 2, 1, Pen{})
	view := b.View()
	if view[1].Text() != "2   " {
		t.Errorf("row 1 = %q, want %q", view[1].Text(), "2   ")
	}
	if view[0].Text() != "0   " || view[3].Text() != "3   " {
		t.Error("rows outside the scroll region should be untouched")
	}
}

func TestBufferGCEvictsBeyondLimit(t *testing.T) {
	limit := 1
	b := NewBuffer(4, 2, &limit, nil)
	b.Print(0, 0, 'a', Pen{})
	b.ScrollUp(0, 1, 1, Pen{})
	b.Print(0, 0, 'b', Pen{})
	b.ScrollUp(0, 1, 1, Pen{})
	evicted := b.GC()
	if len(evicted) != 1 {
		t.Fatalf("expected 1 evicted line, got %d", len(evicted))
	}
}

func TestRelAbsCursorRoundTrip(t *testing.T) {
	view := []Line{
		{Cells: make([]Cell, 4), Wrapped: true},
		{Cells: make([]Cell, 4)},
	}
	relCol, relRow := RelCursor(view, 2, 1)
	if relCol != 6 || relRow != 0 {
		t.Fatalf("RelCursor = (%d, %d), want (6, 0)", relCol, relRow)
	}
	col, row := AbsCursor(view, relCol, relRow)
	if col != 2 || row != 1 {
		t.Errorf("AbsCursor round-trip = (%d, %d), want (2, 1)", col, row)
	}
}

func TestBufferResizeNarrowerReflowsWrappedLine(t *testing.T) {
	b := NewBuffer(8, 1, nil, nil)
	for i, ch := range "abcdefgh" {
		b.Print(i, 0, ch, Pen{})
	}
	col, row := b.Resize(4, 2, 7, 0, Pen{})
	view := b.View()
	if view[0].Text() != "efgh" {
		t.Fatalf("view[0] = %q, want %q", view[0].Text(), "efgh")
	}
	if col != 4 || row != 0 {
		t.Errorf("cursor after resize = (%d, %d), want (4, 0)", col, row)
	}
	scrollback := b.Lines()
	if scrollback[0].Text() != "abcd" || !scrollback[0].Wrapped {
		t.Errorf("expected the overflow line in scrollback to be %q and wrapped, got %+v", "abcd", scrollback[0])
	}
}

func TestBufferResizeWiderJoinsWrappedLines(t *testing.T) {
	b := &Buffer{cols: 4, rows: 2, lines: []Line{
		{Cells: []Cell{NewCell('a', 1, Pen{}), NewCell('b', 1, Pen{}), NewCell('c', 1, Pen{}), NewCell('d', 1, Pen{})}, Wrapped: true},
		{Cells: []Cell{NewCell('e', 1, Pen{}), BlankCell(Pen{}), BlankCell(Pen{}), BlankCell(Pen{})}},
	}}
	b.Resize(8, 1, 4, 1, Pen{})
	if got := b.View()[0].Text(); got != "abcde   " {
		t.Errorf("joined line = %q, want %q", got, "abcde   ")
	}
}
