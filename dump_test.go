package govterm

import "testing"

// replay feeds s into a fresh terminal of the given size and returns it.
func replay(cols, rows int, s string) *Terminal {
	term := NewTerminal(cols, rows, nil, true)
	p := NewParser()
	feed(term, p, s)
	return term
}

func TestDumpReplayReproducesViewAndCursor(t *testing.T) {
	term := NewTerminal(6, 3, nil, false)
	p := NewParser()
	feed(term, p, "\x1b[31;1mhello\x1b[0m\nworld")
	feed(term, p, "\x1b[2;4H")

	dump := term.Dump()
	replayed := replay(6, 3, dump)

	for i := range term.View() {
		want := term.View()[i].Text()
		got := replayed.View()[i].Text()
		if got != want {
			t.Errorf("row %d after replay = %q, want %q", i, got, want)
		}
	}
	if replayed.Cursor() != term.Cursor() {
		t.Errorf("cursor after replay = %+v, want %+v", replayed.Cursor(), term.Cursor())
	}
}

func TestDumpReplayReproducesCellPens(t *testing.T) {
	term := NewTerminal(6, 2, nil, false)
	p := NewParser()
	feed(term, p, "\x1b[32mgreen\x1b[0m")

	replayed := replay(6, 2, term.Dump())

	origRow := term.View()[0]
	gotRow := replayed.View()[0]
	for i := range origRow.Cells {
		if origRow.Cells[i].Pen != gotRow.Cells[i].Pen {
			t.Errorf("cell %d pen after replay = %+v, want %+v", i, gotRow.Cells[i].Pen, origRow.Cells[i].Pen)
		}
	}
}

func TestDumpReplayReproducesModesAndMargins(t *testing.T) {
	term := NewTerminal(8, 6, nil, false)
	p := NewParser()
	feed(term, p, "\x1b[?7l")  // autowrap off
	feed(term, p, "\x1b[4h")   // insert mode on
	feed(term, p, "\x1b[2;5r") // custom margins
	feed(term, p, "\x1b[?25l") // cursor hidden

	replayed := replay(8, 6, term.Dump())

	if replayed.autoWrapMode != term.autoWrapMode {
		t.Errorf("autoWrapMode after replay = %v, want %v", replayed.autoWrapMode, term.autoWrapMode)
	}
	if replayed.insertMode != term.insertMode {
		t.Errorf("insertMode after replay = %v, want %v", replayed.insertMode, term.insertMode)
	}
	if replayed.topMargin != term.topMargin || replayed.bottomMargin != term.bottomMargin {
		t.Errorf("margins after replay = (%d,%d), want (%d,%d)", replayed.topMargin, replayed.bottomMargin, term.topMargin, term.bottomMargin)
	}
	if replayed.cursor.Visible != term.cursor.Visible {
		t.Errorf("cursor visibility after replay = %v, want %v", replayed.cursor.Visible, term.cursor.Visible)
	}
}

func TestDumpReplayReproducesAlternateBuffer(t *testing.T) {
	term := NewTerminal(6, 3, nil, false)
	p := NewParser()
	feed(term, p, "primary")
	feed(term, p, "\x1b[?1049h")
	feed(term, p, "alt")

	replayed := replay(6, 3, term.Dump())

	if replayed.activeType != term.activeType {
		t.Errorf("activeType after replay = %v, want %v", replayed.activeType, term.activeType)
	}
	if replayed.View()[0].Text() != term.View()[0].Text() {
		t.Errorf("alternate view after replay = %q, want %q", replayed.View()[0].Text(), term.View()[0].Text())
	}

	// The primary buffer's content must survive underneath, not just the
	// currently active alternate screen.
	wantPrimary := term.primaryBuffer().View()
	replayP := NewParser()
	feed(replayed, replayP, "\x1b[?1049l")
	for i := range wantPrimary {
		if got := replayed.View()[i].Text(); got != wantPrimary[i].Text() {
			t.Errorf("primary row %d after switching back = %q, want %q", i, got, wantPrimary[i].Text())
		}
	}
}

func TestDumpReplayReproducesTabStops(t *testing.T) {
	term := NewTerminal(40, 2, nil, false)
	p := NewParser()
	feed(term, p, "\x1b[10G\x1b[W")  // set a tab stop at column 10 (1-based)
	feed(term, p, "\x1b[17G\x1b[2W") // unset the default stop at column 17 (CTC Ps=2 at cursor)

	replayed := replay(40, 2, term.Dump())

	if got, want := replayed.tabs.Stops(), term.tabs.Stops(); !equalInts(got, want) {
		t.Errorf("tab stops after replay = %v, want %v", got, want)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
