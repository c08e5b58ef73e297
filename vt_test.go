package govterm

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestVtNewAppliesOptions(t *testing.T) {
	v := New(10, 4, WithScrollbackLimit(5), WithResizable())
	if !v.terminal.resizable {
		t.Error("expected WithResizable to make the terminal resizable")
	}
	if v.terminal.primaryBuffer().scrollbackLimit == nil || *v.terminal.primaryBuffer().scrollbackLimit != 5 {
		t.Errorf("expected scrollback limit 5, got %+v", v.terminal.primaryBuffer().scrollbackLimit)
	}
}

func TestVtFeedReportsDirtyRowsAndCursor(t *testing.T) {
	v := New(4, 2)
	ch := v.FeedString("ab")
	if len(ch.DirtyRows) == 0 {
		t.Error("expected FeedString to report at least one dirty row")
	}
	if ch.Resized {
		t.Error("plain text input should not report a resize")
	}
	if c := v.Cursor(); c.Col != 2 || c.Row != 0 {
		t.Errorf("cursor after \"ab\" = %+v, want col=2 row=0", c)
	}
}

func TestVtFeedSingleRune(t *testing.T) {
	v := New(4, 2)
	v.Feed('x')
	if v.View()[0].Text()[0] != 'x' {
		t.Errorf("View()[0] = %q, want leading 'x'", v.View()[0].Text())
	}
}

func TestVtResizeReportsResized(t *testing.T) {
	v := New(4, 2, WithResizable())
	ch := v.Resize(8, 3)
	if !ch.Resized {
		t.Error("expected Resize to report Resized=true")
	}
	if len(v.View()) != 3 {
		t.Fatalf("expected 3 rows after resize, got %d", len(v.View()))
	}
}

func TestVtResizeNonPositiveIsIgnoredAndLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	v := New(4, 2, WithLogger(logger))
	ch := v.Resize(0, 5)
	if ch.Resized || len(ch.DirtyRows) != 0 {
		t.Errorf("expected a no-op Changes for a non-positive resize, got %+v", ch)
	}
	if len(v.View()) != 2 {
		t.Errorf("dimensions must stay unchanged, got %d rows", len(v.View()))
	}
	if !bytes.Contains(buf.Bytes(), []byte("ignoring non-positive resize")) {
		t.Errorf("expected a warning to be logged, got %q", buf.String())
	}
}

func TestVtScrollbackSurfacedOnFeed(t *testing.T) {
	v := New(4, 2, WithScrollbackLimit(1))
	v.FeedString("aaaa\nbbbb\ncccc\ndddd")
	ch := v.FeedString("\n")
	if len(ch.Scrollback) == 0 {
		t.Error("expected the final newline's scroll to evict a line past the limit of 1")
	}
}

func TestVtLinesIncludesScrollback(t *testing.T) {
	v := New(4, 2)
	v.FeedString("aaaa\nbbbb\ncccc")
	if len(v.Lines()) <= len(v.View()) {
		t.Errorf("expected Lines() to include scrollback beyond the view, got %d lines vs %d view rows", len(v.Lines()), len(v.View()))
	}
}

func TestVtTextReflectsPrimaryBufferRegardlessOfActiveScreen(t *testing.T) {
	v := New(4, 2)
	v.FeedString("ab")
	v.FeedString("\x1b[?1049h")
	v.FeedString("XY")
	text := v.Text()
	if len(text) == 0 || text[0] != "ab" {
		t.Errorf("Text() while on alternate screen = %+v, want first line %q", text, "ab")
	}
}

func TestVtCursorKeyAppMode(t *testing.T) {
	v := New(4, 2)
	if v.CursorKeyAppMode() {
		t.Error("expected DECCKM off by default")
	}
	v.FeedString("\x1b[?1h")
	if !v.CursorKeyAppMode() {
		t.Error("expected DECCKM on after CSI ?1h")
	}
}

func TestVtDumpRepositionsCursor(t *testing.T) {
	v := New(4, 2)
	v.FeedString("ab")
	dump := v.Dump()
	if !bytes.Contains([]byte(dump), []byte("\x1b[1;3H")) {
		t.Errorf("expected Dump() to reposition the cursor to row 1 col 3, got %q", dump)
	}
}

func TestVtLineIndexesIntoLinesSlice(t *testing.T) {
	v := New(4, 2)
	v.FeedString("aaaa\nbbbb\ncccc")
	all := v.Lines()
	first := v.Line(0)
	if first.Text() != all[0].Text() {
		t.Errorf("Line(0) = %q, want %q", first.Text(), all[0].Text())
	}
}
