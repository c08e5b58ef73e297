package govterm

import (
	"strconv"
	"strings"
)

// Dump renders a sequence of escape codes that, fed to a fresh terminal of
// the same dimensions, reproduces the current screen contents, cursor
// position, pen, and mode state. Order matters: later steps assume the
// state left by earlier ones.
func (t *Terminal) Dump() string {
	var b strings.Builder

	primaryCtx, alternateCtx := t.savedCtx, t.alternateSavedCtx
	if t.activeType == BufferAlternate {
		primaryCtx, alternateCtx = t.alternateSavedCtx, t.savedCtx
	}

	// 1. primary screen buffer.
	b.WriteString(t.primaryBuffer().Dump())

	// 2. tab stops: clear them all, then re-set each one.
	b.WriteString("\x1b[5W")
	for _, col := range t.tabs.Stops() {
		b.WriteString("\x1b[")
		b.WriteString(strconv.Itoa(col + 1))
		b.WriteByte('G')
		b.WriteString("\x1b[W")
	}

	// 3. primary saved context.
	dumpSavedContext(&b, primaryCtx)

	// 4. alternate screen buffer.
	b.WriteString("\x1b[?1047h")
	if t.activeType == BufferAlternate {
		b.WriteString("\x1b[1;1H")
		b.WriteString(t.alternateBuffer().Dump())
	}

	// 5. alternate saved context.
	dumpSavedContext(&b, alternateCtx)

	// 6. leave the right buffer active.
	if t.activeType == BufferPrimary {
		b.WriteString("\x1b[?1047l")
	}

	// 7. origin mode, margins, cursor position, pen, cursor visibility.
	if t.originMode == OriginRelative {
		b.WriteString("\x1b[?6h")
	}

	b.WriteString("\x1b[")
	b.WriteString(strconv.Itoa(t.topMargin + 1))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(t.bottomMargin + 1))
	b.WriteByte('r')

	b.WriteString("\x1b[")
	b.WriteString(strconv.Itoa(t.cursor.Row + 1))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(t.cursor.Col + 1))
	b.WriteByte('H')

	if t.nextPrintWraps {
		// Re-print the rightmost cell to re-arm the deferred-wrap flag.
		cell := t.buffer.View()[t.cursor.Row].Cells[t.cols-1]
		b.WriteString(cell.Pen.Dump())
		b.WriteRune(cell.Char)
	}

	b.WriteString(t.pen.Dump())

	if !t.cursor.Visible {
		b.WriteString("\x1b[?25l")
	}

	// 8. charset slots, insert mode, auto-wrap, new-line mode, cursor keys.
	if t.charsets[0] == CharsetDrawing {
		b.WriteString("\x1b(0")
	}
	if t.charsets[1] == CharsetDrawing {
		b.WriteString("\x1b)0")
	}
	if t.activeCharset == 1 {
		b.WriteByte(0x0e)
	}
	if t.insertMode {
		b.WriteString("\x1b[4h")
	}
	if !t.autoWrapMode {
		b.WriteString("\x1b[?7l")
	}
	if t.newLineMode {
		b.WriteString("\x1b[20h")
	}
	if t.cursorKeyMode == CursorKeyApplication {
		b.WriteString("\x1b[?1h")
	}

	return b.String()
}

// dumpSavedContext emits the escape sequence that, via DECSC (ESC 7),
// captures ctx as the saved context of whichever screen is active when it
// runs — bracketing a temporary auto-wrap/origin-mode toggle so the save
// itself isn't affected by the terminal's current mode state.
func dumpSavedContext(b *strings.Builder, ctx SavedContext) {
	if !ctx.AutoWrapMode {
		b.WriteString("\x1b[?7l")
	}
	if ctx.OriginMode == OriginRelative {
		b.WriteString("\x1b[?6h")
	}

	b.WriteString("\x1b[")
	b.WriteString(strconv.Itoa(ctx.CursorRow + 1))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(ctx.CursorCol + 1))
	b.WriteByte('H')

	b.WriteString(ctx.Pen.Dump())

	b.WriteString("\x1b7")

	if !ctx.AutoWrapMode {
		b.WriteString("\x1b[?7h")
	}
	if ctx.OriginMode == OriginRelative {
		b.WriteString("\x1b[?6l")
	}
}
