package govterm

// BufferType names which of the two screens is active.
type BufferType uint8

const (
	BufferPrimary BufferType = iota
	BufferAlternate
)

// CursorKeyMode controls whether cursor keys send application or normal
// sequences (DECCKM); this interpreter only tracks the flag for callers
// that need to translate key input, since key translation itself is
// outside this library's scope.
type CursorKeyMode uint8

const (
	CursorKeyNormal CursorKeyMode = iota
	CursorKeyApplication
)

// Terminal is the interpreter: it receives Functions from a Parser and
// mutates cursor, pen, modes, scroll margins and the two Buffers
// (primary, with scrollback, and alternate, without) accordingly.
type Terminal struct {
	cols, rows int

	buffer      *Buffer
	otherBuffer *Buffer
	activeType  BufferType

	scrollbackLimit *int

	cursor Cursor
	pen    Pen

	charsets      [2]Charset
	activeCharset int

	tabs *Tabs

	insertMode    bool
	originMode    OriginMode
	autoWrapMode  bool
	newLineMode   bool
	cursorKeyMode CursorKeyMode

	nextPrintWraps bool

	topMargin, bottomMargin int

	savedCtx          SavedContext
	alternateSavedCtx SavedContext

	dirty *DirtyLines

	resizable bool
	resized   bool
}

// NewTerminal builds an interpreter of cols x rows. A nil scrollbackLimit
// means unlimited primary-buffer scrollback.
func NewTerminal(cols, rows int, scrollbackLimit *int, resizable bool) *Terminal {
	t := &Terminal{
		cols: cols, rows: rows,
		scrollbackLimit:   scrollbackLimit,
		activeType:        BufferPrimary,
		cursor:            Cursor{Visible: true},
		autoWrapMode:      true,
		topMargin:         0,
		bottomMargin:      rows - 1,
		tabs:              NewTabs(cols),
		resizable:         resizable,
		savedCtx:          defaultSavedContext(),
		alternateSavedCtx: defaultSavedContext(),
	}
	zero := 0
	t.buffer = NewBuffer(cols, rows, scrollbackLimit, nil)
	t.otherBuffer = NewBuffer(cols, rows, &zero, nil)
	t.dirty = newDirtyLines(rows)
	return t
}

// DefaultTerminal matches the reference implementation's default: 80x24,
// unbounded scrollback, not resizable.
func DefaultTerminal() *Terminal {
	return NewTerminal(80, 24, nil, false)
}

// Cursor returns a copy of the current cursor.
func (t *Terminal) Cursor() Cursor { return t.cursor }

// GC drains evicted scrollback lines; only the primary buffer ever
// produces any (the alternate buffer has scrollback disabled).
func (t *Terminal) GC() []Line {
	if t.activeType != BufferPrimary {
		return nil
	}
	return t.primaryBuffer().GC()
}

// Changes returns the dirty rows accumulated since the last call, and
// whether a resize happened since then, clearing both.
func (t *Terminal) Changes() ([]int, bool) {
	rows := t.dirty.Clear()
	resized := t.resized
	t.resized = false
	return rows, resized
}

func (t *Terminal) primaryBuffer() *Buffer {
	if t.activeType == BufferPrimary {
		return t.buffer
	}
	return t.otherBuffer
}

func (t *Terminal) alternateBuffer() *Buffer {
	if t.activeType == BufferAlternate {
		return t.buffer
	}
	return t.otherBuffer
}

// View returns the rows currently on screen (of the active buffer).
func (t *Terminal) View() []Line { return t.buffer.View() }

// Lines returns scrollback+view of the active buffer.
func (t *Terminal) Lines() []Line { return t.buffer.Lines() }

// Line returns line n of the active buffer.
func (t *Terminal) Line(n int) Line { return t.buffer.Line(n) }

// Text returns the primary buffer's logical lines, regardless of which
// buffer is currently active.
func (t *Terminal) Text() []string { return t.primaryBuffer().Text() }

// CursorKeyAppMode reports whether DECCKM application mode is active.
func (t *Terminal) CursorKeyAppMode() bool { return t.cursorKeyMode == CursorKeyApplication }

// --- margins -------------------------------------------------------------

func (t *Terminal) actualTopMargin() int {
	if t.originMode == OriginAbsolute {
		return 0
	}
	return t.topMargin
}

func (t *Terminal) actualBottomMargin() int {
	if t.originMode == OriginAbsolute {
		return t.rows - 1
	}
	return t.bottomMargin
}

func (t *Terminal) scrollUpInRegion(n int) {
	t.buffer.ScrollUp(t.topMargin, t.bottomMargin, n, t.pen)
	t.dirty.Extend(t.topMargin, t.bottomMargin+1)
}

func (t *Terminal) scrollDownInRegion(n int) {
	t.buffer.ScrollDown(t.topMargin, t.bottomMargin, n, t.pen)
	t.dirty.Extend(t.topMargin, t.bottomMargin+1)
}

// --- cursor movement -------------------------------------------------------

// savedCtxForActive returns savedCtx whichever buffer is active: the
// buffer-switch functions swap savedCtx and alternateSavedCtx, so savedCtx
// always belongs to the active buffer.
func (t *Terminal) savedCtxForActive() *SavedContext {
	return &t.savedCtx
}

func (t *Terminal) saveCursor() {
	*t.savedCtxForActive() = SavedContext{
		CursorCol:    t.cursor.Col,
		CursorRow:    t.cursor.Row,
		Pen:          t.pen,
		OriginMode:   t.originMode,
		AutoWrapMode: t.autoWrapMode,
	}
}

func (t *Terminal) restoreCursor() {
	ctx := *t.savedCtxForActive()
	t.pen = ctx.Pen
	t.originMode = ctx.OriginMode
	t.autoWrapMode = ctx.AutoWrapMode
	t.doMoveCursorToCol(ctx.CursorCol)
	t.doMoveCursorToRow(ctx.CursorRow)
	t.nextPrintWraps = false
}

func (t *Terminal) clampCol(col int) int {
	if col < 0 {
		return 0
	}
	if col > t.cols-1 {
		return t.cols - 1
	}
	return col
}

func (t *Terminal) moveCursorToCol(col int) {
	t.cursor.Col = t.clampCol(col)
}

func (t *Terminal) doMoveCursorToCol(col int) {
	t.moveCursorToCol(col)
	t.nextPrintWraps = false
}

func (t *Terminal) clampRow(row int) int {
	top, bottom := t.actualTopMargin(), t.actualBottomMargin()
	if row < top {
		return top
	}
	if row > bottom {
		return bottom
	}
	return row
}

func (t *Terminal) moveCursorToRow(row int) {
	t.cursor.Row = t.clampRow(row)
}

func (t *Terminal) doMoveCursorToRow(row int) {
	t.moveCursorToRow(row)
	t.cursor.Col = t.clampCol(t.cursor.Col)
	t.nextPrintWraps = false
}

func (t *Terminal) moveCursorToRelCol(delta int) {
	col := t.cursor.Col + delta
	if col < 0 {
		col = 0
	}
	if col > t.cols-1 {
		col = t.cols - 1
	}
	t.cursor.Col = col
	t.nextPrintWraps = false
}

func (t *Terminal) moveCursorHome() {
	t.cursor.Col = 0
	t.cursor.Row = t.actualTopMargin()
	t.nextPrintWraps = false
}

func (t *Terminal) moveCursorToNextTab(n int) {
	col := t.cursor.Col
	for i := 0; i < n; i++ {
		if next, ok := t.tabs.After(col); ok {
			col = next
		} else {
			col = t.cols - 1
			break
		}
	}
	t.doMoveCursorToCol(col)
}

func (t *Terminal) moveCursorToPrevTab(n int) {
	col := t.cursor.Col
	for i := 0; i < n; i++ {
		if prev, ok := t.tabs.Before(col); ok {
			col = prev
		} else {
			col = 0
			break
		}
	}
	t.doMoveCursorToCol(col)
}

func (t *Terminal) moveCursorDownWithScroll() {
	if t.cursor.Row == t.actualBottomMargin() {
		t.scrollUpInRegion(1)
	} else if t.cursor.Row < t.rows-1 {
		t.cursor.Row++
	}
}

func (t *Terminal) cursorDown(n int) {
	bottom := t.rows - 1
	if t.cursor.Row <= t.actualBottomMargin() {
		bottom = t.actualBottomMargin()
	}
	row := t.cursor.Row + n
	if row > bottom {
		row = bottom
	}
	t.cursor.Row = row
	t.nextPrintWraps = false
}

func (t *Terminal) cursorUp(n int) {
	top := 0
	if t.cursor.Row >= t.actualTopMargin() {
		top = t.actualTopMargin()
	}
	row := t.cursor.Row - n
	if row < top {
		row = top
	}
	t.cursor.Row = row
	t.nextPrintWraps = false
}

// --- buffer switching -------------------------------------------------------

func (t *Terminal) switchToAlternateBuffer() {
	if t.activeType != BufferPrimary {
		return
	}
	t.savedCtx, t.alternateSavedCtx = t.alternateSavedCtx, t.savedCtx
	t.buffer, t.otherBuffer = t.otherBuffer, t.buffer
	t.activeType = BufferAlternate
	zero := 0
	pen := t.pen
	t.buffer = NewBuffer(t.cols, t.rows, &zero, &pen)
	t.dirty.Extend(0, t.rows)
}

func (t *Terminal) switchToPrimaryBuffer() {
	if t.activeType != BufferAlternate {
		return
	}
	t.savedCtx, t.alternateSavedCtx = t.alternateSavedCtx, t.savedCtx
	t.buffer, t.otherBuffer = t.otherBuffer, t.buffer
	t.activeType = BufferPrimary
	t.dirty.Extend(0, t.rows)
}

// --- resize ------------------------------------------------------------------

// reflow re-splits the active buffer for the current cols/rows and resets
// next_print_wraps; called after every dimension change.
func (t *Terminal) reflow() {
	t.nextPrintWraps = false
	col, row := t.buffer.Resize(t.cols, t.rows, t.cursor.Col, t.cursor.Row, t.pen)
	t.cursor.Col, t.cursor.Row = col, row
	t.dirty.Resize(t.rows)
	t.dirty.Extend(0, t.rows)

	t.savedCtx.CursorCol = t.clampCol(t.savedCtx.CursorCol)
	t.savedCtx.CursorRow = t.clampRow(t.savedCtx.CursorRow)
}

// Resize changes the terminal's dimensions; only effective when built
// resizable (matching XTWINOPS's own gating).
func (t *Terminal) Resize(cols, rows int) {
	if !t.resizable {
		return
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == t.cols && rows == t.rows {
		return
	}
	if cols != t.cols {
		if cols < t.cols {
			t.tabs.Contract(cols)
		} else {
			t.tabs.Expand(cols)
		}
	}
	if rows != t.rows {
		t.topMargin = 0
		t.bottomMargin = rows - 1
	}
	t.cols, t.rows = cols, rows
	t.reflow()
	t.resized = true
}

// --- reset ---------------------------------------------------------------

func (t *Terminal) softReset() {
	t.cursor.Visible = true
	t.topMargin = 0
	t.bottomMargin = t.rows - 1
	t.insertMode = false
	t.originMode = OriginAbsolute
	t.pen = Pen{}
	t.charsets = [2]Charset{CharsetASCII, CharsetASCII}
	t.activeCharset = 0
	t.savedCtx = defaultSavedContext()
}

func (t *Terminal) hardReset() {
	zero := 0
	t.buffer = NewBuffer(t.cols, t.rows, t.scrollbackLimit, nil)
	t.otherBuffer = NewBuffer(t.cols, t.rows, &zero, nil)
	t.activeType = BufferPrimary
	t.tabs = NewTabs(t.cols)
	t.cursor = Cursor{Visible: true}
	t.pen = Pen{}
	t.charsets = [2]Charset{CharsetASCII, CharsetASCII}
	t.activeCharset = 0
	t.insertMode = false
	t.originMode = OriginAbsolute
	t.autoWrapMode = true
	t.newLineMode = false
	t.cursorKeyMode = CursorKeyNormal
	t.nextPrintWraps = false
	t.topMargin = 0
	t.bottomMargin = t.rows - 1
	t.savedCtx = defaultSavedContext()
	t.alternateSavedCtx = defaultSavedContext()
	t.dirty = newDirtyLines(t.rows)
	t.resized = false
}

// --- Performer implementation ----------------------------------------------

// Print writes ch through the active charset at the cursor, handling
// auto-wrap / deferred-wrap / insert-mode.
func (t *Terminal) Print(ch rune) {
	ch = t.charsets[t.activeCharset].Translate(ch)

	if t.autoWrapMode && t.nextPrintWraps {
		t.buffer.Wrap(t.cursor.Row)
		if t.cursor.Row == t.actualBottomMargin() {
			t.scrollUpInRegion(1)
		} else if t.cursor.Row < t.rows-1 {
			t.cursor.Row++
		}
		t.cursor.Col = 0
		t.nextPrintWraps = false
	}

	width := charDisplayWidth(ch)
	nextCol := t.cursor.Col + width
	if nextCol >= t.cols {
		if t.insertMode {
			t.buffer.Insert(t.cols-1, t.cursor.Row, 1, t.pen)
		}
		t.buffer.Print(t.cols-1, t.cursor.Row, ch, t.pen)
		if t.autoWrapMode {
			t.cursor.Col = t.cols
			t.nextPrintWraps = true
		}
	} else {
		if t.insertMode {
			t.buffer.Insert(t.cursor.Col, t.cursor.Row, width, t.pen)
		}
		t.buffer.Print(t.cursor.Col, t.cursor.Row, ch, t.pen)
		t.cursor.Col = nextCol
	}
	t.dirty.Add(t.cursor.Row)
}

// Hook/Put/Unhook/OSCDispatch: DCS/OSC side-effects beyond consumption are
// a Non-goal; these exist only so the parser's state machine stays
// complete and never leaks an unterminated sequence into Ground.
func (t *Terminal) Hook()                  {}
func (t *Terminal) Put(ch rune)            { _ = ch }
func (t *Terminal) Unhook()                {}
func (t *Terminal) OSCDispatch(data []rune) { _ = data }

// Execute dispatches a decoded Function to the matching handler.
func (t *Terminal) Execute(fn Function) {
	switch fn.Kind {
	case FnBS:
		t.bs()
	case FnCBT:
		t.moveCursorToPrevTab(fn.N)
	case FnCHA:
		t.doMoveCursorToCol(asUsize(fn.N, 1) - 1)
	case FnCHT:
		t.moveCursorToNextTab(fn.N)
	case FnCNL:
		t.cursorDown(fn.N)
		t.cursor.Col = 0
	case FnCPL:
		t.cursorUp(fn.N)
		t.cursor.Col = 0
	case FnCR:
		t.doMoveCursorToCol(0)
	case FnCTC:
		t.ctc(fn.N)
	case FnCUB:
		t.cub(fn.N)
	case FnCUD:
		t.cursorDown(fn.N)
	case FnCUF:
		t.moveCursorToRelCol(fn.N)
	case FnCUP:
		t.doMoveCursorToCol(fn.M - 1)
		t.doMoveCursorToRow(fn.N - 1)
	case FnCUU:
		t.cursorUp(fn.N)
	case FnDCH:
		t.dch(fn.N)
	case FnDECALN:
		t.decaln()
	case FnDECSTBM:
		t.decstbm(fn.N, fn.M)
	case FnDECSTR:
		t.softReset()
	case FnDECSET:
		t.decset(fn.Modes)
	case FnDECRST:
		t.decrst(fn.Modes)
	case FnDL:
		t.dl(fn.N)
	case FnECH:
		t.buffer.Erase(t.cursor.Col, t.cursor.Row, EraseNextChars, fn.N, t.pen)
		t.dirty.Add(t.cursor.Row)
	case FnED:
		t.ed(fn.EdMode)
	case FnEL:
		t.el(fn.ElMode)
	case FnG1D4:
		t.charsets[1] = fn.Charset
	case FnGZD4:
		t.charsets[0] = fn.Charset
	case FnHT:
		t.moveCursorToNextTab(1)
	case FnHTS:
		t.hts()
	case FnICH:
		t.buffer.Insert(t.cursor.Col, t.cursor.Row, fn.N, t.pen)
		t.dirty.Add(t.cursor.Row)
	case FnIL:
		t.il(fn.N)
	case FnLF:
		t.moveCursorDownWithScroll()
		if t.newLineMode {
			t.doMoveCursorToCol(0)
		}
	case FnNEL:
		t.moveCursorDownWithScroll()
		t.doMoveCursorToCol(0)
	case FnPrint:
		t.Print(fn.Ch)
	case FnRC:
		t.restoreCursor()
	case FnREP:
		t.rep(fn.N)
	case FnRI:
		t.ri()
	case FnRIS:
		t.hardReset()
	case FnRM:
		t.sm(fn.Modes, false)
	case FnSC:
		t.saveCursor()
	case FnSD:
		t.scrollDownInRegion(fn.N)
	case FnSGR:
		t.sgr(fn.SGR)
	case FnSI:
		t.activeCharset = 0
	case FnSM:
		t.sm(fn.Modes, true)
	case FnSO:
		t.activeCharset = 1
	case FnSU:
		t.scrollUpInRegion(fn.N)
	case FnTBC:
		t.tbc(fn.N)
	case FnVPA:
		t.doMoveCursorToRow(fn.N - 1)
	case FnVPR:
		t.cursorDown(fn.N)
	case FnXTWinOps:
		t.xtwinops(fn.N, fn.M, fn.P3)
	}
}

func (t *Terminal) bs() {
	if t.nextPrintWraps {
		t.moveCursorToRelCol(-2)
	} else {
		t.moveCursorToRelCol(-1)
	}
}

func (t *Terminal) cub(n int) {
	if t.nextPrintWraps {
		t.moveCursorToRelCol(-n - 1)
	} else {
		t.moveCursorToRelCol(-n)
	}
}

func (t *Terminal) hts() {
	if t.cursor.Col > 0 && t.cursor.Col < t.cols {
		t.tabs.Set(t.cursor.Col)
	}
}

func (t *Terminal) ri() {
	if t.cursor.Row == t.actualTopMargin() {
		t.scrollDownInRegion(1)
	} else if t.cursor.Row > 0 {
		t.moveCursorToRow(t.cursor.Row - 1)
	}
}

func (t *Terminal) decaln() {
	for row := 0; row < t.rows; row++ {
		t.buffer.Erase(0, row, EraseWholeLine, 0, Pen{})
		for col := 0; col < t.cols; col++ {
			t.buffer.Print(col, row, 'E', Pen{})
		}
	}
	t.dirty.Extend(0, t.rows)
}

func (t *Terminal) il(n int) {
	top, bottom := t.cursor.Row, t.rows-1
	if t.cursor.Row <= t.bottomMargin {
		bottom = t.bottomMargin
	}
	t.buffer.ScrollDown(top, bottom, n, t.pen)
	t.dirty.Extend(top, bottom+1)
}

func (t *Terminal) dl(n int) {
	top, bottom := t.cursor.Row, t.rows-1
	if t.cursor.Row <= t.bottomMargin {
		bottom = t.bottomMargin
	}
	t.buffer.ScrollUp(top, bottom, n, t.pen)
	t.dirty.Extend(top, bottom+1)
}

func (t *Terminal) dch(n int) {
	col := t.cursor.Col
	if col >= t.cols {
		col = t.cols - 1
	}
	t.buffer.Delete(col, t.cursor.Row, n, t.pen)
	t.dirty.Add(t.cursor.Row)
}

func (t *Terminal) ctc(param int) {
	switch param {
	case 0:
		t.hts()
	case 2:
		t.tabs.Unset(t.cursor.Col)
	case 5:
		t.tabs.Clear()
	}
}

func (t *Terminal) tbc(param int) {
	switch param {
	case 0:
		t.tabs.Unset(t.cursor.Col)
	case 3:
		t.tabs.Clear()
	}
}

func (t *Terminal) rep(n int) {
	if t.cursor.Col == 0 {
		return
	}
	ch := t.buffer.viewLine(t.cursor.Row).Cells[t.cursor.Col-1].Char
	for i := 0; i < n; i++ {
		t.Print(ch)
	}
}

func (t *Terminal) ed(mode EdMode) {
	switch mode {
	case EdBelow:
		t.buffer.Erase(t.cursor.Col, t.cursor.Row, EraseFromCursorToEndOfView, 0, t.pen)
		t.dirty.Extend(t.cursor.Row, t.rows)
	case EdAbove:
		t.buffer.Erase(t.cursor.Col, t.cursor.Row, EraseFromStartOfViewToCursor, 0, t.pen)
		t.dirty.Extend(0, t.cursor.Row+1)
	case EdAll:
		t.buffer.Erase(t.cursor.Col, t.cursor.Row, EraseWholeView, 0, t.pen)
		t.dirty.Extend(0, t.rows)
	}
}

func (t *Terminal) el(mode ElMode) {
	switch mode {
	case ElToRight:
		t.buffer.Erase(t.cursor.Col, t.cursor.Row, EraseFromCursorToEndOfLine, 0, t.pen)
	case ElToLeft:
		t.buffer.Erase(t.cursor.Col, t.cursor.Row, EraseFromStartOfLineToCursor, 0, t.pen)
	case ElAll:
		t.buffer.Erase(t.cursor.Col, t.cursor.Row, EraseWholeLine, 0, t.pen)
	}
	t.dirty.Add(t.cursor.Row)
}

func (t *Terminal) decstbm(top, bottom int) {
	top0 := asUsize(top, 1) - 1
	bottom0 := asUsize(bottom, t.rows) - 1
	if top0 < bottom0 && bottom0 < t.rows {
		t.topMargin = top0
		t.bottomMargin = bottom0
	}
	t.moveCursorHome()
}

func (t *Terminal) xtwinops(p1, p2, p3 int) {
	if !t.resizable || asUsize(p1, 0) != 8 {
		return
	}
	cols := asUsize(p3, t.cols)
	rows := asUsize(p2, t.rows)

	switch {
	case cols < t.cols:
		t.tabs.Contract(cols)
		t.resized = true
	case cols > t.cols:
		t.tabs.Expand(cols)
		t.resized = true
	}
	if rows != t.rows {
		t.topMargin = 0
		t.bottomMargin = rows - 1
		t.resized = true
	}

	t.cols, t.rows = cols, rows
	t.reflow()
}

func (t *Terminal) sm(modes []int, set bool) {
	for _, m := range modes {
		switch m {
		case 4:
			t.insertMode = set
		case 20:
			t.newLineMode = set
		}
	}
}

func (t *Terminal) decset(modes []int) {
	for _, m := range modes {
		switch m {
		case 1:
			t.cursorKeyMode = CursorKeyApplication
		case 6:
			t.originMode = OriginRelative
			t.moveCursorHome()
		case 7:
			t.autoWrapMode = true
		case 25:
			t.cursor.Visible = true
		case 47, 1047:
			t.switchToAlternateBuffer()
			t.reflow()
		case 1048:
			t.saveCursor()
		case 1049:
			t.saveCursor()
			t.switchToAlternateBuffer()
			t.reflow()
		}
	}
}

func (t *Terminal) decrst(modes []int) {
	for _, m := range modes {
		switch m {
		case 1:
			t.cursorKeyMode = CursorKeyNormal
		case 6:
			t.originMode = OriginAbsolute
			t.moveCursorHome()
		case 7:
			t.autoWrapMode = false
		case 25:
			t.cursor.Visible = false
		case 47, 1047:
			t.switchToPrimaryBuffer()
			t.reflow()
		case 1048:
			t.restoreCursor()
		case 1049:
			t.switchToPrimaryBuffer()
			t.restoreCursor()
			t.reflow()
		}
	}
}

// sgr applies a Select Graphic Rendition sequence: ps is one slice of
// colon-separated sub-parts per semicolon-separated parameter.
func (t *Terminal) sgr(ps [][]uint16) {
	for i := 0; i < len(ps); i++ {
		sub := ps[i]
		if len(sub) == 0 {
			continue
		}
		switch {
		case eq(sub, 0):
			t.pen = Pen{}
		case eq(sub, 1):
			t.pen.Intensity = IntensityBold
		case eq(sub, 2):
			t.pen.Intensity = IntensityFaint
		case eq(sub, 3):
			t.pen.Italic = true
		case eq(sub, 4):
			t.pen.Underline = true
		case eq(sub, 5):
			t.pen.Blink = true
		case eq(sub, 7):
			t.pen.Inverse = true
		case eq(sub, 9):
			t.pen.Strikethrough = true
		case eq(sub, 21), eq(sub, 22):
			t.pen.Intensity = IntensityNormal
		case eq(sub, 23):
			t.pen.Italic = false
		case eq(sub, 24):
			t.pen.Underline = false
		case eq(sub, 25):
			t.pen.Blink = false
		case eq(sub, 27):
			t.pen.Inverse = false
		case eq(sub, 39):
			t.pen.Foreground = Color{}
		case eq(sub, 49):
			t.pen.Background = Color{}
		case len(sub) == 1 && sub[0] >= 30 && sub[0] <= 37:
			t.pen.Foreground = Indexed(uint8(sub[0] - 30))
		case len(sub) == 1 && sub[0] >= 40 && sub[0] <= 47:
			t.pen.Background = Indexed(uint8(sub[0] - 40))
		case len(sub) == 1 && sub[0] >= 90 && sub[0] <= 97:
			t.pen.Foreground = Indexed(uint8(sub[0]-90) + 8)
		case len(sub) == 1 && sub[0] >= 100 && sub[0] <= 107:
			t.pen.Background = Indexed(uint8(sub[0]-100) + 8)
		case sub[0] == 38 && len(sub) >= 5 && sub[1] == 2:
			t.pen.Foreground = RGB(uint8(sub[2]), uint8(sub[3]), uint8(sub[4]))
		case sub[0] == 38 && len(sub) >= 3 && sub[1] == 5:
			t.pen.Foreground = Indexed(uint8(sub[2]))
		case sub[0] == 48 && len(sub) >= 5 && sub[1] == 2:
			t.pen.Background = RGB(uint8(sub[2]), uint8(sub[3]), uint8(sub[4]))
		case sub[0] == 48 && len(sub) >= 3 && sub[1] == 5:
			t.pen.Background = Indexed(uint8(sub[2]))
		case sub[0] == 38 && len(sub) == 1:
			i = t.sgrSemicolonColor(ps, i, true)
		case sub[0] == 48 && len(sub) == 1:
			i = t.sgrSemicolonColor(ps, i, false)
		}
	}
}

func eq(sub []uint16, v uint16) bool {
	return len(sub) == 1 && sub[0] == v
}

// sgrSemicolonColor handles the semicolon-delimited form of 38/48, where
// "2"/"5" and the color components are separate parameters rather than
// colon sub-parts of the same one. Returns the index of the last
// parameter consumed.
func (t *Terminal) sgrSemicolonColor(ps [][]uint16, i int, fg bool) int {
	if i+1 >= len(ps) || len(ps[i+1]) == 0 {
		return i
	}
	switch ps[i+1][0] {
	case 2:
		if i+4 < len(ps) {
			c := RGB(uint8(firstOr0(ps[i+2])), uint8(firstOr0(ps[i+3])), uint8(firstOr0(ps[i+4])))
			if fg {
				t.pen.Foreground = c
			} else {
				t.pen.Background = c
			}
			return i + 4
		}
		return i + 1
	case 5:
		if i+2 < len(ps) {
			c := Indexed(uint8(firstOr0(ps[i+2])))
			if fg {
				t.pen.Foreground = c
			} else {
				t.pen.Background = c
			}
			return i + 2
		}
		return i + 1
	}
	return i
}

func firstOr0(sub []uint16) uint16 {
	if len(sub) == 0 {
		return 0
	}
	return sub[0]
}
