package govterm

import "testing"

// recordingPerformer implements Performer and records every call for
// inspection, instead of acting on it.
type recordingPerformer struct {
	printed []rune
	execs   []Function
	hooked  bool
	put     []rune
	unhook  bool
	osc     [][]rune
}

func (r *recordingPerformer) Print(ch rune)       { r.printed = append(r.printed, ch) }
func (r *recordingPerformer) Execute(fn Function) { r.execs = append(r.execs, fn) }
func (r *recordingPerformer) Hook()               { r.hooked = true }
func (r *recordingPerformer) Put(ch rune)         { r.put = append(r.put, ch) }
func (r *recordingPerformer) Unhook()             { r.unhook = true }
func (r *recordingPerformer) OSCDispatch(data []rune) {
	r.osc = append(r.osc, append([]rune(nil), data...))
}

func (r *recordingPerformer) lastExec() Function {
	if len(r.execs) == 0 {
		return Function{}
	}
	return r.execs[len(r.execs)-1]
}

func TestParserGroundPrintsPrintableRunes(t *testing.T) {
	p := NewParser()
	perf := &recordingPerformer{}
	p.FeedString("hi", perf)
	if string(perf.printed) != "hi" {
		t.Errorf("printed = %q, want %q", string(perf.printed), "hi")
	}
}

func TestParserGroundExecutesC0Controls(t *testing.T) {
	p := NewParser()
	perf := &recordingPerformer{}
	p.Feed('\r', perf)
	p.Feed('\n', perf)
	p.Feed('\t', perf)
	if len(perf.execs) != 3 {
		t.Fatalf("expected 3 executed controls, got %d", len(perf.execs))
	}
	if perf.execs[0].Kind != FnCR || perf.execs[1].Kind != FnLF || perf.execs[2].Kind != FnHT {
		t.Errorf("unexpected control kinds: %+v", perf.execs)
	}
}

func TestParserCSICursorMovement(t *testing.T) {
	p := NewParser()
	perf := &recordingPerformer{}
	p.FeedString("\x1b[5A", perf)
	fn := perf.lastExec()
	if fn.Kind != FnCUU || fn.N != 5 {
		t.Errorf("CUU decode = %+v, want Kind=FnCUU N=5", fn)
	}
}

func TestParserCSIDefaultParamIsOne(t *testing.T) {
	p := NewParser()
	perf := &recordingPerformer{}
	p.FeedString("\x1b[B", perf)
	fn := perf.lastExec()
	if fn.Kind != FnCUD || fn.N != 1 {
		t.Errorf("CUD with no param = %+v, want N=1", fn)
	}
}

func TestParserCSICUPTwoParams(t *testing.T) {
	p := NewParser()
	perf := &recordingPerformer{}
	p.FeedString("\x1b[3;7H", perf)
	fn := perf.lastExec()
	if fn.Kind != FnCUP || fn.N != 3 || fn.M != 7 {
		t.Errorf("CUP decode = %+v, want N=3 M=7", fn)
	}
}

func TestParserCSIDECSETDispatchesPrivateModes(t *testing.T) {
	p := NewParser()
	perf := &recordingPerformer{}
	p.FeedString("\x1b[?25h", perf)
	fn := perf.lastExec()
	if fn.Kind != FnDECSET || len(fn.Modes) != 1 || fn.Modes[0] != 25 {
		t.Errorf("DECSET decode = %+v, want Modes=[25]", fn)
	}
}

func TestParserCSIDECRSTDispatchesPrivateModes(t *testing.T) {
	p := NewParser()
	perf := &recordingPerformer{}
	p.FeedString("\x1b[?7l", perf)
	fn := perf.lastExec()
	if fn.Kind != FnDECRST || len(fn.Modes) != 1 || fn.Modes[0] != 7 {
		t.Errorf("DECRST decode = %+v, want Modes=[7]", fn)
	}
}

func TestParserCSISGRColonRGB(t *testing.T) {
	p := NewParser()
	perf := &recordingPerformer{}
	p.FeedString("\x1b[38:2:10:20:30m", perf)
	fn := perf.lastExec()
	if fn.Kind != FnSGR {
		t.Fatalf("expected FnSGR, got %+v", fn)
	}
	if len(fn.SGR) != 1 || len(fn.SGR[0]) != 5 {
		t.Fatalf("expected one colon-grouped param with 5 parts, got %+v", fn.SGR)
	}
	want := []uint16{38, 2, 10, 20, 30}
	for i, v := range want {
		if fn.SGR[0][i] != v {
			t.Errorf("SGR[0][%d] = %d, want %d", i, fn.SGR[0][i], v)
		}
	}
}

func TestParserCSISGRSemicolonRGB(t *testing.T) {
	p := NewParser()
	perf := &recordingPerformer{}
	p.FeedString("\x1b[38;2;10;20;30m", perf)
	fn := perf.lastExec()
	if fn.Kind != FnSGR || len(fn.SGR) != 5 {
		t.Fatalf("expected 5 semicolon-separated params, got %+v", fn.SGR)
	}
	want := []uint16{38, 2, 10, 20, 30}
	for i, v := range want {
		if fn.SGR[i][0] != v {
			t.Errorf("SGR[%d][0] = %d, want %d", i, fn.SGR[i][0], v)
		}
	}
}

func TestParserESCCharsetSelection(t *testing.T) {
	p := NewParser()
	perf := &recordingPerformer{}
	p.FeedString("\x1b(0", perf)
	fn := perf.lastExec()
	if fn.Kind != FnGZD4 || fn.Charset != CharsetDrawing {
		t.Errorf("G0 charset select = %+v, want Kind=FnGZD4 Charset=CharsetDrawing", fn)
	}

	p.FeedString("\x1b)B", perf)
	fn = perf.lastExec()
	if fn.Kind != FnG1D4 || fn.Charset != CharsetASCII {
		t.Errorf("G1 charset select = %+v, want Kind=FnG1D4 Charset=CharsetASCII", fn)
	}
}

func TestParserESCBareFinals(t *testing.T) {
	cases := []struct {
		seq  string
		kind FunctionKind
	}{
		{"\x1b7", FnSC},
		{"\x1b8", FnRC},
		{"\x1bc", FnRIS},
		{"\x1bD", FnLF},
		{"\x1bE", FnNEL},
		{"\x1bH", FnHTS},
		{"\x1bM", FnRI},
	}
	for _, c := range cases {
		p := NewParser()
		perf := &recordingPerformer{}
		p.FeedString(c.seq, perf)
		if got := perf.lastExec().Kind; got != c.kind {
			t.Errorf("%q dispatched Kind=%v, want %v", c.seq, got, c.kind)
		}
	}
}

func TestParserDCSHooksAndPuts(t *testing.T) {
	p := NewParser()
	perf := &recordingPerformer{}
	p.FeedString("\x1bPq#0;2;0;0;0\x1b\\", perf)
	if !perf.hooked {
		t.Error("expected Hook() to have been called")
	}
	if string(perf.put) != "#0;2;0;0;0" {
		t.Errorf("passthrough data = %q, want %q", string(perf.put), "#0;2;0;0;0")
	}
}

func TestParserOSCDispatchesOnBEL(t *testing.T) {
	p := NewParser()
	perf := &recordingPerformer{}
	p.FeedString("\x1b]0;window title\x07", perf)
	if len(perf.osc) != 1 || string(perf.osc[0]) != "0;window title" {
		t.Errorf("OSC dispatch = %+v, want [\"0;window title\"]", perf.osc)
	}
}

func TestParserAnywhereESCAbandonsUnterminatedOSC(t *testing.T) {
	p := NewParser()
	perf := &recordingPerformer{}
	p.FeedString("\x1b]0;unterminated", perf)
	p.Feed('\x1b', perf)
	p.Feed('c', perf)
	if len(perf.osc) != 0 {
		t.Errorf("expected the unterminated OSC to never dispatch, got %+v", perf.osc)
	}
	if perf.lastExec().Kind != FnRIS {
		t.Errorf("expected ESC to resume as a fresh escape sequence dispatching RIS, got %+v", perf.lastExec())
	}
}

func TestParserAnywhereCANResetsToGround(t *testing.T) {
	p := NewParser()
	perf := &recordingPerformer{}
	p.FeedString("\x1b[3", perf)
	p.Feed(0x18, perf)
	p.FeedString("x", perf)
	if string(perf.printed) != "x" {
		t.Errorf("expected CAN to abort the CSI sequence and resume printing, got printed=%q", string(perf.printed))
	}
	if len(perf.execs) != 0 {
		t.Errorf("expected CAN to execute nothing, got %+v", perf.execs)
	}
}

func TestParserCSISGRWithNoParamsDefaultsToReset(t *testing.T) {
	p := NewParser()
	perf := &recordingPerformer{}
	p.FeedString("\x1b[m", perf)
	fn := perf.lastExec()
	if fn.Kind != FnSGR || len(fn.SGR) != 1 || fn.SGR[0][0] != 0 {
		t.Errorf("bare SGR decode = %+v, want one param [0]", fn)
	}
}
