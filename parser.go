package govterm

// parserState is one state of the VT500-series input state machine.
type parserState uint8

const (
	stateGround parserState = iota
	stateEscape
	stateEscapeIntermediate
	stateCsiEntry
	stateCsiParam
	stateCsiIntermediate
	stateCsiIgnore
	stateDcsEntry
	stateDcsParam
	stateDcsIntermediate
	stateDcsPassthrough
	stateDcsIgnore
	stateOscString
	stateSosPmApcString
)

// Performer receives the semantic actions a Parser decodes from input.
// Terminal implements this interface; it is factored out so the parser
// has no dependency on Terminal's internals.
type Performer interface {
	Print(ch rune)
	Execute(fn Function)
	Hook()
	Put(ch rune)
	Unhook()
	OSCDispatch(data []rune)
}

// Parser is a Paul Williams / VT500-series state machine: it classifies
// each input rune and drives a Performer with print/execute actions. It
// holds no reference to the Terminal it feeds; Feed takes the performer
// explicitly so the facade owns the wiring.
type Parser struct {
	state        parserState
	intermediate []byte
	params       []Param
	oscData      []rune
	private      byte // '?' if the current CSI/DCS carries a private-mode prefix, else 0
}

// NewParser builds a parser in the Ground state.
func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) clear() {
	p.intermediate = p.intermediate[:0]
	p.params = p.params[:0]
	p.private = 0
}

func (p *Parser) curParam() *Param {
	if len(p.params) == 0 {
		p.params = append(p.params, Param{})
	}
	return &p.params[len(p.params)-1]
}

// Feed decodes one rune, driving perf as appropriate.
func (p *Parser) Feed(r rune, perf Performer) {
	// Anywhere transitions.
	switch r {
	case 0x18, 0x1a:
		p.state = stateGround
		return
	case 0x1b:
		p.clear()
		p.state = stateEscape
		return
	case 0x90:
		p.clear()
		p.state = stateDcsEntry
		return
	case 0x9b:
		p.clear()
		p.state = stateCsiEntry
		return
	case 0x9c:
		p.state = stateGround
		return
	case 0x9d:
		p.oscData = p.oscData[:0]
		p.state = stateOscString
		return
	case 0x98, 0x9e, 0x9f:
		p.state = stateSosPmApcString
		return
	}
	if r >= 0x80 && r <= 0x9f {
		// Remaining C1 controls: execute and return to Ground.
		if fn, ok := controlFunction(r); ok {
			perf.Execute(fn)
		}
		p.state = stateGround
		return
	}

	switch p.state {
	case stateGround:
		p.feedGround(r, perf)
	case stateEscape:
		p.feedEscape(r, perf)
	case stateEscapeIntermediate:
		p.feedEscapeIntermediate(r, perf)
	case stateCsiEntry:
		p.feedCsiEntry(r, perf)
	case stateCsiParam:
		p.feedCsiParam(r, perf)
	case stateCsiIntermediate:
		p.feedCsiIntermediate(r, perf)
	case stateCsiIgnore:
		p.feedCsiIgnore(r)
	case stateDcsEntry:
		p.feedDcsEntry(r, perf)
	case stateDcsParam:
		p.feedDcsParam(r, perf)
	case stateDcsIntermediate:
		p.feedDcsIntermediate(r, perf)
	case stateDcsPassthrough:
		p.feedDcsPassthrough(r, perf)
	case stateDcsIgnore:
		p.feedDcsIgnore(r)
	case stateOscString:
		p.feedOscString(r, perf)
	case stateSosPmApcString:
		// swallowed entirely; terminated only by an anywhere transition.
	}
}

// FeedString decodes s as UTF-8 (invalid sequences become the Unicode
// replacement character) and feeds each rune in order.
func (p *Parser) FeedString(s string, perf Performer) {
	for _, r := range s {
		p.Feed(r, perf)
	}
}

func isExecutable(r rune) bool {
	return r <= 0x17 || r == 0x19 || (r >= 0x1c && r <= 0x1f)
}

func controlFunction(r rune) (Function, bool) {
	switch r {
	case 0x08:
		return Function{Kind: FnBS}, true
	case 0x09:
		return Function{Kind: FnHT}, true
	case 0x0a, 0x0b, 0x0c:
		return Function{Kind: FnLF}, true
	case 0x0d:
		return Function{Kind: FnCR}, true
	case 0x0e:
		return Function{Kind: FnSO}, true
	case 0x0f:
		return Function{Kind: FnSI}, true
	case 0x84:
		return Function{Kind: FnLF}, true
	case 0x85:
		return Function{Kind: FnNEL}, true
	case 0x88:
		return Function{Kind: FnHTS}, true
	case 0x8d:
		return Function{Kind: FnRI}, true
	default:
		return Function{}, false
	}
}

func (p *Parser) feedGround(r rune, perf Performer) {
	if isExecutable(r) {
		if fn, ok := controlFunction(r); ok {
			perf.Execute(fn)
		}
		return
	}
	if r >= 0x20 {
		perf.Print(r)
	}
}

func (p *Parser) feedEscape(r rune, perf Performer) {
	switch {
	case isExecutable(r):
		if fn, ok := controlFunction(r); ok {
			perf.Execute(fn)
		}
	case r == '[':
		p.clear()
		p.state = stateCsiEntry
	case r == ']':
		p.oscData = p.oscData[:0]
		p.state = stateOscString
	case r == 'P':
		p.clear()
		p.state = stateDcsEntry
	case r == 'X' || r == '^' || r == '_':
		p.state = stateSosPmApcString
	case r >= 0x20 && r <= 0x2f:
		p.intermediate = append(p.intermediate, byte(r))
		p.state = stateEscapeIntermediate
	case r >= 0x30 && r <= 0x7e:
		p.escDispatch(r, perf)
		p.state = stateGround
	}
}

func (p *Parser) feedEscapeIntermediate(r rune, perf Performer) {
	switch {
	case isExecutable(r):
		if fn, ok := controlFunction(r); ok {
			perf.Execute(fn)
		}
	case r >= 0x20 && r <= 0x2f:
		p.intermediate = append(p.intermediate, byte(r))
	case r >= 0x30 && r <= 0x7e:
		p.escDispatch(r, perf)
		p.state = stateGround
	}
}

func (p *Parser) escDispatch(final rune, perf Performer) {
	defer func() { p.intermediate = p.intermediate[:0] }()

	if len(p.intermediate) == 1 && (p.intermediate[0] == '(' || p.intermediate[0] == ')') {
		cs := CharsetASCII
		if final == '0' {
			cs = CharsetDrawing
		}
		if p.intermediate[0] == '(' {
			perf.Execute(Function{Kind: FnGZD4, Charset: cs})
		} else {
			perf.Execute(Function{Kind: FnG1D4, Charset: cs})
		}
		return
	}

	if len(p.intermediate) != 0 {
		return
	}

	switch final {
	case '7':
		perf.Execute(Function{Kind: FnSC})
	case '8':
		perf.Execute(Function{Kind: FnRC})
	case 'c':
		perf.Execute(Function{Kind: FnRIS})
	case 'D':
		perf.Execute(Function{Kind: FnLF})
	case 'E':
		perf.Execute(Function{Kind: FnNEL})
	case 'H':
		perf.Execute(Function{Kind: FnHTS})
	case 'M':
		perf.Execute(Function{Kind: FnRI})
	}
}

func (p *Parser) feedCsiEntry(r rune, perf Performer) {
	switch {
	case isExecutable(r):
		if fn, ok := controlFunction(r); ok {
			perf.Execute(fn)
		}
	case r == '?' || r == '<' || r == '=' || r == '>':
		p.private = byte(r)
		p.state = stateCsiParam
	case r >= '0' && r <= '9':
		p.curParam().addDigit(uint16(r - '0'))
		p.state = stateCsiParam
	case r == ':' || r == ';':
		if r == ':' {
			p.curParam().addPart()
		} else {
			p.curParam()
			if len(p.params) < maxParams {
				p.params = append(p.params, Param{})
			}
		}
		p.state = stateCsiParam
	case r >= 0x20 && r <= 0x2f:
		p.intermediate = append(p.intermediate, byte(r))
		p.state = stateCsiIntermediate
	case r == 0x7f:
		// ignore (DEL)
	case r >= 0x40 && r <= 0x7e:
		p.csiDispatch(r, perf)
		p.state = stateGround
	default:
		p.state = stateCsiIgnore
	}
}

func (p *Parser) feedCsiParam(r rune, perf Performer) {
	switch {
	case isExecutable(r):
		if fn, ok := controlFunction(r); ok {
			perf.Execute(fn)
		}
	case r >= '0' && r <= '9':
		p.curParam().addDigit(uint16(r - '0'))
	case r == ':':
		p.curParam().addPart()
	case r == ';':
		p.curParam()
		if len(p.params) < maxParams {
			p.params = append(p.params, Param{})
		}
	case r == '<' || r == '=' || r == '>' || r == 0x7f:
		// ignore
	case r >= 0x20 && r <= 0x2f:
		p.intermediate = append(p.intermediate, byte(r))
		p.state = stateCsiIntermediate
	case r >= 0x40 && r <= 0x7e:
		p.csiDispatch(r, perf)
		p.state = stateGround
	default:
		p.state = stateCsiIgnore
	}
}

func (p *Parser) feedCsiIntermediate(r rune, perf Performer) {
	switch {
	case isExecutable(r):
		if fn, ok := controlFunction(r); ok {
			perf.Execute(fn)
		}
	case r >= 0x20 && r <= 0x2f:
		p.intermediate = append(p.intermediate, byte(r))
	case r >= 0x40 && r <= 0x7e:
		p.csiDispatch(r, perf)
		p.state = stateGround
	default:
		p.state = stateCsiIgnore
	}
}

func (p *Parser) feedCsiIgnore(r rune) {
	if r >= 0x40 && r <= 0x7e {
		p.state = stateGround
	}
}

func (p *Parser) n(i int) int {
	if i < len(p.params) {
		return int(p.params[i].AsUint16())
	}
	return 0
}

func (p *Parser) modes() []int {
	out := make([]int, len(p.params))
	for i, pr := range p.params {
		out[i] = int(pr.AsUint16())
	}
	return out
}

func (p *Parser) sgrGroups() [][]uint16 {
	out := make([][]uint16, len(p.params))
	for i, pr := range p.params {
		out[i] = append([]uint16(nil), pr.Parts()...)
	}
	return out
}

func (p *Parser) csiDispatch(final rune, perf Performer) {
	defer p.clear()

	if p.private == '?' {
		switch final {
		case 'h':
			perf.Execute(Function{Kind: FnDECSET, Modes: p.modes()})
		case 'l':
			perf.Execute(Function{Kind: FnDECRST, Modes: p.modes()})
		}
		return
	}
	if p.private != 0 {
		return // '<'/'='/'>' private CSI forms are not part of this spec's operation set
	}

	switch final {
	case 'A':
		perf.Execute(Function{Kind: FnCUU, N: asUsize(p.n(0), 1)})
	case 'B':
		perf.Execute(Function{Kind: FnCUD, N: asUsize(p.n(0), 1)})
	case 'C':
		perf.Execute(Function{Kind: FnCUF, N: asUsize(p.n(0), 1)})
	case 'D':
		perf.Execute(Function{Kind: FnCUB, N: asUsize(p.n(0), 1)})
	case 'E':
		perf.Execute(Function{Kind: FnCNL, N: asUsize(p.n(0), 1)})
	case 'F':
		perf.Execute(Function{Kind: FnCPL, N: asUsize(p.n(0), 1)})
	case 'G':
		perf.Execute(Function{Kind: FnCHA, N: asUsize(p.n(0), 1)})
	case 'H', 'f':
		perf.Execute(Function{Kind: FnCUP, N: asUsize(p.n(0), 1), M: asUsize(p.n(1), 1)})
	case 'I':
		perf.Execute(Function{Kind: FnCHT, N: asUsize(p.n(0), 1)})
	case 'J':
		perf.Execute(Function{Kind: FnED, EdMode: EdMode(p.n(0))})
	case 'K':
		perf.Execute(Function{Kind: FnEL, ElMode: ElMode(p.n(0))})
	case 'L':
		perf.Execute(Function{Kind: FnIL, N: asUsize(p.n(0), 1)})
	case 'M':
		perf.Execute(Function{Kind: FnDL, N: asUsize(p.n(0), 1)})
	case 'P':
		perf.Execute(Function{Kind: FnDCH, N: asUsize(p.n(0), 1)})
	case 'S':
		perf.Execute(Function{Kind: FnSU, N: asUsize(p.n(0), 1)})
	case 'T':
		perf.Execute(Function{Kind: FnSD, N: asUsize(p.n(0), 1)})
	case 'W':
		perf.Execute(Function{Kind: FnCTC, N: p.n(0)})
	case 'X':
		perf.Execute(Function{Kind: FnECH, N: asUsize(p.n(0), 1)})
	case 'Z':
		perf.Execute(Function{Kind: FnCBT, N: asUsize(p.n(0), 1)})
	case '@':
		perf.Execute(Function{Kind: FnICH, N: asUsize(p.n(0), 1)})
	case 'b':
		perf.Execute(Function{Kind: FnREP, N: asUsize(p.n(0), 1)})
	case 'd':
		perf.Execute(Function{Kind: FnVPA, N: asUsize(p.n(0), 1)})
	case 'e':
		perf.Execute(Function{Kind: FnVPR, N: asUsize(p.n(0), 1)})
	case 'g':
		perf.Execute(Function{Kind: FnTBC, N: p.n(0)})
	case 'h':
		perf.Execute(Function{Kind: FnSM, Modes: p.modes()})
	case 'l':
		perf.Execute(Function{Kind: FnRM, Modes: p.modes()})
	case 'm':
		groups := p.sgrGroups()
		if len(groups) == 0 {
			groups = [][]uint16{{0}}
		}
		perf.Execute(Function{Kind: FnSGR, SGR: groups})
	case 'r':
		perf.Execute(Function{Kind: FnDECSTBM, N: p.n(0), M: p.n(1)})
	case 's':
		perf.Execute(Function{Kind: FnSC})
	case 'u':
		perf.Execute(Function{Kind: FnRC})
	case 't':
		perf.Execute(Function{Kind: FnXTWinOps, N: p.n(0), M: p.n(1), P3: p.n(2)})
	}
}

func (p *Parser) feedDcsEntry(r rune, perf Performer) {
	switch {
	case isExecutable(r):
	case r == '?':
		p.private = '?'
		p.state = stateDcsParam
	case r >= '0' && r <= '9':
		p.curParam().addDigit(uint16(r - '0'))
		p.state = stateDcsParam
	case r == ':' || r == ';':
		p.state = stateDcsParam
	case r >= 0x20 && r <= 0x2f:
		p.intermediate = append(p.intermediate, byte(r))
		p.state = stateDcsIntermediate
	case r >= 0x40 && r <= 0x7e:
		perf.Hook()
		p.state = stateDcsPassthrough
	default:
		p.state = stateDcsIgnore
	}
}

func (p *Parser) feedDcsParam(r rune, perf Performer) {
	switch {
	case r >= '0' && r <= '9':
		p.curParam().addDigit(uint16(r - '0'))
	case r == ':' || r == ';':
	case r >= 0x20 && r <= 0x2f:
		p.intermediate = append(p.intermediate, byte(r))
		p.state = stateDcsIntermediate
	case r >= 0x40 && r <= 0x7e:
		perf.Hook()
		p.state = stateDcsPassthrough
	default:
		p.state = stateDcsIgnore
	}
}

func (p *Parser) feedDcsIntermediate(r rune, perf Performer) {
	switch {
	case r >= 0x20 && r <= 0x2f:
		p.intermediate = append(p.intermediate, byte(r))
	case r >= 0x40 && r <= 0x7e:
		perf.Hook()
		p.state = stateDcsPassthrough
	default:
		p.state = stateDcsIgnore
	}
}

func (p *Parser) feedDcsPassthrough(r rune, perf Performer) {
	if isExecutable(r) || r >= 0x20 {
		perf.Put(r)
		return
	}
	perf.Unhook()
	p.state = stateGround
	p.clear()
}

func (p *Parser) feedDcsIgnore(r rune) {
	_ = r
}

func (p *Parser) feedOscString(r rune, perf Performer) {
	if r == 0x07 {
		perf.OSCDispatch(p.oscData)
		p.oscData = p.oscData[:0]
		p.state = stateGround
		return
	}
	if r == 0x1b {
		// Not reached from Feed: its anywhere transition takes ESC first,
		// so an OSC string ended by ESC \ (ST) is dropped without an
		// OSCDispatch; only BEL dispatches it.
		perf.OSCDispatch(p.oscData)
		p.oscData = p.oscData[:0]
		p.clear()
		p.state = stateEscape
		return
	}
	if r >= 0x20 {
		p.oscData = append(p.oscData, r)
	}
}

// Dump returns any in-flight partial-sequence state as replayable bytes.
// This implementation only calls Feed/FeedString to completion between
// Terminal operations, so there is never partial state to report.
func (p *Parser) Dump() string {
	return ""
}
