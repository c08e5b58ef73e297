package govterm

import (
	"strconv"
	"strings"
)

// maxParams is the largest number of semicolon-separated parameters a CSI
// sequence accumulates; further ';' separators are ignored, so any later
// digits keep accumulating into the last parameter.
const maxParams = 16

// maxSubParts is the largest number of colon-separated sub-parts within a
// single parameter (used by colon-form SGR true-color/indexed-color
// sequences, e.g. 38:2:r:g:b).
const maxSubParts = 6

// Param is one CSI/SGR parameter, possibly carrying colon-separated
// sub-parts. Each numeric field saturates at 65535 rather than overflowing.
type Param struct {
	parts   [maxSubParts]uint16
	curPart int
}

// NewParam builds a Param whose first sub-part is v.
func NewParam(v uint16) Param {
	return Param{parts: [maxSubParts]uint16{v}}
}

// ParamsFromInts builds a single-subpart Param slice from plain integers,
// for constructing Functions programmatically (e.g. in tests).
func ParamsFromInts(vs ...int) []Param {
	out := make([]Param, len(vs))
	for i, v := range vs {
		out[i] = NewParam(uint16(v))
	}
	return out
}

// addDigit accumulates a decimal digit into the current sub-part,
// saturating at 65535.
func (p *Param) addDigit(d uint16) {
	v := uint32(p.parts[p.curPart])*10 + uint32(d)
	if v > 65535 {
		v = 65535
	}
	p.parts[p.curPart] = uint16(v)
}

// addPart starts a new colon-separated sub-part, capped at maxSubParts-1.
func (p *Param) addPart() {
	if p.curPart < maxSubParts-1 {
		p.curPart++
	}
}

// AsUint16 returns the first sub-part.
func (p Param) AsUint16() uint16 {
	return p.parts[0]
}

// Parts returns the populated sub-parts (always at least one).
func (p Param) Parts() []uint16 {
	return p.parts[:p.curPart+1]
}

// String renders the sub-parts colon-joined, matching the wire form.
func (p Param) String() string {
	parts := p.Parts()
	strs := make([]string, len(parts))
	for i, v := range parts {
		strs[i] = strconv.Itoa(int(v))
	}
	return strings.Join(strs, ":")
}

// asUsize returns value, or def if value is zero - the universal "0 means
// default" convention used by every CSI parameter in this interpreter.
func asUsize(value, def int) int {
	if value == 0 {
		return def
	}
	return value
}
