package govterm

import "strings"

// Intensity is the tri-state bold/faint/normal attribute; bold and faint
// are mutually exclusive, matching SGR 1/2/22 semantics.
type Intensity uint8

const (
	IntensityNormal Intensity = iota
	IntensityBold
	IntensityFaint
)

// Pen carries the visual attributes applied to subsequently printed cells.
// The zero value is the default pen: no colors, normal intensity, every
// flag off.
type Pen struct {
	Foreground    Color
	Background    Color
	Intensity     Intensity
	Italic        bool
	Underline     bool
	Blink         bool
	Inverse       bool
	Strikethrough bool
}

// IsDefault reports whether the pen carries no attributes at all.
func (p Pen) IsDefault() bool {
	return p == Pen{}
}

func (p Pen) isBold() bool  { return p.Intensity == IntensityBold }
func (p Pen) isFaint() bool { return p.Intensity == IntensityFaint }

// Dump renders the pen as an SGR escape sequence ("\x1b[0;...m") that,
// applied to a default pen, reproduces it. Field order is fixed: reset,
// foreground, background, intensity, italic, underline, blink, inverse,
// strikethrough.
func (p Pen) Dump() string {
	var b strings.Builder
	b.WriteString("\x1b[0")

	if p.Foreground.IsSet() {
		b.WriteByte(';')
		b.WriteString(p.Foreground.SGRParams(30))
	}
	if p.Background.IsSet() {
		b.WriteByte(';')
		b.WriteString(p.Background.SGRParams(40))
	}
	switch p.Intensity {
	case IntensityBold:
		b.WriteString(";1")
	case IntensityFaint:
		b.WriteString(";2")
	}
	if p.Italic {
		b.WriteString(";3")
	}
	if p.Underline {
		b.WriteString(";4")
	}
	if p.Blink {
		b.WriteString(";5")
	}
	if p.Inverse {
		b.WriteString(";7")
	}
	if p.Strikethrough {
		b.WriteString(";9")
	}
	b.WriteByte('m')
	return b.String()
}
