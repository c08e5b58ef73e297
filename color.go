package govterm

import (
	"image/color"
	"strconv"
)

// ColorKind tags which representation a Color value holds.
type ColorKind uint8

const (
	// ColorNone means no color has been set; the default pen color applies.
	ColorNone ColorKind = iota
	// ColorIndexed is one of the 256 palette entries.
	ColorIndexed
	// ColorRGB is a 24-bit true color.
	ColorRGB
)

// Color is either an indexed palette entry (0-255) or a 24-bit RGB triple.
// The zero value is ColorNone, meaning "unset" / "use the default".
type Color struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
}

// Indexed builds a palette-indexed Color.
func Indexed(i uint8) Color {
	return Color{Kind: ColorIndexed, Index: i}
}

// RGB builds a true-color Color.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// IsSet reports whether the color carries an actual value.
func (c Color) IsSet() bool {
	return c.Kind != ColorNone
}

// SGRParams renders the color as an SGR parameter relative to base (30 for
// foreground, 40 for background): base+i for indexed 0-7, base+52+i for
// indexed 8-15, base+8:5:i for other indexed colors and base+8:2:r:g:b for
// RGB, sub-parts colon-separated. It returns "" for ColorNone.
func (c Color) SGRParams(base int) string {
	switch c.Kind {
	case ColorIndexed:
		idx := int(c.Index)
		switch {
		case idx < 8:
			return strconv.Itoa(base + idx)
		case idx < 16:
			return strconv.Itoa(base + 52 + idx)
		default:
			return strconv.Itoa(base+8) + ":5:" + strconv.Itoa(idx)
		}
	case ColorRGB:
		return strconv.Itoa(base+8) + ":2:" + strconv.Itoa(int(c.R)) + ":" + strconv.Itoa(int(c.G)) + ":" + strconv.Itoa(int(c.B))
	default:
		return ""
	}
}

// Resolve converts the color to a concrete RGBA using palette for indexed
// values, falling back to def when the color is unset.
func (c Color) Resolve(palette [256]color.RGBA, def color.RGBA) color.RGBA {
	switch c.Kind {
	case ColorIndexed:
		return palette[c.Index]
	case ColorRGB:
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	default:
		return def
	}
}

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15),
// a 6x6x6 color cube (16-231), and 24 grayscale steps (232-255).
var DefaultPalette = [256]color.RGBA{
	{0, 0, 0, 255},
	{205, 49, 49, 255},
	{13, 188, 121, 255},
	{229, 229, 16, 255},
	{36, 114, 200, 255},
	{188, 63, 188, 255},
	{17, 168, 205, 255},
	{229, 229, 229, 255},

	{102, 102, 102, 255},
	{241, 76, 76, 255},
	{35, 209, 139, 255},
	{245, 245, 67, 255},
	{59, 142, 234, 255},
	{214, 112, 214, 255},
	{41, 184, 219, 255},
	{255, 255, 255, 255},
}

func init() {
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51), A: 255}
				i++
			}
		}
	}
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{R: gray, G: gray, B: gray, A: 255}
	}
}

// DefaultForeground and DefaultBackground are used by Resolve as the
// fallback when a Pen leaves a color unset.
var (
	DefaultForeground = color.RGBA{R: 229, G: 229, B: 229, A: 255}
	DefaultBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)
