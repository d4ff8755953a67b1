// Package palette builds RGBA colors from channels and #rrggbb strings and
// derives wall shades from them.
package palette

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidFormat is returned by ParseHex for anything that is not #rrggbb.
var ErrInvalidFormat = errors.New("invalid format")

// Default is the color used when a caller does not pick one.
var Default = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Black is the fog/shade target.
var Black = color.RGBA{A: 255}

// RGBA builds a color, clamping each channel to [0,255] independently.
func RGBA(r, g, b, a int) color.RGBA {
	return color.RGBA{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b), A: clampChannel(a)}
}

func clampChannel(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

// ParseHex parses a case-insensitive #rrggbb string into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
	}
	b, err := hex.DecodeString(s[1:])
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
	}
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: 255}, nil
}

// MustParseHex is ParseHex for literals; it panics on malformed input.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic("palette: " + err.Error())
	}
	return c
}

// Hex formats c as lowercase #rrggbb, dropping alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Shade darkens c toward black by amount in [0,1], blending in Lab space so
// the hue holds as walls recede. Alpha is preserved.
func Shade(c color.RGBA, amount float64) color.RGBA {
	if amount <= 0 {
		return c
	}
	if amount > 1 {
		amount = 1
	}
	src := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := src.BlendLab(colorful.Color{}, amount).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}
