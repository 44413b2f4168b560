package color

import (
	"fmt"
	stdcolor "image/color"
	"math"
	"strconv"
)

// Color is an RGB color with a fractional alpha channel.
// The zero value is transparent black.
type Color struct {
	r, g, b uint8
	a       float64
}

// Transparent is the fallback for every input that cannot be parsed.
var Transparent = Color{}

// New returns an opaque color. If any channel lies outside [0,255] the
// result is Transparent.
func New(r, g, b int) Color {
	return NewRGBA(r, g, b, 1)
}

// NewRGBA returns a color with the given alpha. Channels outside [0,255]
// yield Transparent; an alpha outside [0,1] (or NaN) is replaced by 1.
func NewRGBA(r, g, b int, a float64) Color {
	if !inByteRange(r) || !inByteRange(g) || !inByteRange(b) {
		return Transparent
	}
	if math.IsNaN(a) || a < 0 || a > 1 {
		a = 1
	}
	return Color{r: uint8(r), g: uint8(g), b: uint8(b), a: a}
}

// FromString parses s like Parse but never fails: unrecognized input
// becomes Transparent.
func FromString(s string) Color {
	c, err := Parse(s)
	if err != nil {
		return Transparent
	}
	return c
}

// FromColor converts any image/color value. A nil value yields Transparent.
func FromColor(c stdcolor.Color) Color {
	if c == nil {
		return Transparent
	}
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return Color{r: n.R, g: n.G, b: n.B, a: float64(n.A) / 0xff}
}

func inByteRange(v int) bool {
	return v >= 0 && v <= 0xff
}

func (c Color) Red() int       { return int(c.r) }
func (c Color) Green() int     { return int(c.g) }
func (c Color) Blue() int      { return int(c.b) }
func (c Color) Alpha() float64 { return c.a }

// IsTransparent reports whether c is fully transparent black.
func (c Color) IsTransparent() bool {
	return c == Transparent
}

// NRGBA converts c to the non-premultiplied image/color form, so it can be
// handed to anything that draws.
func (c Color) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.r, G: c.g, B: c.b, A: uint8(math.Round(c.a * 0xff))}
}

// Hex returns the color as #rrggbb with lowercase digits. Alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// RGB returns the color as rgb(R,G,B).
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
}

// RGBA returns the color as rgba(R,G,B,A), with A in its shortest decimal form.
func (c Color) RGBA() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.r, c.g, c.b, formatAlpha(c.a))
}

// String implements fmt.Stringer using the rgba() form.
func (c Color) String() string {
	return c.RGBA()
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}
