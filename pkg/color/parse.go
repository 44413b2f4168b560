package color

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrUnrecognizedFormat is returned when the input matches none of the
	// accepted color grammars.
	ErrUnrecognizedFormat = errors.New("unrecognized color format")

	// ErrChannelOutOfRange is returned when an rgb() or rgba() literal is
	// well formed but one of its channels exceeds 255.
	ErrChannelOutOfRange = errors.New("color channel out of range")
)

// ParseError records the input that failed to parse.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse color %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ws matches a run of whitespace as ECMAScript defines it, the same set
// isSpace accepts for names.
const ws = `[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]*`

var (
	hexRegex  = regexp.MustCompile(`(?i)^` + ws + `#([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})` + ws + `$`)
	hex3Regex = regexp.MustCompile(`(?i)^` + ws + `#([0-9a-f])([0-9a-f])([0-9a-f])` + ws + `$`)
	rgbRegex  = regexp.MustCompile(`(?i)^` + ws + `rgb` + ws + `\(` + ws + `(\d{1,3})` + ws + `,` + ws + `(\d{1,3})` + ws + `,` + ws + `(\d{1,3})` + ws + `\)` + ws + `$`)
	rgbaRegex = regexp.MustCompile(`(?i)^` + ws + `rgba` + ws + `\(` + ws + `(\d{1,3})` + ws + `,` + ws + `(\d{1,3})` + ws + `,` + ws + `(\d{1,3})` + ws + `,` + ws + `(1|0\.\d+)` + ws + `\)` + ws + `$`)
)

// parser returns ok=false when the input does not match its grammar. A
// non-nil error means the grammar matched and parsing must stop there.
type parser func(s string) (c Color, ok bool, err error)

// parsers run in this order; the first grammar that matches wins.
var parsers = []parser{
	parseHex,
	parseRGB,
	parseRGBA,
	parseKnownColor,
}

// Parse reads a color from one of:
//
//	#RRGGBB
//	#RGB
//	rgb(R, G, B)
//	rgba(R, G, B, A)   A is 1 or 0.<digits>
//	a named X11 color  case and whitespace insensitive
//
// Surrounding whitespace is ignored. Errors wrap ErrUnrecognizedFormat or
// ErrChannelOutOfRange in a *ParseError.
func Parse(s string) (Color, error) {
	for _, p := range parsers {
		c, ok, err := p(s)
		if err != nil {
			return Transparent, &ParseError{Input: s, Err: err}
		}
		if ok {
			return c, nil
		}
	}
	return Transparent, &ParseError{Input: s, Err: ErrUnrecognizedFormat}
}

func parseHex(s string) (Color, bool, error) {
	if m := hexRegex.FindStringSubmatch(s); m != nil {
		return Color{r: hexByte(m[1]), g: hexByte(m[2]), b: hexByte(m[3]), a: 1}, true, nil
	}
	if m := hex3Regex.FindStringSubmatch(s); m != nil {
		return Color{r: hexByte(m[1] + m[1]), g: hexByte(m[2] + m[2]), b: hexByte(m[3] + m[3]), a: 1}, true, nil
	}
	return Transparent, false, nil
}

func parseRGB(s string) (Color, bool, error) {
	m := rgbRegex.FindStringSubmatch(s)
	if m == nil {
		return Transparent, false, nil
	}
	c, err := channels(m[1], m[2], m[3], 1)
	return c, true, err
}

func parseRGBA(s string) (Color, bool, error) {
	m := rgbaRegex.FindStringSubmatch(s)
	if m == nil {
		return Transparent, false, nil
	}
	// The grammar only admits 1 or 0.<digits>, so this cannot fail or leave [0,1].
	a, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return Transparent, true, err
	}
	c, err := channels(m[1], m[2], m[3], a)
	return c, true, err
}

func parseKnownColor(s string) (Color, bool, error) {
	c, ok := Lookup(s)
	return c, ok, nil
}

// channels converts up to three decimal digits per channel. The regexes
// guarantee the digits, not the range.
func channels(rs, gs, bs string, a float64) (Color, error) {
	var v [3]int
	for i, s := range [3]string{rs, gs, bs} {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Transparent, err
		}
		if !inByteRange(n) {
			return Transparent, fmt.Errorf("%w: %d", ErrChannelOutOfRange, n)
		}
		v[i] = n
	}
	return Color{r: uint8(v[0]), g: uint8(v[1]), b: uint8(v[2]), a: a}, nil
}

func hexByte(s string) uint8 {
	n, _ := strconv.ParseUint(s, 16, 8)
	return uint8(n)
}
