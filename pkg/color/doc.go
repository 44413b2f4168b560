// Package color normalizes CSS-style color notations into a single value type.
//
// A Color can be built from numeric channels, from a string, or from any
// image/color value:
//
//	c := color.New(127, 255, 212)
//	c = color.NewRGBA(127, 255, 212, 0.5)
//	c = color.FromString("rgb(127, 255, 212)")
//	c = color.FromString("rgba(127, 255, 212, 0.5)")
//	c = color.FromString("#7FFFD4")
//	c = color.FromString("Aquamarine")
//
// and written back out in three forms:
//
//	c.Hex()    // #7fffd4
//	c.RGB()    // rgb(127,255,212)
//	c.RGBA()   // rgba(127,255,212,0.5)
//	c.String() // same as RGBA
//
// # Leniency
//
// FromString never fails. Input that matches no grammar, or an rgb()/rgba()
// literal with a channel above 255, yields transparent black (0,0,0,0), which
// is also the zero value of Color. Callers that need to tell bad input apart
// from a real transparent black use Parse, which returns a *ParseError
// wrapping ErrUnrecognizedFormat or ErrChannelOutOfRange.
//
// # Named colors
//
// The 140 X11 names are matched ignoring case and whitespace. The table is
// built once at package initialization and never written afterwards, so all
// functions in this package are safe for concurrent use.
package color
