package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"aquamarine", "AQUAMARINE", "Aquamarine", "Aqua Marine", "\taqua\nmarine "} {
		c, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, "#7fffd4", c.Hex(), name)
		assert.Equal(t, 1.0, c.Alpha(), name)
	}

	_, ok := Lookup("")
	assert.False(t, ok)
	_, ok = Lookup("rebeccapurple")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 140)
	assert.Equal(t, NamedColor{Name: "AliceBlue", Hex: "#F0F8FF"}, names[0])
	assert.Equal(t, NamedColor{Name: "YellowGreen", Hex: "#9ACD32"}, names[len(names)-1])

	names[0].Hex = "#000000"
	assert.Equal(t, "#F0F8FF", Names()[0].Hex, "Names must return a copy")
}

func TestNames_AllResolve(t *testing.T) {
	seen := make(map[string]bool)
	for _, nc := range Names() {
		key := NormalizeName(nc.Name)
		assert.False(t, seen[key], "duplicate name %s", nc.Name)
		seen[key] = true

		byName, ok := Lookup(nc.Name)
		require.True(t, ok, nc.Name)
		byHex, err := Parse(nc.Hex)
		require.NoError(t, err, nc.Name)
		assert.Equal(t, byHex, byName, nc.Name)
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "darkslategray", NormalizeName(" Dark Slate\tGray "))
	assert.Equal(t, "", NormalizeName("   "))
	assert.Equal(t, "aquamarine", NormalizeName("\vAqua\u00a0Marine\uFEFF"))
}

// Names and literals must agree on what counts as whitespace.
func TestWhitespaceAgreesAcrossGrammars(t *testing.T) {
	spaces := []rune{' ', '\t', '\n', '\v', '\f', '\r', '\u00a0', '\u1680', '\u2000', '\u200a', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\uFEFF'}
	for _, r := range spaces {
		pad := string(r)
		assert.Equal(t, "red", NormalizeName(pad+"Red"+pad), "%U", r)

		for _, literal := range []string{"#f00", "#ff0000", "rgb(255,0,0)", "rgba(255,0,0,1)"} {
			c, err := Parse(pad + literal + pad)
			require.NoError(t, err, "%U around %s", r, literal)
			assert.Equal(t, New(255, 0, 0), c)
		}
	}

	// U+0085 is whitespace to Go but not to JavaScript.
	assert.Equal(t, "\u0085red", NormalizeName("\u0085Red"))
	_, err := Parse("\u0085#f00")
	assert.ErrorIs(t, err, ErrUnrecognizedFormat)
}
