package color

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		// #RRGGBB
		{"#7FFFD4", New(127, 255, 212)},
		{"#7fffd4", New(127, 255, 212)},
		{"  #000000  ", New(0, 0, 0)},
		// #RGB
		{"#7FA", New(119, 255, 170)},
		{"#77FFAA", New(119, 255, 170)},
		{"#fff", New(255, 255, 255)},
		// rgb()
		{"rgb(127,255,212)", New(127, 255, 212)},
		{"rgb( 127 , 255 , 212 )", New(127, 255, 212)},
		{"  RGB(1,2,3)  ", New(1, 2, 3)},
		{"rgb (0,0,0)", New(0, 0, 0)},
		{"rgb(007,010,255)", New(7, 10, 255)},
		// rgba()
		{"rgba(127, 255, 212, 0.5)", NewRGBA(127, 255, 212, 0.5)},
		{"rgba(127,255,212,1)", New(127, 255, 212)},
		{"rgba(1,2,3,0.0)", NewRGBA(1, 2, 3, 0)},
		{"RGBA( 1 , 2 , 3 , 0.125 )", NewRGBA(1, 2, 3, 0.125)},
		// names
		{"Aquamarine", New(127, 255, 212)},
		{"AQUAMARINE", New(127, 255, 212)},
		{"aquamarine", New(127, 255, 212)},
		{"Aqua Marine", New(127, 255, 212)},
		{" light  golden rod ", New(250, 250, 210)},
		{"black", New(0, 0, 0)},
		// JavaScript whitespace: NBSP, vertical tab, ideographic space, BOM
		{"\u00a0#7FA", New(119, 255, 170)},
		{"#7FA\v", New(119, 255, 170)},
		{"\v#7FFFD4\u00a0", New(127, 255, 212)},
		{"\u3000#000000\uFEFF", New(0, 0, 0)},
		{"rgb(1,\u00a02,3)", New(1, 2, 3)},
		{"\vrgb\u00a0(\u20021\v,2,3\u2028)", New(1, 2, 3)},
		{"rgba(1,\v2,\u00a03,\u00a00.5)\v", NewRGBA(1, 2, 3, 0.5)},
		{"\u00a0RGBA(1,2,3,1)", New(1, 2, 3)},
		{"Aqua\u00a0Marine", New(127, 255, 212)},
		{"\vAquamarine", New(127, 255, 212)},
		{"\uFEFFaquamarine\u2029", New(127, 255, 212)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, FromString(tt.input))
		})
	}
}

func TestParse_Unrecognized(t *testing.T) {
	inputs := []string{
		"",
		"not-a-color",
		"#12345",
		"#GGGGGG",
		"7FFFD4",
		"#7FFFD480",
		"rgb(1,2)",
		"rgb(1,2,3,4)",
		"rgb(1234,0,0)",
		"rgb(-1,0,0)",
		"rgba(1,2,3)",
		"rgba(1,2,3,0)",
		"rgba(1,2,3,1.0)",
		"rgba(1,2,3,.5)",
		"rgba(1,2,3,2)",
		"hsl(0,100%,50%)",
		"CornflowerBlue",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := Parse(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnrecognizedFormat), "got %v", err)
			assert.Equal(t, Transparent, got)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, input, perr.Input)

			lenient := FromString(input)
			assert.Equal(t, 0, lenient.Red())
			assert.Equal(t, 0, lenient.Green())
			assert.Equal(t, 0, lenient.Blue())
			assert.Equal(t, 0.0, lenient.Alpha())
		})
	}
}

func TestParse_ChannelOutOfRange(t *testing.T) {
	for _, input := range []string{"rgb(256,0,0)", "rgb(0,999,0)", "rgba(0,0,300,0.5)"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrChannelOutOfRange), "got %v", err)
			assert.False(t, errors.Is(err, ErrUnrecognizedFormat))
			assert.Equal(t, Transparent, FromString(input))
		})
	}
}

func TestParseError_Message(t *testing.T) {
	_, err := Parse("not-a-color")
	assert.EqualError(t, err, `parse color "not-a-color": unrecognized color format`)
}

func TestTextCodec(t *testing.T) {
	type payload struct {
		Fill Color `json:"fill"`
	}

	data, err := json.Marshal(payload{Fill: NewRGBA(127, 255, 212, 0.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"fill":"rgba(127,255,212,0.5)"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, NewRGBA(127, 255, 212, 0.5), decoded.Fill)

	require.NoError(t, json.Unmarshal([]byte(`{"fill":"Aquamarine"}`), &decoded))
	assert.Equal(t, New(127, 255, 212), decoded.Fill)

	err = json.Unmarshal([]byte(`{"fill":"not-a-color"}`), &decoded)
	assert.True(t, errors.Is(err, ErrUnrecognizedFormat), "got %v", err)
}

func TestYAMLCodec(t *testing.T) {
	type payload struct {
		Fill Color `yaml:"fill"`
	}

	var decoded payload
	require.NoError(t, yaml.Unmarshal([]byte("fill: \"#7FA\"\n"), &decoded))
	assert.Equal(t, New(119, 255, 170), decoded.Fill)

	require.NoError(t, yaml.Unmarshal([]byte("fill: Dodger Blue\n"), &decoded))
	assert.Equal(t, New(30, 144, 255), decoded.Fill)

	err := yaml.Unmarshal([]byte("fill: chartreuse-ish\n"), &decoded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")

	err = yaml.Unmarshal([]byte("fill: [1, 2, 3]\n"), &decoded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scalar")

	out, err := yaml.Marshal(payload{Fill: New(1, 2, 3)})
	require.NoError(t, err)
	assert.Equal(t, "fill: rgba(1,2,3,1)\n", string(out))
}
