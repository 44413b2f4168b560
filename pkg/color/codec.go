package color

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText encodes the color in its rgba() form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.RGBA()), nil
}

// UnmarshalText parses strictly; unlike FromString it reports bad input.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// UnmarshalYAML accepts any scalar color literal, e.g. `value: "#5A56E0"`
// or `value: Aquamarine`.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a scalar value", value.Line)
	}
	if err := c.UnmarshalText([]byte(value.Value)); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	return nil
}
