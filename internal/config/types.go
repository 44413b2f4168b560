package config

import (
	"colorctl/pkg/color"
)

// ColorctlConfig is the top-level configuration structure for colorctl.
type ColorctlConfig struct {
	Output  OutputSettings    `yaml:"output"`
	Aliases []AliasDefinition `yaml:"aliases,omitempty"`
}

// OutputFormat selects which string form(s) convert prints.
type OutputFormat string

const (
	FormatHex  OutputFormat = "hex"
	FormatRGB  OutputFormat = "rgb"
	FormatRGBA OutputFormat = "rgba"
	FormatAll  OutputFormat = "all"
)

// OutputEncoding selects how convert results are written.
type OutputEncoding string

const (
	EncodingText OutputEncoding = "text"
	EncodingJSON OutputEncoding = "json"
	EncodingYAML OutputEncoding = "yaml"
)

// OutputSettings controls how results are printed.
// Strict and NoColor are pointers so that a layer can tell "unset" from "false".
type OutputSettings struct {
	Format   OutputFormat   `yaml:"format,omitempty"`
	Encoding OutputEncoding `yaml:"encoding,omitempty"`
	Strict   *bool          `yaml:"strict,omitempty"`
	NoColor  *bool          `yaml:"noColor,omitempty"`
}

// IsStrict reports whether unparseable input should be an error.
func (o OutputSettings) IsStrict() bool {
	return o.Strict != nil && *o.Strict
}

// IsNoColor reports whether swatches should be suppressed.
func (o OutputSettings) IsNoColor() bool {
	return o.NoColor != nil && *o.NoColor
}

// AliasDefinition gives a project-specific name to a color, e.g. "brand".
type AliasDefinition struct {
	Name  string      `yaml:"name"`
	Value color.Color `yaml:"value"`
}
