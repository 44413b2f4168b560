package config

// GetDefaultConfig returns the built-in configuration: rgba text output,
// lenient parsing, swatches on, no aliases.
func GetDefaultConfig() ColorctlConfig {
	strict := false
	noColor := false
	return ColorctlConfig{
		Output: OutputSettings{
			Format:   FormatRGBA,
			Encoding: EncodingText,
			Strict:   &strict,
			NoColor:  &noColor,
		},
		Aliases: []AliasDefinition{},
	}
}
