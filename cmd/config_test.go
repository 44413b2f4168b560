package cmd

import (
	"path/filepath"
	"testing"

	"colorctl/internal/config"
	"colorctl/pkg/color"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig_PrintsMergedConfiguration(t *testing.T) {
	cfg := configWithAliases(
		config.AliasDefinition{Name: "brand", Value: color.New(0x5a, 0x56, 0xe0)},
		config.AliasDefinition{Name: "shade", Value: color.NewRGBA(1, 2, 3, 0.5)},
	)
	cfg.Output.Format = config.FormatHex

	out, _, err := executeCommand(t, cfg, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "# user config: ")
	assert.Contains(t, out, filepath.Join(".config", "colorctl", config.ConfigFileName))
	assert.Contains(t, out, "# project config: ")
	assert.Contains(t, out, filepath.Join(".colorctl", config.ConfigFileName))

	// The printed YAML loads back into the same configuration.
	var reloaded config.ColorctlConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &reloaded))
	assert.Equal(t, config.FormatHex, reloaded.Output.Format)
	assert.Equal(t, config.EncodingText, reloaded.Output.Encoding)
	assert.False(t, reloaded.Output.IsStrict())
	assert.Equal(t, cfg.Aliases, reloaded.Aliases)
}

func TestConfig_RejectsArguments(t *testing.T) {
	_, _, err := executeCommand(t, config.GetDefaultConfig(), "config", "extra")
	assert.Error(t, err)
}
