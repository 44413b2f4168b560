package config

import (
	"fmt"
	"os"
	"path/filepath"

	"colorctl/pkg/color"
	"colorctl/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/colorctl"
	projectConfigDir = ".colorctl"

	// ConfigFileName is the file looked up in the user and project directories.
	ConfigFileName = "config.yaml"
)

// LoadConfig loads the colorctl configuration by layering default, user, and project settings.
func LoadConfig() (ColorctlConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if config, err = overlayFile(config, userConfigPath); err != nil {
		return ColorctlConfig{}, err
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if config, err = overlayFile(config, projectConfigPath); err != nil {
		return ColorctlConfig{}, err
	}

	if err := config.Validate(); err != nil {
		return ColorctlConfig{}, err
	}
	return config, nil
}

// overlayFile merges the file at path over base. A missing file is not an error.
func overlayFile(base ColorctlConfig, path string) (ColorctlConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return ColorctlConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	logging.Debug("Config", "Loaded %s (%d aliases)", path, len(overlay.Aliases))
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, ConfigFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, ConfigFileName), nil
}

// loadConfigFromFile loads a ColorctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (ColorctlConfig, error) {
	var config ColorctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return ColorctlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return ColorctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay ColorctlConfig) ColorctlConfig {
	merged := base

	if overlay.Output.Format != "" {
		merged.Output.Format = overlay.Output.Format
	}
	if overlay.Output.Encoding != "" {
		merged.Output.Encoding = overlay.Output.Encoding
	}
	if overlay.Output.Strict != nil {
		merged.Output.Strict = overlay.Output.Strict
	}
	if overlay.Output.NoColor != nil {
		merged.Output.NoColor = overlay.Output.NoColor
	}

	// Aliases: overlay replaces same-named entries in place, new ones are appended.
	merged.Aliases = make([]AliasDefinition, 0, len(base.Aliases)+len(overlay.Aliases))
	position := make(map[string]int)
	for _, alias := range append(append([]AliasDefinition{}, base.Aliases...), overlay.Aliases...) {
		key := color.NormalizeName(alias.Name)
		if i, ok := position[key]; ok {
			merged.Aliases[i] = alias
			continue
		}
		position[key] = len(merged.Aliases)
		merged.Aliases = append(merged.Aliases, alias)
	}

	return merged
}

// Validate checks enumerated settings and alias names.
func (c ColorctlConfig) Validate() error {
	switch c.Output.Format {
	case FormatHex, FormatRGB, FormatRGBA, FormatAll:
	default:
		return fmt.Errorf("invalid output format %q (want hex, rgb, rgba or all)", c.Output.Format)
	}
	switch c.Output.Encoding {
	case EncodingText, EncodingJSON, EncodingYAML:
	default:
		return fmt.Errorf("invalid output encoding %q (want text, json or yaml)", c.Output.Encoding)
	}
	for i, alias := range c.Aliases {
		if color.NormalizeName(alias.Name) == "" {
			return fmt.Errorf("alias #%d has an empty name", i+1)
		}
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// GetProjectConfigDir returns the project configuration directory path
func GetProjectConfigDir() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir), nil
}
