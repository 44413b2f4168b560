package cmd

import (
	"fmt"
	"path/filepath"

	"colorctl/internal/config"
	"colorctl/pkg/logging"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration colorctl uses after merging the built-in
defaults, the user file and the project file, in that order.

The file locations are printed as comments above the merged YAML, so the
output can be used as a starting point for a new config.yaml.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, layer := range []struct {
		name string
		dir  func() (string, error)
	}{
		{"user", config.GetUserConfigDir},
		{"project", config.GetProjectConfigDir},
	} {
		dir, err := layer.dir()
		if err != nil {
			logging.Warn("Config", "Could not determine %s config directory: %v", layer.name, err)
			continue
		}
		fmt.Fprintf(out, "# %s config: %s\n", layer.name, filepath.Join(dir, config.ConfigFileName))
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return enc.Close()
}
