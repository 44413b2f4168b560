package cmd

import (
	"os"

	"colorctl/internal/config"
	"colorctl/internal/palette"
	"colorctl/internal/theme"
	"colorctl/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	debugLogging bool
	logLevel     string
	noColor      bool
	forceColor   bool
)

// loadConfig is replaced in tests to avoid reading the developer's files.
var loadConfig = config.LoadConfig

// rootCmd represents the base command when called without any subcommands
var rootCmd *cobra.Command

func init() {
	rootCmd = newRootCmd()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "colorctl",
		Short: "Convert between CSS color notations",
		Long: `colorctl normalizes colors written as #RRGGBB, #RGB, rgb(), rgba()
or one of the X11 color names and prints them back as hex, rgb() or rgba().

Project palettes can define aliases in .colorctl/config.yaml, and the same
conversions are available to assistants through 'colorctl mcp-server'.`,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. unparseable colors in strict mode)
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			if debugLogging {
				level = logging.LevelDebug
			}
			logging.InitForCLI(level, cmd.ErrOrStderr())
			theme.Setup(noColor, forceColor)
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Enable debug logging (same as --log-level debug)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output and swatches")
	root.PersistentFlags().BoolVar(&forceColor, "force-color", false, "Render 24-bit swatches even when stdout is not a terminal")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newNamesCmd())
	root.AddCommand(newBrowseCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newMCPServerCmd())
	root.AddCommand(newVersionCmd())
	root.AddCommand(newSelfUpdateCmd())
	return root
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "colorctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// loadResolver loads the layered configuration, applies the global
// --no-color flag and builds the alias resolver.
func loadResolver() (config.ColorctlConfig, *palette.Resolver, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.ColorctlConfig{}, nil, err
	}
	if noColor {
		cfg.Output.NoColor = &noColor
	}
	if cfg.Output.IsNoColor() {
		theme.DisableColor()
	}
	return cfg, palette.NewResolver(cfg.Aliases), nil
}
