package cmd

import (
	"fmt"
	"strings"

	"colorctl/internal/tui/view"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names [filter]",
		Short: "List the named colors and configured aliases",
		Long: `List every X11 color name colorctl understands, preceded by the
aliases from your configuration.

The optional filter matches names ignoring case and whitespace, or a hex
prefix such as "#ff".`,
		Args: cobra.MaximumNArgs(1),
		RunE: runNames,
	}
}

func runNames(cmd *cobra.Command, args []string) error {
	cfg, resolver, err := loadResolver()
	if err != nil {
		return err
	}

	entries := resolver.Filter(strings.Join(args, ""))
	showSwatch := !cfg.Output.IsNoColor() && lipgloss.ColorProfile() != termenv.Ascii
	_, err = fmt.Fprintln(cmd.OutOrStdout(), view.RenderNameList(entries, showSwatch))
	return err
}
