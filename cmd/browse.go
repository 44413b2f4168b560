package cmd

import (
	"fmt"

	"colorctl/internal/tui"
	"colorctl/pkg/logging"

	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse named colors interactively",
		Long: `Open a full-screen browser of the named colors and configured aliases.

Press / to filter by name or to type a literal such as #7FA or
rgba(1, 2, 3, 0.5) and preview it. y, r and a copy the selected color
as hex, rgb() or rgba() to the clipboard.`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	_, resolver, err := loadResolver()
	if err != nil {
		return err
	}

	// The browser owns the terminal; log lines would corrupt it.
	logging.InitForTUI()

	p := tui.NewProgram(resolver)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
