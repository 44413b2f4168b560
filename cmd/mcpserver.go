package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"colorctl/internal/mcpserver"

	"github.com/spf13/cobra"
)

func newMCPServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-server",
		Short: "Serve color conversion tools over MCP (stdio)",
		Long: `Run a Model Context Protocol server on stdin/stdout.

It exposes three tools:
  color_convert     convert a color to hex, rgb() or rgba()
  color_components  report the channels and every string form
  color_names       list named colors and configured aliases

Configure it in your AI assistant's MCP settings with the command
"colorctl mcp-server". Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: runMCPServer,
	}
}

func runMCPServer(cmd *cobra.Command, args []string) error {
	cfg, resolver, err := loadResolver()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server := mcpserver.NewServer(resolver, cfg.Output, rootCmd.Version)
	return serveResult(server.Serve(ctx, os.Stdin, os.Stdout))
}

// serveResult treats cancellation, wrapped or not, as a clean shutdown.
func serveResult(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return fmt.Errorf("MCP server error: %w", err)
}
