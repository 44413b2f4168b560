package mcpserver

import (
	"context"
	"io"

	"colorctl/internal/config"
	"colorctl/internal/palette"
	"colorctl/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const serverName = "colorctl"

// Server exposes color conversion to MCP clients over stdio.
type Server struct {
	resolver *palette.Resolver
	output   config.OutputSettings
	mcp      *server.MCPServer
}

// NewServer registers the color tools on a new MCP server. output supplies
// the defaults for arguments a client leaves out.
func NewServer(resolver *palette.Resolver, output config.OutputSettings, version string) *Server {
	s := &Server{
		resolver: resolver,
		output:   output,
	}
	s.mcp = server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(false),
	)
	s.mcp.AddTools(s.Tools()...)
	return s
}

// Tools returns the tool definitions paired with their handlers.
func (s *Server) Tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("color_convert",
				mcp.WithDescription("Convert a CSS color (#RRGGBB, #RGB, rgb(), rgba() or an X11 name) to hex, rgb() or rgba()"),
				mcp.WithString("value",
					mcp.Required(),
					mcp.Description("Color to convert, e.g. \"Aquamarine\" or \"rgba(127, 255, 212, 0.5)\""),
				),
				mcp.WithString("format",
					mcp.Description("Output form (default from configuration)"),
					mcp.Enum(string(config.FormatHex), string(config.FormatRGB), string(config.FormatRGBA), string(config.FormatAll)),
				),
				mcp.WithBoolean("strict",
					mcp.Description("Fail on unrecognized input instead of returning transparent black"),
				),
			),
			Handler: s.handleConvert,
		},
		{
			Tool: mcp.NewTool("color_components",
				mcp.WithDescription("Return the red, green, blue and alpha channels of a color together with every string form"),
				mcp.WithString("value",
					mcp.Required(),
					mcp.Description("Color to inspect"),
				),
			),
			Handler: s.handleComponents,
		},
		{
			Tool: mcp.NewTool("color_names",
				mcp.WithDescription("List named colors and configured aliases"),
				mcp.WithString("filter",
					mcp.Description("Case and whitespace insensitive substring of the name, or a hex prefix"),
				),
			),
			Handler: s.handleNames,
		},
	}
}

// Serve blocks answering JSON-RPC requests read from in until ctx is
// cancelled or in is closed. The command wires in and out to stdin/stdout.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	logging.Info("MCPServer", "Serving %d tools on stdio", len(s.Tools()))
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}
