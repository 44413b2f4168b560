package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"colorctl/internal/config"
	"colorctl/internal/tui/view"
	"colorctl/pkg/color"
	"colorctl/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
)

// Components is the structured form of a color returned by color_components.
type Components struct {
	Red   int     `json:"red"`
	Green int     `json:"green"`
	Blue  int     `json:"blue"`
	Alpha float64 `json:"alpha"`
	Hex   string  `json:"hex"`
	RGB   string  `json:"rgb"`
	RGBA  string  `json:"rgba"`
}

// NewComponents flattens c into its channels and string forms.
func NewComponents(c color.Color) Components {
	return Components{
		Red:   c.Red(),
		Green: c.Green(),
		Blue:  c.Blue(),
		Alpha: c.Alpha(),
		Hex:   c.Hex(),
		RGB:   c.RGB(),
		RGBA:  c.RGBA(),
	}
}

// NameInfo is one element of the color_names result.
type NameInfo struct {
	Name   string `json:"name"`
	Hex    string `json:"hex"`
	Source string `json:"source"`
}

func (s *Server) handleConvert(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value, err := request.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value parameter is required"), nil
	}

	format := config.OutputFormat(request.GetString("format", string(s.output.Format)))
	switch format {
	case config.FormatHex, config.FormatRGB, config.FormatRGBA, config.FormatAll:
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q", format)), nil
	}
	strict := request.GetBool("strict", s.output.IsStrict())

	c, fellBack, err := s.resolver.ResolveLenient(value)
	if fellBack {
		if strict {
			return mcp.NewToolResultError(err.Error()), nil
		}
		logging.Warn("MCPServer", "Falling back to transparent black: %v", err)
	}

	return mcp.NewToolResultText(strings.Join(view.FormatValues(c, format), "\n")), nil
}

func (s *Server) handleComponents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value, err := request.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value parameter is required"), nil
	}

	c, err := s.resolver.Resolve(value)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	jsonData, err := json.MarshalIndent(NewComponents(c), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format color: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (s *Server) handleNames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries := s.resolver.Filter(request.GetString("filter", ""))
	if len(entries) == 0 {
		return mcp.NewToolResultText("No matching colors"), nil
	}

	names := make([]NameInfo, len(entries))
	for i, e := range entries {
		names[i] = NameInfo{Name: e.Name, Hex: e.Color.Hex(), Source: string(e.Source)}
	}

	jsonData, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format names: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
