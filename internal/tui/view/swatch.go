package view

import (
	"fmt"
	"strings"

	"colorctl/internal/config"
	"colorctl/internal/palette"
	"colorctl/pkg/color"

	"github.com/charmbracelet/lipgloss"
)

const (
	swatchWidth   = 4
	nameWidth     = 20
	transparentFg = "#808080"
)

// Swatch renders a block of the color. Fully transparent colors render as a
// shaded pattern because a background would be meaningless.
func Swatch(c color.Color, width int) string {
	if width <= 0 {
		return ""
	}
	if c.Alpha() == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(transparentFg)).
			Render(strings.Repeat("░", width))
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", width))
}

// FormatValues returns the string forms selected by format, in hex, rgb,
// rgba order.
func FormatValues(c color.Color, format config.OutputFormat) []string {
	switch format {
	case config.FormatHex:
		return []string{c.Hex()}
	case config.FormatRGB:
		return []string{c.RGB()}
	case config.FormatAll:
		return []string{c.Hex(), c.RGB(), c.RGBA()}
	default:
		return []string{c.RGBA()}
	}
}

// ConversionRow is one converted input as printed by `colorctl convert`.
type ConversionRow struct {
	Input    string
	Color    color.Color
	FellBack bool
}

// RenderConversion renders a row as "<swatch> <input> → <values>". Rows that
// fell back to transparent black are flagged.
func RenderConversion(row ConversionRow, format config.OutputFormat, showSwatch bool) string {
	var b strings.Builder
	if showSwatch {
		b.WriteString(Swatch(row.Color, swatchWidth))
		b.WriteString(" ")
	}
	b.WriteString(PadRight(row.Input, nameWidth))
	b.WriteString(" ")
	b.WriteString(SafeIcon(IconArrow))
	b.WriteString(strings.Join(FormatValues(row.Color, format), "  "))
	if row.FellBack {
		b.WriteString(" ")
		b.WriteString(WarningStyle.Render(IconText(IconWarning, "unrecognized")))
	}
	return b.String()
}

// RenderEntry renders one palette entry as "<swatch> <name> <hex> <rgb>".
func RenderEntry(e palette.Entry, showSwatch bool) string {
	var b strings.Builder
	if showSwatch {
		b.WriteString(Swatch(e.Color, swatchWidth))
		b.WriteString(" ")
	}
	b.WriteString(PadRight(e.Name, nameWidth))
	b.WriteString(" ")
	b.WriteString(e.Color.Hex())
	b.WriteString("  ")
	b.WriteString(PadRight(e.Color.RGB(), 17))
	if e.Source == palette.SourceAlias {
		b.WriteString(SubtleStyle.Render(" (alias)"))
	}
	return strings.TrimRight(b.String(), " ")
}

// RenderNameList renders a header plus one line per entry.
func RenderNameList(entries []palette.Entry, showSwatch bool) string {
	if len(entries) == 0 {
		return SubtleStyle.Render("No matching colors")
	}
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, TitleStyle.Render(fmt.Sprintf("%d colors", len(entries))))
	for _, e := range entries {
		lines = append(lines, RenderEntry(e, showSwatch))
	}
	return strings.Join(lines, "\n")
}
