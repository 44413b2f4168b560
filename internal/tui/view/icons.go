package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconCheck     = "✔" // U+2714
	IconWarning   = "⚠" // U+26A0 without VS16
	IconArrow     = "→" // U+2192
	IconCursor    = "▸" // U+25B8
	IconClipboard = "📋" // U+1F4CB
)

// SafeIcon wraps an icon with proper spacing to prevent rendering issues.
// Wide (two-cell) icons get two trailing spaces so one stays visible.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// IconText formats an icon with text, handling spacing properly
func IconText(icon string, text string) string {
	return SafeIcon(icon) + text
}

// PadRight pads s with spaces to exactly width cells, truncating with an
// ellipsis when it does not fit.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
