package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// For mocking in tests
var lookupEnv = os.LookupEnv

// Initialize sets the background lipgloss assumes when picking adaptive colors.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// DisableColor makes every lipgloss render plain text.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// EnableTrueColor forces 24-bit output, e.g. when piping into a pager that
// understands escape sequences.
func EnableTrueColor() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// NoColorRequested reports whether the NO_COLOR convention asks for plain output.
func NoColorRequested() bool {
	v, ok := lookupEnv("NO_COLOR")
	return ok && v != ""
}

// DarkModeFromEnv reads COLORCTL_THEME ("dark" or "light"). ok is false when
// the variable is unset or unrecognized and the terminal should be queried.
func DarkModeFromEnv() (dark bool, ok bool) {
	v, set := lookupEnv("COLORCTL_THEME")
	if !set {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "dark":
		return true, true
	case "light":
		return false, true
	default:
		return false, false
	}
}

// Setup applies the environment and the --no-color and --force-color flags
// in one place. Disabling color wins over forcing it.
func Setup(noColor, forceColor bool) {
	if dark, ok := DarkModeFromEnv(); ok {
		Initialize(dark)
	}
	switch {
	case noColor || NoColorRequested():
		DisableColor()
	case forceColor:
		EnableTrueColor()
	}
}
