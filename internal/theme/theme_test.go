package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func mockEnv(t *testing.T, env map[string]string) {
	t.Helper()
	original := lookupEnv
	t.Cleanup(func() { lookupEnv = original })
	lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
		expected   bool
	}{
		{"set dark mode", true, true},
		{"set light mode", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			if lipgloss.HasDarkBackground() != tt.expected {
				t.Errorf("lipgloss.HasDarkBackground() got %v, want %v after Initialize(%v)", lipgloss.HasDarkBackground(), tt.expected, tt.isDarkMode)
			}
		})
	}
}

func TestNoColorRequested(t *testing.T) {
	mockEnv(t, map[string]string{})
	assert.False(t, NoColorRequested())

	mockEnv(t, map[string]string{"NO_COLOR": ""})
	assert.False(t, NoColorRequested(), "empty NO_COLOR is ignored")

	mockEnv(t, map[string]string{"NO_COLOR": "1"})
	assert.True(t, NoColorRequested())
}

func TestDarkModeFromEnv(t *testing.T) {
	tests := []struct {
		value    string
		set      bool
		wantDark bool
		wantOK   bool
	}{
		{"", false, false, false},
		{"dark", true, true, true},
		{" LIGHT ", true, false, true},
		{"solarized", true, false, false},
	}

	for _, tt := range tests {
		env := map[string]string{}
		if tt.set {
			env["COLORCTL_THEME"] = tt.value
		}
		mockEnv(t, env)
		dark, ok := DarkModeFromEnv()
		assert.Equal(t, tt.wantDark, dark, tt.value)
		assert.Equal(t, tt.wantOK, ok, tt.value)
	}
}

func TestSetup_NoColor(t *testing.T) {
	mockEnv(t, map[string]string{"COLORCTL_THEME": "dark"})
	t.Cleanup(EnableTrueColor)

	Setup(true, false)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
	assert.True(t, lipgloss.HasDarkBackground())
	assert.Equal(t, "x", lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Render("x"))
}

func TestSetup_ForceColor(t *testing.T) {
	mockEnv(t, map[string]string{})
	t.Cleanup(DisableColor)

	DisableColor()
	Setup(false, true)
	assert.Equal(t, termenv.TrueColor, lipgloss.ColorProfile())
	assert.NotEqual(t, "x", lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Render("x"))

	// NO_COLOR beats --force-color.
	mockEnv(t, map[string]string{"NO_COLOR": "1"})
	Setup(false, true)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
}
