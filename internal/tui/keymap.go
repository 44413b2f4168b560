package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the color browser.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Filter   key.Binding
	Enter    key.Binding
	Esc      key.Binding
	CopyHex  key.Binding
	CopyRGB  key.Binding
	CopyRGBA key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter or type a color"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply filter"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		CopyHex: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy hex"),
		),
		CopyRGB: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "copy rgb"),
		),
		CopyRGBA: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "copy rgba"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.CopyHex, k.CopyRGB, k.CopyRGBA, k.Quit}
}
