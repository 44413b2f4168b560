// Package tui provides the interactive color browser behind `colorctl browse`.
//
// The browser is a single Bubble Tea model. It lists the configured aliases
// followed by the X11 named colors, each with a swatch, its hex value and its
// rgb() form.
//
// # Keyboard Navigation
//
//   - ↑/k, ↓/j: Move the cursor
//   - PgUp/PgDn: Move by one screen
//   - /: Focus the filter; Enter keeps it, Esc clears it
//   - y, r, a: Copy the selection as hex, rgb() or rgba()
//   - q/Ctrl+C: Quit
//
// # Filtering
//
// The filter matches names ignoring case and whitespace, and hex values by
// prefix. When the filter text is itself a valid literal such as "#7FA" or
// "rgba(1, 2, 3, 0.5)" a preview row for it is shown above the matches.
//
// # Usage Example
//
//	p := tui.NewProgram(resolver)
//	if _, err := p.Run(); err != nil {
//	    return err
//	}
package tui
