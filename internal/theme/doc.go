// Package theme provides terminal color detection and theming for colorctl.
//
// colorctl renders swatches with lipgloss, which downsamples 24-bit colors
// to whatever the terminal supports. This package decides the profile and
// background before anything is rendered.
//
// # Environment Variables
//
// Respected environment variables:
//   - NO_COLOR: Disable all color output
//   - COLORTERM / TERM: Read by lipgloss for capability detection
//   - COLORCTL_THEME: Force dark or light theme
package theme
