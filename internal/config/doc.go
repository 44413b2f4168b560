// Package config provides configuration management for colorctl.
//
// Configuration is loaded from multiple sources and merged in a specific
// order, with later sources overriding earlier ones.
//
// # Configuration Layers
//
//  1. Default Configuration (embedded in binary)
//     - rgba output, text encoding, lenient parsing, swatches enabled
//
//  2. User Configuration (~/.config/colorctl/config.yaml)
//     - Personal preferences and aliases shared by every project
//
//  3. Project Configuration (./.colorctl/config.yaml)
//     - Project palettes checked into version control
//
// # Configuration Structure
//
//	output:
//	  format: rgba      # hex, rgb, rgba or all
//	  encoding: text    # text, json or yaml
//	  strict: false     # fail on unparseable input instead of printing transparent black
//	  noColor: false    # suppress terminal swatches
//
//	aliases:
//	  - name: brand
//	    value: "#5A56E0"
//	  - name: brand-muted
//	    value: "rgba(90, 86, 224, 0.5)"
//
// Alias values accept every notation understood by package color and are
// parsed strictly while the file is read, so a typo in a palette fails the
// load instead of silently becoming transparent black. An alias defined in
// the project file replaces a user alias with the same name.
//
// Command line flags override all layers.
package config
