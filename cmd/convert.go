package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"colorctl/internal/config"
	"colorctl/internal/palette"
	"colorctl/internal/tui/view"
	"colorctl/pkg/logging"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	convertFormat   string
	convertEncoding string
	convertStrict   bool
)

// conversionResult is the json/yaml form of one converted input.
type conversionResult struct {
	Input      string  `json:"input" yaml:"input"`
	Recognized bool    `json:"recognized" yaml:"recognized"`
	Red        int     `json:"red" yaml:"red"`
	Green      int     `json:"green" yaml:"green"`
	Blue       int     `json:"blue" yaml:"blue"`
	Alpha      float64 `json:"alpha" yaml:"alpha"`
	Hex        string  `json:"hex" yaml:"hex"`
	RGB        string  `json:"rgb" yaml:"rgb"`
	RGBA       string  `json:"rgba" yaml:"rgba"`
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <color>...",
		Short: "Convert colors to hex, rgb() or rgba()",
		Long: `Convert one or more colors to the selected notation.

Accepted input:
  #RRGGBB, #RGB           hex, any case
  rgb(R, G, B)            channels 0-255
  rgba(R, G, B, A)        A is 1 or 0.<digits>
  Aquamarine, "dark red"  X11 names, case and whitespace insensitive
  brand                   aliases from the configuration

Input that cannot be parsed becomes transparent black, rgba(0,0,0,0),
and a warning is logged. With --strict it is an error instead.

A single color prints just the converted value, which is handy in scripts:

  colorctl convert Aquamarine --format hex     # #7fffd4`,
		Args: cobra.MinimumNArgs(1),
		RunE: runConvert,
	}

	cmd.Flags().StringVarP(&convertFormat, "format", "f", "", "Output notation: hex, rgb, rgba or all (default from config: rgba)")
	cmd.Flags().StringVarP(&convertEncoding, "output", "o", "", "Output encoding: text, json or yaml (default from config: text)")
	cmd.Flags().BoolVar(&convertStrict, "strict", false, "Fail on unrecognized input instead of printing transparent black")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, resolver, err := loadResolver()
	if err != nil {
		return err
	}

	output := cfg.Output
	if cmd.Flags().Changed("format") {
		output.Format = config.OutputFormat(convertFormat)
	}
	if cmd.Flags().Changed("output") {
		output.Encoding = config.OutputEncoding(convertEncoding)
	}
	if cmd.Flags().Changed("strict") {
		output.Strict = &convertStrict
	}
	cfg.Output = output
	if err := cfg.Validate(); err != nil {
		return err
	}

	rows, err := convertAll(resolver, args, output.IsStrict())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch output.Encoding {
	case config.EncodingJSON:
		return writeJSON(out, rows)
	case config.EncodingYAML:
		return writeYAML(out, rows)
	default:
		return writeText(out, rows, output)
	}
}

func convertAll(resolver *palette.Resolver, inputs []string, strict bool) ([]view.ConversionRow, error) {
	rows := make([]view.ConversionRow, 0, len(inputs))
	for _, input := range inputs {
		c, fellBack, err := resolver.ResolveLenient(input)
		if fellBack {
			if strict {
				return nil, err
			}
			if palette.IsUnrecognized(err) {
				logging.Warn("Convert", "Using transparent black for unrecognized input: %v", err)
			} else {
				logging.Warn("Convert", "Using transparent black for out-of-range channel: %v", err)
			}
		} else {
			logging.Debug("Convert", "Resolved %q to %s", input, c)
		}
		rows = append(rows, view.ConversionRow{Input: input, Color: c, FellBack: fellBack})
	}
	return rows, nil
}

func writeText(out io.Writer, rows []view.ConversionRow, output config.OutputSettings) error {
	if len(rows) == 1 {
		for _, v := range view.FormatValues(rows[0].Color, output.Format) {
			if _, err := fmt.Fprintln(out, v); err != nil {
				return err
			}
		}
		return nil
	}

	showSwatch := !output.IsNoColor() && lipgloss.ColorProfile() != termenv.Ascii
	for _, row := range rows {
		if _, err := fmt.Fprintln(out, view.RenderConversion(row, output.Format, showSwatch)); err != nil {
			return err
		}
	}
	return nil
}

func toResults(rows []view.ConversionRow) []conversionResult {
	results := make([]conversionResult, len(rows))
	for i, row := range rows {
		c := row.Color
		results[i] = conversionResult{
			Input:      row.Input,
			Recognized: !row.FellBack,
			Red:        c.Red(),
			Green:      c.Green(),
			Blue:       c.Blue(),
			Alpha:      c.Alpha(),
			Hex:        c.Hex(),
			RGB:        c.RGB(),
			RGBA:       c.RGBA(),
		}
	}
	return results
}

func writeJSON(out io.Writer, rows []view.ConversionRow) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(toResults(rows))
}

func writeYAML(out io.Writer, rows []view.ConversionRow) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(toResults(rows)); err != nil {
		return err
	}
	return enc.Close()
}
