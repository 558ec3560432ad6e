package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jmylchreest/lumin/internal/colour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Contrast command flags
	contrastFormat  string
	contrastOutput  string
	contrastPreview bool
)

// contrastCmd represents the contrast command
var contrastCmd = &cobra.Command{
	Use:   "contrast <colour> <colour>",
	Short: "Compute the WCAG 2.1 contrast ratio between two colours",
	Long: `Compute the WCAG 2.1 contrast ratio between two colours and grade it
against the AA and AAA conformance minimums.

The ratio is symmetric, so the order of the two colours does not matter.
Colours may be hex strings (#RRGGBB or RRGGBB) or decimal r,g,b triples.

Examples:
  # Contrast of black text on a white background
  lumin contrast "#000000" "#ffffff"

  # Bare hex and decimal triple forms are accepted too
  lumin contrast 1a2b3c 242,108,167

  # JSON output for scripting
  lumin contrast --format json "#336699" "#ffffff"

  # Show colour swatches alongside the result
  lumin contrast --preview "#336699" "#ffffff"

  # Write the report to a file
  lumin contrast --output report.txt "#336699" "#ffffff"`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

func init() {
	contrastCmd.Flags().StringVarP(&contrastFormat, "format", "f", "text", "output format (text, json)")
	contrastCmd.Flags().StringVarP(&contrastOutput, "output", "o", "", "output file (default: stdout)")
	contrastCmd.Flags().BoolVar(&contrastPreview, "preview", false, "show colour previews in terminal")
}

// contrastJSON is the JSON output shape of the contrast command.
type contrastJSON struct {
	Colours  []colourJSON `json:"colours"`
	Ratio    float64      `json:"ratio"`
	Grade    string       `json:"grade"`
	AA       bool         `json:"aa"`
	AALarge  bool         `json:"aa_large"`
	AAA      bool         `json:"aaa"`
	AAALarge bool         `json:"aaa_large"`
}

// colourJSON is a single colour in JSON output.
type colourJSON struct {
	Hex       string  `json:"hex"`
	RGB       string  `json:"rgb"`
	Luminance float64 `json:"luminance"`
}

// runContrast executes the contrast command.
func runContrast(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	a, err := parseColour(args[0])
	if err != nil {
		return err
	}
	b, err := parseColour(args[1])
	if err != nil {
		return err
	}

	logger.Debug("parsed colours", "first", a.Hex(), "second", b.Hex())

	ratio := colour.ContrastRatio(a, b)
	logger.Debug("computed contrast", "ratio", ratio)

	var output string
	switch contrastFormat {
	case "text":
		output = formatContrastText(a, b, ratio)
	case "json":
		jsonBytes, err := json.MarshalIndent(contrastJSON{
			Colours:  []colourJSON{newColourJSON(a), newColourJSON(b)},
			Ratio:    ratio,
			Grade:    colour.Grade(ratio).String(),
			AA:       colour.MeetsAA(ratio, false),
			AALarge:  colour.MeetsAA(ratio, true),
			AAA:      colour.MeetsAAA(ratio, false),
			AAALarge: colour.MeetsAAA(ratio, true),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		output = string(jsonBytes) + "\n"
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", contrastFormat)
	}

	return writeOutput(cmd, contrastOutput, output)
}

// newColourJSON builds the JSON representation of a colour.
func newColourJSON(c colour.Colour) colourJSON {
	return colourJSON{
		Hex:       c.Hex(),
		RGB:       fmt.Sprintf("rgb(%g, %g, %g)", c.R(), c.G(), c.B()),
		Luminance: colour.Luminance(c),
	}
}

// formatContrastText renders the human-readable contrast report.
func formatContrastText(a, b colour.Colour, ratio float64) string {
	var sb strings.Builder

	showPreview := contrastPreview && isTerminal()
	for _, c := range []colour.Colour{a, b} {
		if showPreview {
			sb.WriteString(fmt.Sprintf("%s  luminance %.4f\n", colour.FormatWithPreview(c, 8), colour.Luminance(c)))
		} else {
			sb.WriteString(fmt.Sprintf("%s %s  luminance %.4f\n", c.Hex(), c.String(), colour.Luminance(c)))
		}
	}

	sb.WriteString(fmt.Sprintf("contrast ratio: %.2f:1\n", ratio))

	table := NewTable([]string{"CRITERION", "MINIMUM", "RESULT"})
	table.AddRow([]string{"AA normal text", fmt.Sprintf("%.1f", colour.MinContrastAA), passFail(colour.MeetsAA(ratio, false))})
	table.AddRow([]string{"AA large text", fmt.Sprintf("%.1f", colour.MinContrastAALarge), passFail(colour.MeetsAA(ratio, true))})
	table.AddRow([]string{"AAA normal text", fmt.Sprintf("%.1f", colour.MinContrastAAA), passFail(colour.MeetsAAA(ratio, false))})
	table.AddRow([]string{"AAA large text", fmt.Sprintf("%.1f", colour.MinContrastAAALarge), passFail(colour.MeetsAAA(ratio, true))})
	sb.WriteString(table.Render())

	return sb.String()
}

// passFail renders a boolean check result.
func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

// isTerminal reports whether stdout is attached to a terminal. Previews are
// suppressed when output is piped or redirected.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// writeOutput writes command output to a file when requested, stdout
// otherwise. Results must reach stdout so they stay pipeable; cobra's own
// Print helpers default to stderr.
func writeOutput(cmd *cobra.Command, path, output string) error {
	if path != "" {
		if err := os.WriteFile(path, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}
	if !quiet {
		fmt.Fprint(cmd.OutOrStdout(), output)
	}
	return nil
}
