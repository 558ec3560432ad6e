package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/lumin/internal/colour"
	"github.com/spf13/cobra"
)

var (
	// Luminance command flags
	luminanceFormat  string
	luminanceOutput  string
	luminanceAgainst colourValue
)

// luminanceCmd represents the luminance command
var luminanceCmd = &cobra.Command{
	Use:   "luminance <colour>",
	Short: "Compute the WCAG relative luminance of a colour",
	Long: `Compute the relative luminance of an sRGB colour.

Relative luminance is a perceptually weighted linear-light brightness
scalar in [0, 1], where 0 is black and 1 is white. The channel is first
linearized with the sRGB inverse transfer function, then combined with
the standard luminosity weights (0.2126, 0.7152, 0.0722).

Examples:
  # Luminance of a hex colour
  lumin luminance "#336699"

  # Decimal triple form
  lumin luminance 242,108,167

  # Also report the contrast ratio against a reference colour
  lumin luminance "#336699" --against "#ffffff"

  # JSON output for scripting
  lumin luminance --format json "#336699"`,
	Args: cobra.ExactArgs(1),
	RunE: runLuminance,
}

func init() {
	luminanceCmd.Flags().StringVarP(&luminanceFormat, "format", "f", "text", "output format (text, json)")
	luminanceCmd.Flags().StringVarP(&luminanceOutput, "output", "o", "", "output file (default: stdout)")
	luminanceCmd.Flags().VarP(&luminanceAgainst, "against", "a", "reference colour to compute a contrast ratio against")
}

// luminanceJSON is the JSON output shape of the luminance command.
type luminanceJSON struct {
	Colour    colourJSON  `json:"colour"`
	Luminance float64     `json:"luminance"`
	Against   *colourJSON `json:"against,omitempty"`
	Ratio     *float64    `json:"ratio,omitempty"`
}

// runLuminance executes the luminance command.
func runLuminance(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	c, err := parseColour(args[0])
	if err != nil {
		return err
	}

	lum := colour.Luminance(c)
	logger.Debug("computed luminance", "colour", c.Hex(), "luminance", lum)

	var output string
	switch luminanceFormat {
	case "text":
		output = fmt.Sprintf("%s %s  luminance %.4f\n", c.Hex(), c.String(), lum)
		if luminanceAgainst.set {
			ratio := colour.ContrastRatio(c, luminanceAgainst.colour)
			output += fmt.Sprintf("contrast vs %s: %.2f:1 (%s)\n",
				luminanceAgainst.colour.Hex(), ratio, colour.Grade(ratio))
		}
	case "json":
		report := luminanceJSON{
			Colour:    newColourJSON(c),
			Luminance: lum,
		}
		if luminanceAgainst.set {
			against := newColourJSON(luminanceAgainst.colour)
			ratio := colour.ContrastRatio(c, luminanceAgainst.colour)
			report.Against = &against
			report.Ratio = &ratio
		}
		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		output = string(jsonBytes) + "\n"
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", luminanceFormat)
	}

	return writeOutput(cmd, luminanceOutput, output)
}
