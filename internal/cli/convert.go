package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/lumin/internal/colour"
	"github.com/spf13/cobra"
)

var (
	// Convert command flags
	convertFormat  string
	convertPreview bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <colour>",
	Short: "Convert a colour between hex and rgb forms",
	Long: `Convert a colour between its hex and decimal rgb representations.

Examples:
  # Hex to rgb
  lumin convert --format rgb "#1a2b3c"

  # rgb triple to hex
  lumin convert 26,43,60

  # All forms as JSON
  lumin convert --format json "#1a2b3c"

  # Show a colour swatch in the terminal
  lumin convert --preview "#1a2b3c"`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	convertCmd.Flags().BoolVar(&convertPreview, "preview", false, "show a colour preview in terminal")
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string) error {
	c, err := parseColour(args[0])
	if err != nil {
		return err
	}

	var output string
	switch convertFormat {
	case "hex":
		output = c.Hex() + "\n"
	case "rgb":
		output = fmt.Sprintf("rgb(%g, %g, %g)\n", c.R(), c.G(), c.B())
	case "json":
		jsonBytes, err := json.MarshalIndent(newColourJSON(c), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		output = string(jsonBytes) + "\n"
	default:
		return fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", convertFormat)
	}

	if convertPreview && isTerminal() && convertFormat != "json" {
		output = colour.Preview(c, 8) + " " + output
	}

	return writeOutput(cmd, "", output)
}
