package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/lumin/internal/colour"
	"github.com/spf13/pflag"
)

// colourValue is a pflag.Value holding a parsed colour. It accepts the same
// forms as positional colour arguments: #RRGGBB, RRGGBB, or a decimal
// r,g,b triple.
type colourValue struct {
	colour colour.Colour
	set    bool
}

var _ pflag.Value = (*colourValue)(nil)

func (v *colourValue) String() string {
	if !v.set {
		return ""
	}
	return v.colour.Hex()
}

func (v *colourValue) Set(s string) error {
	c, err := parseColour(s)
	if err != nil {
		return err
	}
	v.colour = c
	v.set = true
	return nil
}

func (v *colourValue) Type() string {
	return "colour"
}

// parseColour parses a colour argument as either a hex string or a decimal
// r,g,b triple.
func parseColour(s string) (colour.Colour, error) {
	if strings.Contains(s, ",") {
		return parseTriple(s)
	}
	c, err := colour.FromHex(s)
	if err != nil {
		return colour.Colour{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}

// parseTriple parses "r,g,b" with each component a decimal integer in 0-255.
func parseTriple(s string) (colour.Colour, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return colour.Colour{}, fmt.Errorf("invalid colour %q: expected 3 comma-separated channels, got %d", s, len(parts))
	}

	var channels [3]uint8
	names := [3]string{"red", "green", "blue"}
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return colour.Colour{}, fmt.Errorf("invalid colour %q: %s channel must be an integer in 0-255", s, names[i])
		}
		channels[i] = uint8(v)
	}

	return colour.New(channels[0], channels[1], channels[2]), nil
}
