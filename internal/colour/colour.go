package colour

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by FromHex before any hex digits are examined.
var (
	// ErrEmptyInput indicates a zero-length input string.
	ErrEmptyInput = errors.New("input is empty")

	// ErrNonASCIIInput indicates the input contains non-ASCII characters.
	// Unicode lookalike digits are rejected before case-folding.
	ErrNonASCIIInput = errors.New("input contains non-ASCII characters")

	// ErrInvalidLength indicates the trimmed input is neither RRGGBB nor #RRGGBB.
	ErrInvalidLength = errors.New("input must be 6 hex digits with an optional leading #")
)

// Colour is an immutable sRGB colour. Channels are stored as floating-point
// and are in [0, 255] when built through New or FromHex, or in [0, 1] after
// Normalize. Values constructed directly with out-of-range channels are not
// rejected; downstream calculations will silently produce out-of-range
// results.
type Colour struct {
	red, green, blue float64
}

// New builds a Colour from raw 8-bit channel values.
func New(r, g, b uint8) Colour {
	return Colour{
		red:   float64(r),
		green: float64(g),
		blue:  float64(b),
	}
}

// FromHex parses a colour from a 6-hex-digit string, with or without a
// leading #. Matching is case-insensitive and surrounding whitespace is
// ignored. Channel decode failures are wrapped with the channel name and
// satisfy errors.Is against the hex decoder's sentinel errors.
func FromHex(s string) (Colour, error) {
	if len(s) == 0 {
		return Colour{}, ErrEmptyInput
	}

	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return Colour{}, ErrNonASCIIInput
		}
	}

	trimmed := strings.TrimSpace(strings.ToLower(s))

	// Only RRGGBB or #RRGGBB; a 7-character string without the # is invalid.
	switch {
	case len(trimmed) == 6:
	case len(trimmed) == 7 && trimmed[0] == '#':
		trimmed = trimmed[1:]
	default:
		return Colour{}, ErrInvalidLength
	}

	r, err := DecodeHexByte(trimmed[0:2])
	if err != nil {
		return Colour{}, fmt.Errorf("red channel: %w", err)
	}
	g, err := DecodeHexByte(trimmed[2:4])
	if err != nil {
		return Colour{}, fmt.Errorf("green channel: %w", err)
	}
	b, err := DecodeHexByte(trimmed[4:6])
	if err != nil {
		return Colour{}, fmt.Errorf("blue channel: %w", err)
	}

	return New(r, g, b), nil
}

// R returns the red channel.
func (c Colour) R() float64 { return c.red }

// G returns the green channel.
func (c Colour) G() float64 { return c.green }

// B returns the blue channel.
func (c Colour) B() float64 { return c.blue }

// Normalize returns a new Colour with every channel divided by 255,
// mapping 8-bit channels onto [0, 1]. The receiver is unchanged.
func (c Colour) Normalize() Colour {
	return Colour{
		red:   c.red / 255.0,
		green: c.green / 255.0,
		blue:  c.blue / 255.0,
	}
}

// String returns the colour as "(r: R, g: G, b: B)".
func (c Colour) String() string {
	return fmt.Sprintf("(r: %g, g: %g, b: %g)", c.red, c.green, c.blue)
}

// Hex returns the colour as a lowercase hex string (e.g. "#1a2b3c").
// Channels are assumed to hold 8-bit values, as produced by New or FromHex.
func (c Colour) Hex() string {
	return "#" + EncodeHexByte(uint8(c.red)) + EncodeHexByte(uint8(c.green)) + EncodeHexByte(uint8(c.blue))
}
