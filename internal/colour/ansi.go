package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Black and White are the extreme sRGB colours, used for overlay text
// selection and as contrast reference points.
var (
	Black = New(0, 0, 0)
	White = New(255, 255, 255)
)

// Preview returns an ANSI-coloured swatch for a colour.
// Width specifies how many characters wide the block should be.
// Uses background colour with spaces for a solid block.
func Preview(c Colour, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, uint8(c.red), uint8(c.green), uint8(c.blue), ansiSuffix)
	block := strings.Repeat(" ", width)

	return bg + block + ansiReset
}

// PreviewWithText returns a swatch with text overlaid. The overlay is black
// or white, whichever contrasts more against the swatch colour.
func PreviewWithText(c Colour, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := Black
	if ContrastRatio(White, c) > ContrastRatio(Black, c) {
		fg = White
	}

	bgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, uint8(c.red), uint8(c.green), uint8(c.blue), ansiSuffix)
	fgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, uint8(fg.red), uint8(fg.green), uint8(fg.blue), ansiSuffix)

	// Pad or truncate text to fit width.
	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		pad := (width - len(text)) / 2
		display = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}

	return bgSeq + fgSeq + display + ansiReset
}

// FormatWithPreview formats a colour as its swatch followed by its hex code.
func FormatWithPreview(c Colour, width int) string {
	return fmt.Sprintf("%s %s", Preview(c, width), c.Hex())
}
