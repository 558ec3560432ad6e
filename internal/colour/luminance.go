package colour

import "math"

// Luminosity coefficients for the sRGB primaries, fixed by the sRGB spec.
const (
	redWeight   = 0.2126
	greenWeight = 0.7152
	blueWeight  = 0.0722
)

// Linearize applies the sRGB inverse transfer function to a single
// normalized (0-1) channel, converting gamma-encoded sRGB to linear light.
// Threshold and constants come from the sRGB specification as referenced by
// WCAG 2.1 and must not be approximated.
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance.
func Linearize(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.1. Returns a value between 0 (darkest) and 1 (lightest) for colours
// with valid 8-bit channels; out-of-range channels flow through unchecked.
// https://www.w3.org/TR/WCAG21/relative-luminance.html.
func Luminance(c Colour) float64 {
	n := c.Normalize()

	r := Linearize(n.R())
	g := Linearize(n.G())
	b := Linearize(n.B())

	return redWeight*r + greenWeight*g + blueWeight*b
}

// ContrastRatio calculates the WCAG 2.1 contrast ratio between two colours.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs
// white). Symmetric: the lighter colour is always placed in the numerator,
// so argument order does not matter.
// https://www.w3.org/TR/WCAG21/#dfn-contrast-ratio.
func ContrastRatio(a, b Colour) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}
