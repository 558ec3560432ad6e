package colour

// WCAG 2.1 minimum contrast ratios.
// https://www.w3.org/TR/WCAG21/#contrast-minimum.
const (
	// MinContrastAA is the AA minimum for normal text.
	MinContrastAA = 4.5
	// MinContrastAALarge is the AA minimum for large text.
	MinContrastAALarge = 3.0
	// MinContrastAAA is the AAA minimum for normal text.
	MinContrastAAA = 7.0
	// MinContrastAAALarge is the AAA minimum for large text.
	MinContrastAAALarge = 4.5
)

// Level is a WCAG conformance level satisfied by a contrast ratio.
type Level int

// Conformance levels for normal text, from none to strictest.
const (
	LevelFail Level = iota
	LevelAALarge
	LevelAA
	LevelAAA
)

// String returns the level name as used in WCAG success criteria.
func (l Level) String() string {
	switch l {
	case LevelAAA:
		return "AAA"
	case LevelAA:
		return "AA"
	case LevelAALarge:
		return "AA (large text only)"
	default:
		return "fail"
	}
}

// MeetsAA reports whether a contrast ratio satisfies WCAG AA.
// Large text lowers the minimum from 4.5 to 3.0.
func MeetsAA(ratio float64, largeText bool) bool {
	min := MinContrastAA
	if largeText {
		min = MinContrastAALarge
	}
	return ratio >= min
}

// MeetsAAA reports whether a contrast ratio satisfies WCAG AAA.
// Large text lowers the minimum from 7.0 to 4.5.
func MeetsAAA(ratio float64, largeText bool) bool {
	min := MinContrastAAA
	if largeText {
		min = MinContrastAAALarge
	}
	return ratio >= min
}

// Grade returns the strictest conformance level a contrast ratio satisfies
// for normal text.
func Grade(ratio float64) Level {
	switch {
	case ratio >= MinContrastAAA:
		return LevelAAA
	case ratio >= MinContrastAA:
		return LevelAA
	case ratio >= MinContrastAALarge:
		return LevelAALarge
	default:
		return LevelFail
	}
}
