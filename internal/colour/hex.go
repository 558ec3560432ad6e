// Package colour provides sRGB colour representation, relative luminance and
// WCAG 2.1 contrast calculations.
package colour

import (
	"errors"
	"fmt"
)

// Errors returned by DecodeHexByte. Each failing position is reported
// distinctly so callers can pinpoint the offending character.
var (
	// ErrHexLength indicates the input was not exactly two characters.
	ErrHexLength = errors.New("hex byte must be exactly 2 characters")

	// ErrHexLeftDigit indicates the first character is not a hex digit.
	ErrHexLeftDigit = errors.New("left character is not a hexadecimal digit")

	// ErrHexRightDigit indicates the second character is not a hex digit.
	ErrHexRightDigit = errors.New("right character is not a hexadecimal digit")

	// ErrHexLeftRange and ErrHexRightRange guard against a nibble value
	// above 15 leaking out of the digit table. Unreachable while the table
	// is correct, but reported rather than clamped so a future change to
	// digit parsing cannot silently corrupt channel values.
	ErrHexLeftRange  = errors.New("left digit value out of nibble range")
	ErrHexRightRange = errors.New("right digit value out of nibble range")
)

// hexDigit returns the value of a single hex digit character, or -1 when the
// character is not a hex digit. Case-insensitive.
func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// DecodeHexByte parses a two-character hexadecimal pair into a byte.
// The first character is the high nibble, the second the low nibble.
// It expects a trimmed pair without a leading #.
func DecodeHexByte(s string) (uint8, error) {
	if len(s) != 2 {
		return 0, ErrHexLength
	}

	left := hexDigit(s[0])
	if left < 0 {
		return 0, ErrHexLeftDigit
	}

	right := hexDigit(s[1])
	if right < 0 {
		return 0, ErrHexRightDigit
	}

	if left > 15 {
		return 0, ErrHexLeftRange
	}
	if right > 15 {
		return 0, ErrHexRightRange
	}

	// Both nibbles are <= 15, so the result always fits in a byte.
	return uint8(left)*16 + uint8(right), nil
}

// EncodeHexByte formats a byte as a lowercase two-character hex pair,
// the inverse of DecodeHexByte.
func EncodeHexByte(v uint8) string {
	return fmt.Sprintf("%02x", v)
}
