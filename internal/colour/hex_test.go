package colour

import (
	"errors"
	"testing"
)

func TestDecodeHexByte(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint8
	}{
		{
			name:  "maximum value",
			input: "ff",
			want:  255,
		},
		{
			name:  "minimum value",
			input: "00",
			want:  0,
		},
		{
			name:  "mixed digits",
			input: "1a",
			want:  26,
		},
		{
			name:  "uppercase",
			input: "FF",
			want:  255,
		},
		{
			name:  "mixed case",
			input: "aB",
			want:  171,
		},
		{
			name:  "high nibble first",
			input: "10",
			want:  16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeHexByte(tt.input)
			if err != nil {
				t.Fatalf("DecodeHexByte(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("DecodeHexByte(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeHexByteErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "too short",
			input:   "1",
			wantErr: ErrHexLength,
		},
		{
			name:    "too long",
			input:   "abc",
			wantErr: ErrHexLength,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrHexLength,
		},
		{
			name:    "invalid right digit",
			input:   "1g",
			wantErr: ErrHexRightDigit,
		},
		{
			name:    "invalid left digit",
			input:   "g1",
			wantErr: ErrHexLeftDigit,
		},
		{
			name:    "both invalid reports left first",
			input:   "zz",
			wantErr: ErrHexLeftDigit,
		},
		{
			name:    "whitespace is not a digit",
			input:   " 1",
			wantErr: ErrHexLeftDigit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeHexByte(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeHexByte(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestEncodeHexByteRoundTrip(t *testing.T) {
	// The decoder is injective over valid input: every byte value must
	// survive an encode/decode cycle.
	for v := 0; v <= 255; v++ {
		encoded := EncodeHexByte(uint8(v))
		decoded, err := DecodeHexByte(encoded)
		if err != nil {
			t.Fatalf("DecodeHexByte(%q) returned error: %v", encoded, err)
		}
		if decoded != uint8(v) {
			t.Errorf("round trip of %d via %q = %d", v, encoded, decoded)
		}
	}
}
