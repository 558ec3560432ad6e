// Lumin - a WCAG colour luminance and contrast calculator
//
// Lumin converts sRGB colours given as hex strings or decimal triples into
// relative luminance values and computes WCAG 2.1 contrast ratios.
package main

import (
	"os"

	"github.com/jmylchreest/lumin/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
