package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/lumin/internal/colour"
	"github.com/spf13/cobra"
)

// captureStreams runs f with os.Stdout and os.Stderr redirected to pipes and
// returns what each stream received.
func captureStreams(t *testing.T, f func()) (stdout, stderr string) {
	t.Helper()

	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create stdout pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create stderr pipe: %v", err)
	}

	origOut, origErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = outW, errW
	defer func() {
		os.Stdout, os.Stderr = origOut, origErr
	}()

	f()

	outW.Close()
	errW.Close()
	outBytes, _ := io.ReadAll(outR)
	errBytes, _ := io.ReadAll(errR)
	return string(outBytes), string(errBytes)
}

func TestWriteOutputGoesToStdout(t *testing.T) {
	// Results must be pipeable: a fresh command with no writers set has to
	// deliver to stdout, never stderr.
	stdout, stderr := captureStreams(t, func() {
		cmd := &cobra.Command{}
		if err := writeOutput(cmd, "", "21.00:1\n"); err != nil {
			t.Errorf("writeOutput returned error: %v", err)
		}
	})

	if stdout != "21.00:1\n" {
		t.Errorf("stdout = %q, want %q", stdout, "21.00:1\n")
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestWriteOutputRespectsSetOut(t *testing.T) {
	var sb strings.Builder
	cmd := &cobra.Command{}
	cmd.SetOut(&sb)

	if err := writeOutput(cmd, "", "report\n"); err != nil {
		t.Fatalf("writeOutput returned error: %v", err)
	}
	if sb.String() != "report\n" {
		t.Errorf("captured output = %q, want %q", sb.String(), "report\n")
	}
}

func TestWriteOutputToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	cmd := &cobra.Command{}
	stdout, _ := captureStreams(t, func() {
		if err := writeOutput(cmd, path, "report\n"); err != nil {
			t.Errorf("writeOutput returned error: %v", err)
		}
	})

	if stdout != "" {
		t.Errorf("file output leaked to stdout: %q", stdout)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if string(data) != "report\n" {
		t.Errorf("file contents = %q, want %q", string(data), "report\n")
	}
}

func TestFormatContrastText(t *testing.T) {
	black := colour.New(0, 0, 0)
	white := colour.New(255, 255, 255)

	out := formatContrastText(black, white, colour.ContrastRatio(black, white))

	if !strings.Contains(out, "#000000") || !strings.Contains(out, "#ffffff") {
		t.Errorf("report missing colour hex codes:\n%s", out)
	}
	if !strings.Contains(out, "contrast ratio: 21.00:1") {
		t.Errorf("report missing ratio line:\n%s", out)
	}

	// Black on white passes every criterion.
	if strings.Contains(out, "fail") {
		t.Errorf("maximum contrast reported a failing criterion:\n%s", out)
	}
}

func TestFormatContrastTextFailingPair(t *testing.T) {
	grey := colour.New(119, 119, 119)
	white := colour.New(255, 255, 255)

	ratio := colour.ContrastRatio(grey, white)
	out := formatContrastText(grey, white, ratio)

	// #777777 on white is ~4.48:1, below every normal-text minimum but
	// above the AA large-text minimum.
	if !strings.Contains(out, "AA large text") {
		t.Fatalf("report missing criterion rows:\n%s", out)
	}
	if !strings.Contains(out, "fail") {
		t.Errorf("sub-threshold pair reported no failures:\n%s", out)
	}
	if !strings.Contains(out, "pass") {
		t.Errorf("large-text criterion should pass at %.2f:\n%s", ratio, out)
	}
}

func TestPassFail(t *testing.T) {
	if passFail(true) != "pass" {
		t.Errorf("passFail(true) = %q", passFail(true))
	}
	if passFail(false) != "fail" {
		t.Errorf("passFail(false) = %q", passFail(false))
	}
}

func TestNewColourJSON(t *testing.T) {
	got := newColourJSON(colour.New(26, 43, 60))

	if got.Hex != "#1a2b3c" {
		t.Errorf("Hex = %q, want #1a2b3c", got.Hex)
	}
	if got.RGB != "rgb(26, 43, 60)" {
		t.Errorf("RGB = %q", got.RGB)
	}
	if got.Luminance <= 0 || got.Luminance >= 1 {
		t.Errorf("Luminance = %g, want within (0, 1)", got.Luminance)
	}
}
