// Package cli provides the command-line interface for Lumin.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/lumin/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "lumin",
		Short: "WCAG colour luminance and contrast calculator",
		Long: `Lumin computes device-independent relative luminance and WCAG 2.1
contrast ratios for sRGB colours.

Colours can be given as hex strings (#RRGGBB or RRGGBB, case-insensitive)
or as decimal r,g,b triples. Contrast ratios are graded against the WCAG
AA and AAA minimums for normal and large text.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(luminanceCmd)
	rootCmd.AddCommand(convertCmd)
}

// newLogger builds the diagnostic logger for a command run. Debug level when
// --verbose is set, disabled entirely otherwise so stdout stays scriptable.
func newLogger() hclog.Logger {
	if verbose && !quiet {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "lumin",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "lumin",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
