// Package version provides build-time version information for Lumin.
package version

import (
	"fmt"
	"runtime"
)

// These are injected at build time via
// -ldflags "-X github.com/jmylchreest/lumin/internal/version.Version=x.y.z"
// (and likewise for Commit and Date).
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the bare semantic version, used for cobra's --version flag.
func Short() string {
	return Version
}

// String returns a human-readable version line for the version command.
func String() string {
	platform := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	if Commit != "unknown" && Date != "unknown" {
		return fmt.Sprintf("lumin version %s (commit: %s, built: %s, %s, %s)",
			Version, shortCommit(), Date, runtime.Version(), platform)
	}
	return fmt.Sprintf("lumin version %s (%s, %s)", Version, runtime.Version(), platform)
}

// shortCommit abbreviates the commit hash for display. Hashes already shorter
// than 8 characters are used as-is rather than sliced.
func shortCommit() string {
	if len(Commit) > 8 {
		return Commit[:8]
	}
	return Commit
}
