// Package version provides build and version information for the numbeo CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build information, overridden with -ldflags "-X numbeo/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info represents version and build information
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// GetInfo returns the current version and build information. Builds made
// with "go install" carry the module version instead of ldflags.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if info.Version == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	return info
}

// GetVersionString returns a one-line version string
func GetVersionString() string {
	info := GetInfo()
	if info.Version == "dev" {
		return fmt.Sprintf("numbeo %s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
	}
	return fmt.Sprintf("numbeo %s", info.Version)
}

// GetFullVersionString returns a detailed version string with all build info
func GetFullVersionString() string {
	info := GetInfo()
	return fmt.Sprintf(`numbeo cost-of-living CLI
Version:    %s
Commit:     %s
Built:      %s
Go version: %s
Platform:   %s`, info.Version, info.Commit, info.Date, info.GoVersion, info.Platform)
}

// UserAgent is sent with every API request
func UserAgent() string {
	return fmt.Sprintf("numbeo-cli/%s (%s)", GetInfo().Version, runtime.GOOS)
}
