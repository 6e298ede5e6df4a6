// Package misc has program-wide bits which do not belong anywhere else.
package misc

import (
	"runtime/debug"
)

const appName = "fml"

// GetAppName returns the short program name used in logs and file names.
func GetAppName() string {
	return appName
}

// GetVersion returns module version recorded in build info, "devel" for
// uncontrolled builds.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "devel"
}

// GetGitHash returns vcs revision recorded in build info, if any.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
