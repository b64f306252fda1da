// Package misc keeps build identity helpers in one place.
package misc

import "runtime/debug"

// Overwritten at build time with
// -ldflags="-X 'flatcss/misc.version=...'".
var (
	appName = "flatcss"
	version = "1.0.0"
	gitHash = ""
)

// GetAppName returns program name used in logs, temp files and reports.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns VCS revision the program was built from.
func GetGitHash() string {
	if len(gitHash) != 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
