package version

import "runtime"

// Build-time variables set via ldflags.
var (
	Number    = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String returns the current version of pgdelta.
func String() string {
	return Number
}

// Platform returns the OS/architecture combination.
func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
