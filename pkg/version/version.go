// Package version carries build metadata embedded at link time:
//
//	go build -ldflags="-X 'github.com/clusterscope/resource-gather/pkg/version.Version=1.0.0'"
package version

import "fmt"

var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the VCS revision of the build.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the full human-readable version line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
