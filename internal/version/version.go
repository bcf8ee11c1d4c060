// Package version holds build information injected with -ldflags, e.g.
// -X github.com/pyhub-apps/pdfstructure/internal/version.Version=v1.2.0
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String formats the build information for the version command
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate)
}
