// Package buildinfo exposes the footgen version stamped in at link time:
//
//	go build -ldflags "-X github.com/matzehuels/footgen/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/footgen/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/footgen/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

// Values are overridden via -ldflags; the defaults mark a local build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Banner returns a one-line description suitable for a debug log line.
func Banner() string {
	return fmt.Sprintf("footgen %s (%s, %s)", Version, Commit, Date)
}

// Template returns the --version template for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
