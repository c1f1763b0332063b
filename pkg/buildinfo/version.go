// Package buildinfo holds the version stamped into binaries at link time:
//
//	go build -ldflags "-X github.com/matzehuels/stackshelf/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/stackshelf/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/stackshelf/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Tool identifies the program in generated files and HTTP headers,
// e.g. "stackshelf/v0.3.0".
func Tool() string {
	return "stackshelf/" + Version
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
