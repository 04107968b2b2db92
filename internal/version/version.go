package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/dotprov/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/dotprov/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/dotprov/internal/version.Date={{.Date}}
)

// String renders the build information the way `dotprov version` prints it
func String() string {
	return fmt.Sprintf("dotprov version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
