package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/idot/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/idot/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/idot/internal/version.Date={{.Date}}
)

// String renders the build information on one line
func String() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
