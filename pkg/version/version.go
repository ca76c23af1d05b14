package version

import "strings"

// Set at build time via -ldflags "-X github.com/graphframes/releasekit/pkg/version.Version=..."
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Summary returns a human-friendly version string for CLI output.
func Summary() string {
	if strings.TrimSpace(Version) == "" {
		return "dev"
	}
	return Version
}
