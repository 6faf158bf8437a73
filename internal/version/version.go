// Package version exposes build metadata for openssg.
package version

// Name is the program name used in usage and version output.
const Name = "openssg"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Release date, RFC 3339 or YYYY-MM-DD
)
