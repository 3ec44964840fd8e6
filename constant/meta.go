// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Huemap is the canonical application identifier used for filesystem paths and CLI branding.
	Huemap = "huemap"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent identifies huemap to the GitHub API when fetching base16 schemes.
	UserAgent = "huemap/" + Version
)

// Build metadata populated via -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
