// Package version reports build and rule pack versions
package version

import "bulletpoints/internal/core/rulepack"

// BuildInfo holds version information about a build
type BuildInfo struct {
	Service string `json:"service" example:"bulletpoints-api"`
	Version string `json:"version" example:"v0.1.0"`
	Commit  string `json:"commit"  example:"abcd123"`
	Date    string `json:"date"    example:"2026-10-19"`
	Rules   int    `json:"rules"   example:"1"`
}

// Info returns the build information for the API server
func Info() BuildInfo { return For("bulletpoints-api") }

// For returns the build information under a given service name.
// Set at build time with
// -ldflags "-X 'bulletpoints/internal/core/version.version=v0.1.0'
// -X 'bulletpoints/internal/core/version.commit=abcd' -X 'bulletpoints/internal/core/version.date=2026-10-19'"
func For(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
		Rules:   rulesVersion(),
	}
}

// rulesVersion is 0 when the embedded pack fails to load; readiness reports that failure
func rulesVersion() int {
	if rulepack.Err() != nil {
		return 0
	}
	return rulepack.Default().Version
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
