// Package version reports build information stamped at link time
package version

import "runtime/debug"

// BuildInfo holds version information about a binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go,omitempty"`
}

// set with -ldflags "-X 'codecheck/internal/core/version.version=v0.1.0'
// -X 'codecheck/internal/core/version.commit=abcd' -X 'codecheck/internal/core/version.date=2025-09-02'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Get returns the build information for the codecheck binaries
func Get() BuildInfo {
	bi := BuildInfo{
		Service: "codecheck",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		bi.Go = info.GoVersion
	}
	return bi
}

// For returns Get with the service name replaced
func For(service string) BuildInfo {
	bi := Get()
	if service != "" {
		bi.Service = service
	}
	return bi
}
