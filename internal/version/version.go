// Package version is the single source of truth for build identity.
package version

// These variables can be overridden at build time using ldflags:
// go build -ldflags "-X arblint/internal/version.Version=1.0.0 -X arblint/internal/version.Commit=abc123"
var (
	// Version is the semantic version of the analyzer.
	Version = "0.3.0"

	// Commit is the git commit hash (set at build time).
	Commit = "unknown"

	// BuildDate is the build timestamp (set at build time).
	BuildDate = "unknown"
)

// Info returns a short version string for handshakes and logs.
func Info() string {
	if Commit != "unknown" && len(Commit) > 7 {
		return Version + " (" + Commit[:7] + ")"
	}
	return Version
}

// Full returns complete version information for `arblint version`.
func Full() string {
	return "arblint version " + Version + "\n" +
		"Commit: " + Commit + "\n" +
		"Built: " + BuildDate
}
