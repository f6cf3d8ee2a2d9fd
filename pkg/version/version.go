// Package version provides version information for the biner CLI tool.
package version

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// These variables are populated at build time using -ldflags.
// Example:
// go build -ldflags "-X 'biner/pkg/version.Version=1.2.3' -X 'biner/pkg/version.Commit=abcdefg' -X 'biner/pkg/version.BuildTime=2024-04-27T15:04:05Z'"
var (
	Version   = "dev"     // Semantic version of the application
	Commit    = "none"    // Git commit hash
	BuildTime = "unknown" // Build timestamp
)

// Info contains comprehensive version information.
type Info struct {
	Version   string // Semantic version
	GitCommit string // Git commit hash
	BuildTime string // Build timestamp
	GoVersion string // Go runtime version
	Platform  string // OS and architecture
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns the version information in a single line, e.g.
// biner version 1.2.3 (commit: abcdefg) built at 2024-04-27T15:04:05Z with go1.23.1 on linux/amd64
func (i Info) String() string {
	return fmt.Sprintf(
		"biner version %s (commit: %s) built at %s with %s on %s",
		i.Version,
		i.GitCommit,
		i.BuildTime,
		i.GoVersion,
		i.Platform,
	)
}

// Fields returns the version information as structured log fields.
func (i Info) Fields() []zap.Field {
	return []zap.Field{
		zap.String("appVersion", i.Version),
		zap.String("commit", i.GitCommit),
		zap.String("platform", i.Platform),
	}
}
