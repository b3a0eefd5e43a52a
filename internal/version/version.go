// Package version reports the build identity of the deckstats binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time via ldflags:
//
//	-X github.com/rnwolfe/deckstats/internal/version.Version=v0.3.0
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is a snapshot of the build identity.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Platform  string
}

// Get returns the current build identity.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Full returns "v0.3.0 (abc1234) 2024-03-10T12:00:00Z".
func Full() string {
	return fmt.Sprintf("%s (%s) %s", Version, Commit, Date)
}

// Short returns just the version string.
func Short() string {
	return Version
}

// ldflags values always take precedence over build info.
func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		backfill(info)
	}
}

// backfill fills Version, Commit, and Date from build info when they still
// hold their defaults, so `go install` builds report something useful.
func backfill(info *debug.BuildInfo) {
	if info == nil {
		return
	}

	// "(devel)" means built from a checkout without a tag.
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, s := range info.Settings {
		if s.Value == "" {
			continue
		}
		switch s.Key {
		case "vcs.revision":
			if Commit == "none" {
				Commit = shortRev(s.Value)
			}
		case "vcs.time":
			if Date == "unknown" {
				Date = s.Value
			}
		}
	}
}

func shortRev(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
