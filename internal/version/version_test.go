package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

// resetVars restores the ldflags defaults for the duration of a test.
func resetVars(t *testing.T) {
	t.Helper()
	v, c, d := Version, Commit, Date
	Version, Commit, Date = "dev", "none", "unknown"
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestFull(t *testing.T) {
	result := Full()
	if !strings.Contains(result, Version) || !strings.Contains(result, Commit) {
		t.Errorf("Full() %q does not contain version %q and commit %q", result, Version, Commit)
	}
}

func TestShort(t *testing.T) {
	if got := Short(); got != Version {
		t.Errorf("Short() = %q, want %q", got, Version)
	}
}

func TestGet(t *testing.T) {
	info := Get()
	if info.Version != Version || info.GoVersion == "" || !strings.Contains(info.Platform, "/") {
		t.Errorf("Get() = %+v", info)
	}
}

func TestBackfill_TaggedBuild(t *testing.T) {
	resetVars(t)
	backfill(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2024-03-10T12:00:00Z"},
		},
	})
	if Version != "v0.3.0" || Commit != "0123456" || Date != "2024-03-10T12:00:00Z" {
		t.Errorf("backfill = %s %s %s", Version, Commit, Date)
	}
}

func TestBackfill_DevelKeepsDefault(t *testing.T) {
	resetVars(t)
	backfill(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if Version != "dev" {
		t.Errorf("Version = %q, want dev", Version)
	}
}

func TestBackfill_LdflagsWin(t *testing.T) {
	resetVars(t)
	Version, Commit = "v1.0.0", "feedbee"
	backfill(&debug.BuildInfo{
		Main:     debug.Module{Version: "v0.9.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abcdef0123"}},
	})
	if Version != "v1.0.0" || Commit != "feedbee" {
		t.Errorf("ldflags values overwritten: %s %s", Version, Commit)
	}
}

func TestBackfill_Nil(t *testing.T) {
	resetVars(t)
	backfill(nil)
	if Version != "dev" {
		t.Error("nil build info should change nothing")
	}
}
