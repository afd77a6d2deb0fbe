package version

import (
	"strings"
	"testing"
)

func TestVersionHasSemverShape(t *testing.T) {
	if Version == "" {
		t.Fatal("Version should have a default value")
	}
	// The default is colorized; dots still separate the components.
	if strings.Count(Version, ".") != 2 {
		t.Errorf("Version = %q, want a major.minor.patch shape", Version)
	}
}

func TestBuildMetadataOverridable(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() {
		GitCommit, BuildDate = origCommit, origDate
	}()

	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"
	if GitCommit != "abc123def456" || BuildDate != "2024-01-15T10:30:00Z" {
		t.Error("ldflags-style overrides should stick")
	}
}
