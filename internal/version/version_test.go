package version

import "testing"

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}

	if Version != "dev" {
		// In tests, version should be "dev" unless explicitly set via ldflags
		t.Logf("Version is: %s (expected 'dev' or version set via ldflags)", Version)
	}
}

func TestBuildInfo(t *testing.T) {
	if BuildTime == "" {
		t.Error("BuildTime should be initialized")
	}

	if GitCommit == "" {
		t.Error("GitCommit should be initialized")
	}
}

func TestString(t *testing.T) {
	oldV, oldC, oldT := Version, GitCommit, BuildTime
	t.Cleanup(func() { Version, GitCommit, BuildTime = oldV, oldC, oldT })

	Version, GitCommit, BuildTime = "v1.0.0", "unknown", "unknown"
	if got := String(); got != "v1.0.0" {
		t.Errorf("String() = %q, want v1.0.0", got)
	}

	GitCommit, BuildTime = "abc123", "2026-01-02"
	if got := String(); got != "v1.0.0 (abc123) built 2026-01-02" {
		t.Errorf("String() = %q", got)
	}
}
