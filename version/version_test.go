package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("GetFullVersion() = %q, want dev", got)
	}

	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)
	Version, GitCommit, BuildDate = "1.2.0", "abc123", "2025-06-01"

	if got, want := GetFullVersion(), "1.2.0 (abc123, built 2025-06-01)"; got != want {
		t.Errorf("GetFullVersion() = %q, want %q", got, want)
	}
	if GetVersion() != "1.2.0" {
		t.Errorf("GetVersion() = %q", GetVersion())
	}
}
