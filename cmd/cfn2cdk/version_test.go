package main

import (
	"strings"
	"testing"
)

func TestGetVersion(t *testing.T) {
	v := getVersion()

	if v == "" {
		t.Error("version is empty")
	}

	// When running tests, version should be "dev" (no ldflags set) or a
	// valid semver when built with -ldflags "-X main.version=vX.Y.Z".
	if v != "dev" && !strings.HasPrefix(v, "v") {
		t.Errorf("getVersion() = %q, want 'dev' or 'vX.Y.Z'", v)
	}
}
