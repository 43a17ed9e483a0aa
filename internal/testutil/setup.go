package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteScriptFile writes data to name inside a fresh temp directory and
// returns the full path.
//
// Example:
//
//	path := testutil.WriteScriptFile(t, "bs01.dat", testutil.Sample().Build())
func WriteScriptFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}
	return path
}

// ReadFile reads path or fails the test.
func ReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return data
}
