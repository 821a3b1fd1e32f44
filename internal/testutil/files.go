// Package testutil holds fixtures shared by package tests: page directories
// and site files written to temporary locations.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes body to dir/name, creating parent directories, and
// returns the full path.
func WriteFile(t testing.TB, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// ContentDir creates a temporary directory holding pages, keyed by file
// name.
func ContentDir(t testing.TB, pages map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range pages {
		WriteFile(t, dir, name, body)
	}
	return dir
}

// SiteFile writes a site file into a fresh temporary directory.
func SiteFile(t testing.TB, yaml string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), "site.yaml", yaml)
}
