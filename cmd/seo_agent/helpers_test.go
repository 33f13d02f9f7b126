package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the seo_agent binary for CLI tests
func getBinaryPath(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "seo_agent")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/seo_agent ./cmd/seo_agent'", binaryPath)
	}

	return binaryPath
}

// writeFile writes content to name inside a temp dir and returns the path
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
