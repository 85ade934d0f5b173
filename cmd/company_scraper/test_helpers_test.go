package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// getBinaryPath returns the path to the company_scraper binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "company_scraper"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// envWithout returns the current environment minus the named variables.
func envWithout(names ...string) []string {
	var env []string
	for _, e := range os.Environ() {
		keep := true
		for _, name := range names {
			if strings.HasPrefix(e, name+"=") {
				keep = false
				break
			}
		}
		if keep {
			env = append(env, e)
		}
	}
	return env
}
