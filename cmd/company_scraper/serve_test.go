package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServeCommand_MissingSecret(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "serve", "--port", "0")
	cmd.Dir = t.TempDir()
	cmd.Env = append(envWithout("SCRAPER_API_SECRET"), "OPENCAGE_API_KEY=test-key")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "SCRAPER_API_SECRET")
}

func TestServeCommand_Help(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "serve", "--help").CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(output), "--port")
	assert.Contains(t, string(output), "--config")
}
