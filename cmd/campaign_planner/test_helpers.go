package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// getBinaryPath returns the path to the campaign_planner binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "campaign_planner"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/campaign_planner ./cmd/campaign_planner'", binaryPath)
	}

	return binaryPath
}

// executeCommand runs the root command in-process with args and returns its stdout
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags clears flag variables left over from a previous in-process run
func resetFlags() {
	verbose = false
	buildConfig, buildOutput = "", ""
	expandConfig, expandOutput = "", "deliverables/2"
	bidsConfig, bidsOutput = "", "deliverables/3"
	validatePlanInput, validatePlanSchema = "", ""
}

// writeFile writes content to name under dir and returns the path
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
