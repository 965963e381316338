package main

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePlanCommand_InvalidDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "campaign_plan.json", `{"run_id": "x"}`)

	output, err := executeCommand(t, "validate-plan", "--in", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation found")
	assert.Contains(t, output, "records")
}

func TestValidatePlanCommand_CustomSchema(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.json", `{"type": "object", "required": ["run_id"]}`)
	path := writeFile(t, dir, "campaign_plan.json", `{"run_id": "x"}`)

	output, err := executeCommand(t, "validate-plan", "--in", path, "--schema", schema)
	require.NoError(t, err)
	assert.Contains(t, output, "Validation passed")
}

func TestValidatePlanCommand_FileNotFound(t *testing.T) {
	_, err := executeCommand(t, "validate-plan", "--in", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan file not found")
}

func TestValidatePlanCommand_MissingInputFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate-plan")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"in\" not set")
}
