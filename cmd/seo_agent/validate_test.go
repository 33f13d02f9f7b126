package main

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/seo-auditor/internal/types"
)

var (
	recordSchemaPath = filepath.Join("..", "..", "internal", "schemas", "testdata", "record_schema.json")
	validRecordPath  = filepath.Join("..", "..", "internal", "schemas", "testdata", "valid_record.json")
	invalidRecord    = filepath.Join("..", "..", "internal", "schemas", "testdata", "type_mismatch.json")
)

func TestSchemaPathFor(t *testing.T) {
	path, err := schemaPathFor("custom.schema.json", "")
	require.NoError(t, err)
	assert.Equal(t, "custom.schema.json", path)

	path, err = schemaPathFor("", "Report")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "audit_report.schema.json", filepath.Base(path))

	_, err = schemaPathFor("", "playlist")
	var argErr *types.InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "document kind", argErr.Argument)
}

func TestValidateCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate", "--schema", recordSchemaPath, "--json", validRecordPath)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, "command should succeed")
	assert.Contains(t, string(output), "Validation passed", "output should indicate success")
}

func TestValidateCommand_Kind(t *testing.T) {
	binaryPath := getBinaryPath(t)

	record := writeFile(t, "record.json", `{"video_id": "dQw4w9WgXcQ", "title": "Selda - Ince Ince", "tags": ["selda"]}`)
	cmd := exec.Command(binaryPath, "validate", "--kind", "record", "--json", record)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Validation passed")
}

func TestValidateCommand_Failure(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate", "--schema", recordSchemaPath, "--json", invalidRecord)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail")
	assert.Contains(t, string(output), "Validation failed", "output should indicate failure")
	if exitError, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitError.ExitCode(), "should exit with code 1 on validation failure")
	}
}

func TestValidateCommand_MissingJSONFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate", "--schema", recordSchemaPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail")
	assert.Contains(t, string(output), "required", "should indicate flag is required")
}

func TestValidateCommand_SchemaAndKindConflict(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate", "--schema", recordSchemaPath, "--kind", "record", "--json", validRecordPath)
	_, err := cmd.CombinedOutput()
	assert.Error(t, err, "command should fail")
}

func TestValidateCommand_InvalidSchemaPath(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate", "--schema", "nonexistent_schema.json", "--json", validRecordPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail")
	assert.Contains(t, string(output), "not found", "should indicate file not found")
}

func TestValidateCommand_InvalidJSONPath(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate", "--schema", recordSchemaPath, "--json", "nonexistent.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail")
	assert.Contains(t, string(output), "not found", "should indicate file not found")
}
