// Package schemas provides JSON Schema validation for audit inputs and exported artifacts.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/seo-auditor/internal/types"
)

// Schema files, relative to the repository root
const (
	MetadataRecordSchema  = "schemas/metadata_record.schema.json"
	AuditReportSchema     = "schemas/audit_report.schema.json"
	ChannelSummarySchema  = "schemas/channel_summary.schema.json"
	KeywordResearchSchema = "schemas/keyword_research.schema.json"
)

// Kinds maps document kind names accepted on the command line to their schema files.
var Kinds = map[string]string{
	"record":   MetadataRecordSchema,
	"report":   AuditReportSchema,
	"summary":  ChannelSummarySchema,
	"keywords": KeywordResearchSchema,
}

// SchemaFor returns the schema file for a document kind.
func SchemaFor(kind string) (string, error) {
	path, ok := Kinds[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return "", &types.InvalidArgumentError{
			Argument: "document kind",
			Value:    kind,
			Message:  "expected one of record, report, summary, keywords",
		}
	}
	return path, nil
}

// ResolveSchemaPath attempts to find a schema file by trying multiple common path resolutions.
// It tries paths relative to the current working directory, then paths relative to likely repo root locations.
// Returns the first path that exists, or empty string if none found.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateJSON validates a JSON file against a JSON Schema file
func ValidateJSON(schemaPath, jsonPath string) error {
	schemaLoader, err := fileSchemaLoader(schemaPath)
	if err != nil {
		return err
	}

	jsonAbsPath, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}
	if _, err := os.Stat(jsonAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("JSON file not found: %s", jsonAbsPath)
	}

	return validate(schemaPath, schemaLoader, gojsonschema.NewReferenceLoader("file://"+jsonAbsPath))
}

// ValidateDocument validates an in-memory value (marshaled through its JSON tags)
// against a JSON Schema file.
func ValidateDocument(schemaPath string, v any) error {
	schemaLoader, err := fileSchemaLoader(schemaPath)
	if err != nil {
		return err
	}
	return validate(schemaPath, schemaLoader, gojsonschema.NewGoLoader(v))
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate("(string schema)",
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewStringLoader(jsonContent))
}

func fileSchemaLoader(schemaPath string) (gojsonschema.JSONLoader, error) {
	schemaAbsPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schema path: %w", err)
	}
	if _, err := os.Stat(schemaAbsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("schema file not found: %s", schemaAbsPath)
	}
	return gojsonschema.NewReferenceLoader("file://" + schemaAbsPath), nil
}

func validate(schemaName string, schemaLoader, documentLoader gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaName,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
