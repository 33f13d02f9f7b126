package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/seo-auditor/internal/schemas"
	"github.com/jonathan/seo-auditor/internal/types"
)

// writeOutput renders to the file at path, or to w when path is empty.
// Parent directories of path are created as needed.
func writeOutput(w io.Writer, path string, render func(io.Writer) error) error {
	if path == "" {
		return render(w)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	if err := render(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", path, err)
	}
	return nil
}

// readRecords loads metadata records from a JSON file holding either one record or an array of records
func readRecords(path string) ([]types.MetadataRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file %s: %w", path, err)
	}

	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, &types.ValidationError{Message: fmt.Sprintf("records file %s is empty", path)}
	}

	if trimmed[0] == '[' {
		var records []types.MetadataRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, &types.ValidationError{Message: "failed to parse records JSON", Cause: err}
		}
		if len(records) == 0 {
			return nil, &types.ValidationError{Message: fmt.Sprintf("records file %s holds no records", path)}
		}
		return records, nil
	}

	var record types.MetadataRecord
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return nil, &types.ValidationError{Message: "failed to parse record JSON", Cause: err}
	}
	return []types.MetadataRecord{record}, nil
}

// applyNiche fills the niche of records that carry none
func applyNiche(records []types.MetadataRecord, niche string) {
	if niche == "" {
		return
	}
	for i := range records {
		if records[i].Niche == "" {
			records[i].Niche = niche
		}
	}
}

// checkSchema validates a produced document against one of the repository schemas
func checkSchema(schemaFile string, v any) error {
	path := schemas.ResolveSchemaPath(schemaFile)
	if path == "" {
		return fmt.Errorf("schema file not found: %s", schemaFile)
	}
	if err := schemas.ValidateDocument(path, v); err != nil {
		return fmt.Errorf("output does not match %s: %w", filepath.Base(schemaFile), err)
	}
	return nil
}
