package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/seo-auditor/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON document against a schema",
	Long: `Validates a JSON file against one of the repository schemas, chosen with --kind
(record, report, summary, keywords), or against any schema file given with --schema.`,
	RunE: runValidate,
}

var (
	validateSchema string
	validateKind   string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to a JSON Schema file")
	validateCmd.Flags().StringVar(&validateKind, "kind", "", "Document kind: record, report, summary, keywords")
	validateCmd.Flags().StringVar(&validateJSON, "json", "", "Path to the JSON file to validate (required)")

	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}
	validateCmd.MarkFlagsMutuallyExclusive("schema", "kind")
	validateCmd.MarkFlagsOneRequired("schema", "kind")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	schemaPath, err := schemaPathFor(validateSchema, validateKind)
	if err != nil {
		return err
	}

	if err := schemas.ValidateJSON(schemaPath, validateJSON); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Validation failed: %s", validationErr.Error())
			return fmt.Errorf("%s does not match %s", validateJSON, schemaPath)
		}
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s matches %s\n", validateJSON, schemaPath)
	return nil
}

// schemaPathFor resolves the schema file from an explicit path or a document kind
func schemaPathFor(schemaPath, kind string) (string, error) {
	if schemaPath != "" {
		return schemaPath, nil
	}

	rel, err := schemas.SchemaFor(kind)
	if err != nil {
		return "", err
	}
	resolved := schemas.ResolveSchemaPath(rel)
	if resolved == "" {
		return "", fmt.Errorf("schema file not found: %s", rel)
	}
	return resolved, nil
}
