package schemas

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jonathan/seo-auditor/internal/audit"
	"github.com/jonathan/seo-auditor/internal/batch"
	"github.com/jonathan/seo-auditor/internal/config"
	"github.com/jonathan/seo-auditor/internal/keywords"
	"github.com/jonathan/seo-auditor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSON_ValidJSON(t *testing.T) {
	schemaPath := filepath.Join("testdata", "record_schema.json")
	jsonPath := filepath.Join("testdata", "valid_record.json")

	err := ValidateJSON(schemaPath, jsonPath)
	assert.NoError(t, err)
}

func TestValidateJSON_InvalidJSON_MissingField(t *testing.T) {
	schemaPath := filepath.Join("testdata", "record_schema.json")
	jsonPath := filepath.Join("testdata", "missing_tags.json")

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Errors[0].Message, "tags")
}

func TestValidateJSON_InvalidJSON_WrongType(t *testing.T) {
	schemaPath := filepath.Join("testdata", "record_schema.json")
	jsonPath := filepath.Join("testdata", "type_mismatch.json")

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	fields := make([]string, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"tags", "views"}, fields)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	err := ValidateJSON("testdata/nonexistent_schema.json", filepath.Join("testdata", "valid_record.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	err := ValidateJSON(filepath.Join("testdata", "record_schema.json"), "testdata/nonexistent_json.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_BrokenSchema(t *testing.T) {
	err := ValidateJSON(filepath.Join("testdata", "broken_schema.json"), filepath.Join("testdata", "valid_record.json"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr), "error should be SchemaLoadError type")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["niche"], "properties": {"niche": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"niche": "anatolian rock"}`))

	err := ValidateJSONString(schema, `{"niche": 7}`)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "niche", validationErr.Errors[0].Field)
}

func TestSchemaFor(t *testing.T) {
	path, err := SchemaFor(" Report ")
	require.NoError(t, err)
	assert.Equal(t, AuditReportSchema, path)

	_, err = SchemaFor("playlist")
	var argErr *types.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "document kind", argErr.Argument)
}

func TestResolveSchemaPath(t *testing.T) {
	for kind, rel := range Kinds {
		t.Run(kind, func(t *testing.T) {
			assert.NotEmpty(t, ResolveSchemaPath(rel), "schema %s should resolve from the package directory", rel)
		})
	}
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}

func TestValidateDocument_AuditReport(t *testing.T) {
	auditor := audit.New(nil)

	records := map[string]types.MetadataRecord{
		"well formed": {
			VideoID:      "abc123",
			Title:        "Turkish Rock Classics: Erkin Koray Live in Istanbul 1974",
			Description:  "Turkish rock legend Erkin Koray live. #turkishrock #anatolianrock #70s",
			Tags:         []string{"turkish rock", "erkin koray", "anatolian rock", "live"},
			ThumbnailRef: types.StringPtr("https://i.ytimg.com/vi/abc123/maxresdefault.jpg"),
			Niche:        "turkish rock",
		},
		"empty": {},
	}

	for name, rec := range records {
		t.Run(name, func(t *testing.T) {
			report, err := auditor.Audit(rec)
			require.NoError(t, err)
			assert.NoError(t, ValidateDocument(ResolveSchemaPath(AuditReportSchema), report))
		})
	}
}

func TestValidateDocument_ChannelSummary(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	report, err := audit.New(cfg).Audit(types.MetadataRecord{VideoID: "v1", Title: "Cemalim", Niche: "rock"})
	require.NoError(t, err)

	results := []types.BatchItemResult{
		{ID: "v1", Report: report},
		{ID: "v2", Error: "video not found"},
	}
	summary := batch.Summarize("@erkinkoray", results, cfg)

	assert.NoError(t, ValidateDocument(ResolveSchemaPath(ChannelSummarySchema), summary))
}

func TestValidateDocument_KeywordResearch(t *testing.T) {
	policy := config.DefaultScoringConfig().Keywords
	ranked := keywords.Rank([]string{"turkish rock", "anatolian psychedelic rock 1970s"}, "turkish rock", nil, policy)

	research := types.KeywordResearch{
		Niche:           "turkish rock",
		Seeds:           []string{"turkish rock"},
		TotalCandidates: len(ranked),
		Ranked:          ranked,
		Recommendations: keywords.Recommendations(ranked, policy),
	}

	assert.NoError(t, ValidateDocument(ResolveSchemaPath(KeywordResearchSchema), research))
}

func TestValidateDocument_MetadataRecord(t *testing.T) {
	schemaPath := ResolveSchemaPath(MetadataRecordSchema)

	assert.NoError(t, ValidateDocument(schemaPath, types.MetadataRecord{Title: "Cemalim", Tags: []string{"rock"}}))

	err := ValidateDocument(schemaPath, map[string]any{"title": "Cemalim", "views": 10})
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "unknown properties should be rejected")
}

func TestValidateDocument_MissingSchema(t *testing.T) {
	err := ValidateDocument("schemas/nope.schema.json", types.MetadataRecord{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}
