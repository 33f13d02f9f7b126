package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/seo-auditor/internal/schemas"
	"github.com/jonathan/seo-auditor/internal/types"
)

func TestReadRecords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr string
	}{
		{name: "single record", content: `{"video_id": "abc", "title": "Live at Montreux", "tags": ["jazz"]}`, want: 1},
		{name: "array", content: `[{"title": "one"}, {"title": "two"}, {"title": "three"}]`, want: 3},
		{name: "leading whitespace", content: "\n\t [{\"title\": \"one\"}]", want: 1},
		{name: "empty file", content: "  \n", wantErr: "is empty"},
		{name: "empty array", content: `[]`, wantErr: "holds no records"},
		{name: "invalid JSON", content: `{"title": `, wantErr: "failed to parse record JSON"},
		{name: "invalid array", content: `[{"title": 5}]`, wantErr: "failed to parse records JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "records.json", tt.content)
			records, err := readRecords(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				var validationErr *types.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, records, tt.want)
		})
	}
}

func TestReadRecords_MissingFile(t *testing.T) {
	_, err := readRecords(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read records file")
}

func TestApplyNiche(t *testing.T) {
	records := []types.MetadataRecord{{Title: "a"}, {Title: "b", Niche: "jazz"}}

	applyNiche(records, "")
	assert.Empty(t, records[0].Niche)

	applyNiche(records, "psych rock")
	assert.Equal(t, "psych rock", records[0].Niche)
	assert.Equal(t, "jazz", records[1].Niche)
}

func TestWriteOutput(t *testing.T) {
	render := func(w io.Writer) error {
		_, err := io.WriteString(w, "report")
		return err
	}

	t.Run("writer", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeOutput(&buf, "", render))
		assert.Equal(t, "report", buf.String())
	})

	t.Run("file in new directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reports", "nested", "out.txt")
		require.NoError(t, writeOutput(nil, path, render))
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "report", string(content))
	})

	t.Run("render error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		err := writeOutput(nil, path, func(io.Writer) error { return assert.AnError })
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCheckSchema(t *testing.T) {
	research := &types.KeywordResearch{
		Seeds:           []string{"jazz"},
		Hints:           []types.CompetitionHint{},
		Ranked:          []types.RankedKeyword{{Keyword: "jazz", Score: 20, Length: 4, Competition: types.CompetitionMedium}},
		Recommendations: []string{},
	}
	require.NoError(t, checkSchema(schemas.KeywordResearchSchema, research))

	research.Ranked[0].Competition = "Extreme"
	err := checkSchema(schemas.KeywordResearchSchema, research)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keyword_research.schema.json")

	err = checkSchema("schemas/nope.schema.json", research)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}
