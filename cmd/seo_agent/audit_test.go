package main

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/seo-auditor/internal/config"
	"github.com/jonathan/seo-auditor/internal/logging"
	"github.com/jonathan/seo-auditor/internal/types"
)

func testSettings() *settings {
	policy := config.DefaultScoringConfig()
	return &settings{policy: &policy, logger: logging.NewNop()}
}

func TestResolveRecord_Inline(t *testing.T) {
	in := auditInput{
		Title:     "Erkin Koray - Cemalim (1974) | Anatolian Psych Rock",
		Tags:      []string{"erkin koray", "anatolian rock"},
		Thumbnail: "https://i.ytimg.com/vi/x/maxresdefault.jpg",
		Inline:    true,
	}

	record, err := resolveRecord(context.Background(), in, testSettings())
	require.NoError(t, err)
	assert.Equal(t, in.Title, record.Title)
	assert.Equal(t, in.Tags, record.Tags)
	require.NotNil(t, record.ThumbnailRef)
	assert.Equal(t, in.Thumbnail, *record.ThumbnailRef)
}

func TestResolveRecord_DescriptionFile(t *testing.T) {
	path := writeFile(t, "description.txt", "Line one\nLine two\n\n")

	record, err := resolveRecord(context.Background(), auditInput{DescriptionFile: path, Inline: true}, testSettings())
	require.NoError(t, err)
	assert.Equal(t, "Line one\nLine two", record.Description)
	assert.Nil(t, record.ThumbnailRef)
}

func TestResolveRecord_File(t *testing.T) {
	path := writeFile(t, "record.json", `{"video_id": "abc123", "title": "Selda - Ince Ince", "tags": ["selda"], "niche": "anatolian rock"}`)

	record, err := resolveRecord(context.Background(), auditInput{File: path}, testSettings())
	require.NoError(t, err)
	assert.Equal(t, "abc123", record.VideoID)
	assert.Equal(t, "anatolian rock", record.Niche)
}

func TestResolveRecord_Errors(t *testing.T) {
	batchFile := writeFile(t, "batch.json", `[{"title": "one"}, {"title": "two"}]`)
	descFile := writeFile(t, "desc.txt", "text")

	tests := []struct {
		name    string
		in      auditInput
		wantErr string
	}{
		{name: "no source", in: auditInput{}, wantErr: "one of --video, --file or --title is required"},
		{name: "video and file", in: auditInput{Video: "dQw4w9WgXcQ", File: batchFile}, wantErr: "mutually exclusive"},
		{name: "file and inline", in: auditInput{File: batchFile, Title: "x", Inline: true}, wantErr: "mutually exclusive"},
		{name: "batch file", in: auditInput{File: batchFile}, wantErr: "holds 2 records"},
		{name: "both descriptions", in: auditInput{Description: "a", DescriptionFile: descFile, Inline: true}, wantErr: "--description and --description-file"},
		{name: "missing description file", in: auditInput{DescriptionFile: filepath.Join(t.TempDir(), "nope.txt"), Inline: true}, wantErr: "failed to read description file"},
		{name: "bad video reference", in: auditInput{Video: "https://example.com/watch"}, wantErr: "video"},
		{name: "video without api key", in: auditInput{Video: "dQw4w9WgXcQ"}, wantErr: "api key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveRecord(context.Background(), tt.in, testSettings())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolveRecord_SourceConflictIsInvalidArgument(t *testing.T) {
	_, err := resolveRecord(context.Background(), auditInput{Video: "a", File: "b"}, testSettings())
	var argErr *types.InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "record source", argErr.Argument)
}

func TestAuditCommand_Inline(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "audit",
		"--title", "Cem Karaca - Namus Belası (1975) | Anatolian Rock Classic",
		"--tags", "cem karaca,anatolian rock,turkish rock",
		"--niche", "anatolian rock",
		"--format", "json",
		"--check-schema",
	)
	output, err := cmd.Output()
	require.NoError(t, err)
	assert.Contains(t, string(output), `"overall_score"`)
	assert.Contains(t, string(output), `"priority_actions"`)
}

func TestAuditCommand_UnsupportedFormat(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "audit", "--title", "x", "--format", "pdf")
	output, err := cmd.CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "unsupported export format")
}
