package types

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  MetadataRecord
		wantErr bool
	}{
		{
			name:   "empty record is valid",
			record: MetadataRecord{},
		},
		{
			name: "typical record",
			record: MetadataRecord{
				VideoID:      "dQw4w9WgXcQ",
				Title:        "Anatolian Rock Classics",
				Description:  "A long description",
				Tags:         []string{"anatolian rock", "turkish psych"},
				ThumbnailRef: StringPtr("https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"),
			},
		},
		{
			name:    "tag too long",
			record:  MetadataRecord{Tags: []string{strings.Repeat("a", 101)}},
			wantErr: true,
		},
		{
			name:    "video id too long",
			record:  MetadataRecord{VideoID: strings.Repeat("x", 65)},
			wantErr: true,
		},
		{
			name:    "too many tags",
			record:  MetadataRecord{Tags: make([]string, 501)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				require.Error(t, err)
				var vErr *ValidationError
				assert.True(t, errors.As(err, &vErr))
				assert.Contains(t, err.Error(), "invalid metadata record")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMetadataRecord_Thumbnail(t *testing.T) {
	r := MetadataRecord{}
	assert.Equal(t, "", r.Thumbnail())

	r.ThumbnailRef = StringPtr("thumb.jpg")
	assert.Equal(t, "thumb.jpg", r.Thumbnail())
}

func TestMetadataRecord_JSONOptionalThumbnail(t *testing.T) {
	var r MetadataRecord
	err := json.Unmarshal([]byte(`{"title":"Song","description":"","tags":["a"]}`), &r)
	require.NoError(t, err)

	assert.Equal(t, "Song", r.Title)
	assert.Nil(t, r.ThumbnailRef)
	assert.Equal(t, []string{"a"}, r.Tags)
}

func TestInvalidArgumentError_Message(t *testing.T) {
	err := &InvalidArgumentError{Argument: "format", Value: "pdf", Message: "unsupported export format"}
	assert.Equal(t, `invalid format "pdf": unsupported export format`, err.Error())

	err = &InvalidArgumentError{Argument: "weights", Message: "must sum to 1.0"}
	assert.Equal(t, "invalid weights: must sum to 1.0", err.Error())
}
