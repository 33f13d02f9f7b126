// Package export renders audit reports, channel summaries and ranked keywords
// as JSON, text tables, Markdown or HTML.
package export

import (
	"strings"

	"github.com/jonathan/seo-auditor/internal/types"
)

// Format is an export output format
type Format string

// Supported formats
const (
	FormatJSON     Format = "json"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists every supported format
var Formats = []Format{FormatJSON, FormatText, FormatMarkdown, FormatHTML}

// ParseFormat resolves a format name case-insensitively. "md" is accepted for Markdown.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "md" {
		return FormatMarkdown, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", unsupported(s)
}

func unsupported(s string) error {
	return &types.InvalidArgumentError{
		Argument: "export format",
		Value:    s,
		Message:  "unsupported export format (expected json, text, markdown or html)",
	}
}
