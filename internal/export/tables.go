package export

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// section is one titled table of a document
type section struct {
	title        string
	headers      []string
	rows         [][]string
	rightAligned []int // 1-based column numbers
}

// document is a heading followed by sections
type document struct {
	heading  string
	sections []section
}

func (d document) write(w io.Writer, format Format) error {
	var out string
	switch format {
	case FormatText:
		out = d.text()
	case FormatMarkdown:
		out = d.markdown()
	case FormatHTML:
		out = d.html()
	default:
		return unsupported(string(format))
	}
	_, err := io.WriteString(w, out)
	return err
}

func (d document) text() string {
	var b strings.Builder
	b.WriteString(d.heading + "\n\n")
	for _, s := range d.sections {
		tw := s.writer()
		tw.SetTitle(s.title)
		b.WriteString(tw.Render())
		b.WriteString("\n\n")
	}
	return b.String()
}

func (d document) markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.heading)
	for _, s := range d.sections {
		fmt.Fprintf(&b, "## %s\n\n", s.title)
		b.WriteString(s.writer().RenderMarkdown())
		b.WriteString("\n\n")
	}
	return b.String()
}

func (d document) html() string {
	var b strings.Builder
	heading := html.EscapeString(d.heading)
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n</head>\n<body>\n<h1>%s</h1>\n", heading, heading)
	for _, s := range d.sections {
		fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(s.title))
		b.WriteString(s.writer().RenderHTML())
		b.WriteString("\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func (s section) writer() table.Writer {
	columns := len(s.headers)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i, h := range s.headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range s.rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(s.rightAligned))
	for _, n := range s.rightAligned {
		configs = append(configs, table.ColumnConfig{Number: n, Align: text.AlignRight, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	return tw
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
