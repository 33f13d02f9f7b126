package fetch

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/seo-auditor/internal/keywords"
)

// Elements that never carry page content
const chromeSelector = "nav, footer, header, script, style, noscript, iframe, .ad, .ads, .advertisement, .sidebar, .popup"

// Page is the keyword-bearing content of a reference page.
type Page struct {
	URL             string
	Title           string
	MetaDescription string
	MetaKeywords    []string
	Text            string
}

// ParsePage extracts the title, meta tags and main text of an HTML document.
// Main text comes from the first content selector of the platform that matches,
// or the whole body, after page chrome and platform noise are removed.
func ParsePage(html string, platform Platform) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	page := &Page{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && page.Title == "" {
		page.Title = strings.TrimSpace(og)
	}
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		page.MetaDescription = strings.TrimSpace(desc)
	}
	if kw, ok := doc.Find(`meta[name="keywords"]`).Attr("content"); ok {
		for _, k := range strings.Split(kw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				page.MetaKeywords = append(page.MetaKeywords, k)
			}
		}
	}

	doc.Find(chromeSelector).Remove()
	doc.Find(strings.Join(PlatformNoiseSelectors(platform), ", ")).Remove()

	content := doc.Find("body")
	for _, selector := range PlatformContentSelectors(platform) {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	page.Text = compactLines(content.Text())

	return page, nil
}

// Candidates returns the page's keyword candidates: meta keywords first, then
// frequent terms from the title, meta description and body text. At most limit
// candidates are returned; limit <= 0 uses DefaultCandidateLimit.
func (p *Page) Candidates(limit int) []string {
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}

	seen := make(map[string]bool)
	out := make([]string, 0, limit)
	add := func(term string) {
		key := strings.ToLower(term)
		if len(out) >= limit || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, term)
	}

	for _, k := range p.MetaKeywords {
		add(k)
	}
	text := strings.Join([]string{p.Title, p.MetaDescription, p.Text}, "\n")
	for _, term := range keywords.ExtractTerms(text, keywords.DefaultMinTermLength) {
		add(term)
	}
	return out
}

// compactLines collapses runs of whitespace inside each line and drops blank lines
func compactLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
