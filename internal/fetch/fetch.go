// Package fetch reads reference pages (artist wikis, release databases, blog posts)
// and turns them into keyword candidates for research.
package fetch

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultTimeout bounds one page download.
	DefaultTimeout = 15 * time.Second
	// DefaultMaxBytes caps the size of a page body. Larger pages are rejected.
	DefaultMaxBytes = 2 << 20
	// DefaultCandidateLimit caps the number of candidates taken from one page.
	DefaultCandidateLimit = 40

	userAgent = "seo-auditor/1.0 (keyword research)"
)

// Options bounds a reference page fetch.
type Options struct {
	Timeout  time.Duration
	MaxBytes int64
	Limit    int          // candidates per page
	Client   *http.Client // nil builds a client with Timeout
}

// DefaultOptions returns the limits used by the keywords command.
func DefaultOptions() Options {
	return Options{
		Timeout:  DefaultTimeout,
		MaxBytes: DefaultMaxBytes,
		Limit:    DefaultCandidateLimit,
	}
}

// Error reports a reference page that could not be used.
type Error struct {
	URL        string
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to fetch %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to fetch %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// KeywordCandidates fetches a reference page and returns at most opts.Limit keyword candidates.
func KeywordCandidates(ctx context.Context, rawURL string, opts Options) ([]string, error) {
	page, err := FetchPage(ctx, rawURL, opts)
	if err != nil {
		return nil, err
	}
	return page.Candidates(opts.Limit), nil
}

// FetchPage downloads an HTML page and parses it with the selectors of its platform.
func FetchPage(ctx context.Context, rawURL string, opts Options) (*Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &Error{URL: rawURL, Message: "expected an http or https URL", Cause: err}
	}

	body, err := download(ctx, u.String(), opts)
	if err != nil {
		return nil, err
	}

	page, err := ParsePage(string(body), DetectPlatform(rawURL))
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to parse page", Cause: err}
	}
	page.URL = rawURL
	return page, nil
}

func download(ctx context.Context, rawURL string, opts Options) ([]byte, error) {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{URL: rawURL, StatusCode: resp.StatusCode, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	if ct := resp.Header.Get("Content-Type"); !isHTML(ct) {
		return nil, &Error{URL: rawURL, StatusCode: resp.StatusCode, Message: fmt.Sprintf("not an HTML page (%s)", ct)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, &Error{URL: rawURL, StatusCode: resp.StatusCode, Message: "failed to read page", Cause: err}
	}
	if int64(len(body)) > maxBytes {
		return nil, &Error{URL: rawURL, StatusCode: resp.StatusCode, Message: fmt.Sprintf("page exceeds %d bytes", maxBytes)}
	}
	return body, nil
}

// isHTML accepts HTML media types. A missing Content-Type is treated as HTML.
func isHTML(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
