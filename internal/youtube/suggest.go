package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// jsonpPrefix wraps the suggestion payload returned for client=youtube
const jsonpPrefix = "window.google.ac.h("

// Suggestions returns search autocomplete suggestions for query.
func (s *Source) Suggestions(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("client", "youtube")
	params.Set("ds", "yt")
	params.Set("q", query)
	if s.language != "" {
		params.Set("hl", s.language)
	}
	if s.region != "" {
		params.Set("gl", s.region)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.suggestURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, sourceError("suggest", query, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, sourceError("suggest", query, fmt.Errorf("HTTP status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, sourceError("suggest", query, err)
	}

	suggestions, err := parseSuggestions(body)
	if err != nil {
		return nil, sourceError("suggest", query, err)
	}
	s.logger.Debug("fetched suggestions", zap.String("query", query), zap.Int("count", len(suggestions)))
	return suggestions, nil
}

// parseSuggestions decodes ["query", [["s1", ...], ["s2", ...]], ...], optionally
// wrapped in a JSONP callback. Entries may also be bare strings.
func parseSuggestions(body []byte) ([]string, error) {
	text := strings.TrimSpace(string(body))
	if strings.HasPrefix(text, jsonpPrefix) {
		text = strings.TrimSuffix(strings.TrimPrefix(text, jsonpPrefix), ")")
	}

	var payload []json.RawMessage
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion payload: %w", err)
	}
	if len(payload) < 2 {
		return nil, fmt.Errorf("failed to parse suggestion payload: expected at least 2 elements, got %d", len(payload))
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(payload[1], &entries); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion list: %w", err)
	}

	suggestions := make([]string, 0, len(entries))
	for _, entry := range entries {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			suggestions = append(suggestions, s)
			continue
		}
		var tuple []json.RawMessage
		if err := json.Unmarshal(entry, &tuple); err != nil || len(tuple) == 0 {
			continue
		}
		if err := json.Unmarshal(tuple[0], &s); err == nil {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions, nil
}
