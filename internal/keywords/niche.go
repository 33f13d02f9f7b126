// Package keywords ranks candidate search keywords and analyzes keyword usage in video titles.
package keywords

import (
	"strings"

	"github.com/jonathan/seo-auditor/internal/config"
)

// NicheTerms splits a free-text niche into lowercase terms, dropping stop-words and duplicates.
// The first occurrence of each term wins.
func NicheTerms(niche string, policy config.KeywordPolicy) []string {
	stop := make(map[string]bool, len(policy.StopWords))
	for _, w := range policy.StopWords {
		stop[strings.ToLower(w)] = true
	}

	seen := make(map[string]bool)
	terms := make([]string, 0)
	for _, field := range strings.Fields(strings.ToLower(niche)) {
		if stop[field] || seen[field] {
			continue
		}
		seen[field] = true
		terms = append(terms, field)
	}
	return terms
}

// TermsOrFallback returns NicheTerms, or the generic fallback keywords when the niche yields none.
func TermsOrFallback(niche string, policy config.KeywordPolicy) []string {
	if terms := NicheTerms(niche, policy); len(terms) > 0 {
		return terms
	}
	fallback := make([]string, len(policy.FallbackKeywords))
	copy(fallback, policy.FallbackKeywords)
	return fallback
}

// TermsIn returns the terms that occur as substrings of s (s must already be lowercase)
func TermsIn(s string, terms []string) []string {
	found := make([]string, 0)
	for _, term := range terms {
		if strings.Contains(s, term) {
			found = append(found, term)
		}
	}
	return found
}
