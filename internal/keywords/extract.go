package keywords

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMinTermLength is the shortest word ExtractTerms keeps when minLen is not positive
const DefaultMinTermLength = 4

// ExtractTerms pulls candidate terms out of free text such as recent video titles or a reference page.
// Words are runs of letters, digits and underscores of at least minLen runes, lowercased.
// The result is ordered by frequency (descending), ties by first appearance.
func ExtractTerms(text string, minLen int) []string {
	if minLen <= 0 {
		minLen = DefaultMinTermLength
	}

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, w := range words {
		if utf8.RuneCountInString(w) < minLen {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}
