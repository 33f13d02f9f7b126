package keywords

import (
	"context"
	"fmt"

	"github.com/jonathan/seo-auditor/internal/config"
	"github.com/jonathan/seo-auditor/internal/types"
)

// Research defaults
const (
	DefaultSuggestionsPerSeed = 20
	DefaultMaxRanked          = 50
	DefaultSearchDepth        = 25
)

// Source supplies suggestions and search result counts for seed keywords
type Source interface {
	Suggestions(ctx context.Context, query string) ([]string, error)
	SearchResultCount(ctx context.Context, query string, maxResults int64) (int, error)
}

// Researcher expands seed keywords through a Source and ranks the result.
// A nil Source ranks the seeds and Extra candidates offline, without suggestions or hints.
type Researcher struct {
	Source             Source
	Policy             config.KeywordPolicy
	Suggest            bool     // Fetch suggestions for every seed
	Extra              []string // Candidates from other inputs such as a reference page
	SuggestionsPerSeed int
	MaxRanked          int
	SearchDepth        int64
}

// NewResearcher creates a Researcher with default limits
func NewResearcher(source Source, policy config.KeywordPolicy) *Researcher {
	return &Researcher{
		Source:             source,
		Policy:             policy,
		Suggest:            true,
		SuggestionsPerSeed: DefaultSuggestionsPerSeed,
		MaxRanked:          DefaultMaxRanked,
		SearchDepth:        DefaultSearchDepth,
	}
}

// Research collects candidates (seeds plus suggestions), derives a competition hint per seed
// from its search result count, and ranks everything against the niche.
func (r *Researcher) Research(ctx context.Context, seeds []string, niche string) (*types.KeywordResearch, error) {
	if len(seeds) == 0 && len(r.Extra) == 0 {
		return nil, &types.InvalidArgumentError{Argument: "seeds", Message: "at least one seed keyword is required"}
	}

	candidates := make([]string, 0, len(seeds)*(r.SuggestionsPerSeed+1)+len(r.Extra))
	candidates = append(candidates, seeds...)
	hints := make([]types.CompetitionHint, 0, len(seeds))

	for _, seed := range seeds {
		if r.Source == nil {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if r.Suggest {
			suggestions, err := r.Source.Suggestions(ctx, seed)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch suggestions for %q: %w", seed, err)
			}
			if r.SuggestionsPerSeed > 0 && len(suggestions) > r.SuggestionsPerSeed {
				suggestions = suggestions[:r.SuggestionsPerSeed]
			}
			candidates = append(candidates, suggestions...)
		}

		count, err := r.Source.SearchResultCount(ctx, seed, r.SearchDepth)
		if err != nil {
			return nil, fmt.Errorf("failed to search for %q: %w", seed, err)
		}
		hints = append(hints, types.CompetitionHint{Query: seed, Competition: CompetitionFromResultCount(count)})
	}

	candidates = append(candidates, r.Extra...)
	ranked := Rank(candidates, niche, hints, r.Policy)
	recommendations := Recommendations(ranked, r.Policy)
	total := len(ranked)
	if r.MaxRanked > 0 && len(ranked) > r.MaxRanked {
		ranked = ranked[:r.MaxRanked]
	}

	return &types.KeywordResearch{
		Niche:           niche,
		Seeds:           seeds,
		Hints:           hints,
		TotalCandidates: total,
		Ranked:          ranked,
		Recommendations: recommendations,
	}, nil
}
