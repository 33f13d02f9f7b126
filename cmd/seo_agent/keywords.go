package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/seo-auditor/internal/export"
	"github.com/jonathan/seo-auditor/internal/fetch"
	"github.com/jonathan/seo-auditor/internal/keywords"
	"github.com/jonathan/seo-auditor/internal/observability"
	"github.com/jonathan/seo-auditor/internal/schemas"
	"github.com/jonathan/seo-auditor/internal/youtube"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Research and rank keyword candidates",
	Long: `Ranks keyword candidates by estimated SEO value: length, niche relevance and competition.

Candidates come from the --seed keywords, their search suggestions (--suggest), the text of reference pages
(--page) and free-text files such as a list of recent titles (--text-file). With an API key the search result
count of every seed yields a competition hint that related candidates inherit.`,
	RunE: runKeywords,
}

var (
	keywordsSeeds       []string
	keywordsSuggest     bool
	keywordsPages       []string
	keywordsTextFile    string
	keywordsNiche       string
	keywordsMax         int
	keywordsRegion      string
	keywordsLanguage    string
	keywordsFormat      string
	keywordsOutput      string
	keywordsCheckSchema bool
)

func init() {
	keywordsCmd.Flags().StringSliceVarP(&keywordsSeeds, "seed", "s", nil, "Seed keywords (repeatable or comma-separated)")
	keywordsCmd.Flags().BoolVar(&keywordsSuggest, "suggest", false, "Expand every seed with search suggestions (requires an API key)")
	keywordsCmd.Flags().StringSliceVar(&keywordsPages, "page", nil, "Reference page URLs to extract candidates from")
	keywordsCmd.Flags().StringVar(&keywordsTextFile, "text-file", "", "Text file to extract candidate terms from")
	keywordsCmd.Flags().StringVar(&keywordsNiche, "niche", "", "Niche used to judge relevance")
	keywordsCmd.Flags().IntVar(&keywordsMax, "max", keywords.DefaultMaxRanked, "Maximum number of ranked keywords to print")
	keywordsCmd.Flags().StringVar(&keywordsRegion, "region", "", "Region code for suggestions and search, e.g. TR")
	keywordsCmd.Flags().StringVar(&keywordsLanguage, "language", "", "Language code for suggestions, e.g. tr")
	keywordsCmd.Flags().StringVarP(&keywordsFormat, "format", "F", "", "Output format: json, text, markdown, html")
	keywordsCmd.Flags().StringVarP(&keywordsOutput, "out", "o", "", "Write the result to this file instead of stdout")
	keywordsCmd.Flags().BoolVar(&keywordsCheckSchema, "check-schema", false, "Validate the result against schemas/keyword_research.schema.json before writing")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	if cmd.Flags().Changed("niche") {
		s.cfg.Niche = keywordsNiche
	}
	if cmd.Flags().Changed("format") {
		s.cfg.Format = keywordsFormat
	}
	format, err := export.ParseFormat(s.cfg.Format)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	extra, err := extraCandidates(cmd, s)
	if err != nil {
		return err
	}

	researcher := keywords.NewResearcher(nil, s.policy.Keywords)
	researcher.Suggest = keywordsSuggest
	researcher.Extra = extra
	researcher.MaxRanked = keywordsMax

	// Without an API key the candidates are ranked offline
	if keywordsSuggest || s.cfg.APIKey != "" {
		source, err := youtube.New(ctx, youtube.Config{
			APIKey:   s.cfg.APIKey,
			Language: keywordsLanguage,
			Region:   keywordsRegion,
			Logger:   s.logger,
		})
		if err != nil {
			return err
		}
		researcher.Source = source
	}

	research, err := researcher.Research(ctx, keywordsSeeds, s.cfg.Niche)
	if err != nil {
		return err
	}
	s.logger.Debug("keyword research complete",
		zap.Int("candidates", research.TotalCandidates),
		zap.Int("hints", len(research.Hints)))

	if keywordsCheckSchema {
		if err := checkSchema(schemas.KeywordResearchSchema, research); err != nil {
			return err
		}
	}

	if s.cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintRankedKeywords(research)
	}

	return writeOutput(cmd.OutOrStdout(), keywordsOutput, func(w io.Writer) error {
		return export.RenderKeywords(w, research, format)
	})
}

// extraCandidates collects candidates from reference pages and the text file.
// An unreachable page is logged and skipped.
func extraCandidates(cmd *cobra.Command, s *settings) ([]string, error) {
	var extra []string

	for _, page := range keywordsPages {
		candidates, err := fetch.KeywordCandidates(cmd.Context(), page, fetch.DefaultOptions())
		if err != nil {
			s.logger.Warn("skipping reference page", zap.String("url", page), zap.Error(err))
			continue
		}
		s.logger.Debug("reference page candidates", zap.String("url", page), zap.Int("count", len(candidates)))
		extra = append(extra, candidates...)
	}

	if keywordsTextFile != "" {
		content, err := os.ReadFile(keywordsTextFile)
		if err != nil {
			return nil, err
		}
		terms := keywords.ExtractTerms(string(content), keywords.DefaultMinTermLength)
		if len(terms) > fetch.DefaultCandidateLimit {
			terms = terms[:fetch.DefaultCandidateLimit]
		}
		extra = append(extra, terms...)
	}

	return extra, nil
}
