// ABOUTME: Relevance-scored full-text search over in-memory journal entries
// ABOUTME: Pure and stateless per call; no I/O and no persisted index

package search

import (
	"sort"
	"strings"

	"github.com/harper/murmure/internal/models"
)

// Field weights. A content hit counts double a preview hit; a date hit
// counts half. Unmatched fields do not dilute the average.
const (
	weightContent = 2.0
	weightPreview = 1.0
	weightDate    = 0.5
)

// minTokenLength is the shortest token considered in whole-word mode.
const minTokenLength = 3

// snippetLength caps the highlighted content excerpt, in runes.
const snippetLength = 100

// Config selects the fields, matching mode, and thresholds for a search.
// All fields are meaningful; use DefaultConfig as a base.
type Config struct {
	SearchInContent bool
	SearchInPreview bool
	SearchInDate    bool
	CaseSensitive   bool
	MinScore        float64
	MinQueryLength  int
	WholeWordsOnly  bool
}

// DefaultConfig returns the configuration the app ships with.
func DefaultConfig() Config {
	return Config{
		SearchInContent: true,
		SearchInPreview: true,
		SearchInDate:    true,
		MinScore:        0.3,
		MinQueryLength:  2,
	}
}

// Reason explains why a query is not searchable.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonTooShort        Reason = "too_short"
	ReasonNeedsWholeWords Reason = "needs_whole_words"
)

// Result is one ranked, highlighted hit.
type Result struct {
	Entry         *models.Entry
	Score         float64
	MatchedFields []string
	Segments      []Segment
	Highlighted   string
}

// Stats is the companion projection driving UI messaging without
// re-running the search.
type Stats struct {
	TotalResults  int
	IsActive      bool
	IsValidQuery  bool
	InvalidReason Reason
	AverageScore  float64
}

// Validate gates a query without running the search. A query is
// searchable when its trimmed length meets MinQueryLength and, in
// whole-word mode, it contains at least one usable token.
func (c Config) Validate(query string) (bool, Reason) {
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < c.MinQueryLength {
		return false, ReasonTooShort
	}
	if c.WholeWordsOnly && len(queryTokens(Normalize(trimmed, c.CaseSensitive))) == 0 {
		return false, ReasonNeedsWholeWords
	}
	return true, ReasonNone
}

// Search ranks entries against a free-text query. Entries scoring below
// MinScore are excluded; survivors are sorted by score descending with
// most recently updated first on ties.
func Search(entries []*models.Entry, query string, cfg Config) ([]Result, Stats) {
	stats := Stats{IsActive: strings.TrimSpace(query) != ""}
	if !stats.IsActive {
		return nil, stats
	}

	valid, reason := cfg.Validate(query)
	stats.IsValidQuery = valid
	stats.InvalidReason = reason
	if !valid {
		return nil, stats
	}

	normQuery := Normalize(query, cfg.CaseSensitive)
	tokens := queryTokens(normQuery)

	results := make([]Result, 0, len(entries))
	total := 0.0
	for _, e := range entries {
		r, ok := scoreEntry(e, normQuery, tokens, cfg)
		if !ok || r.Score < cfg.MinScore {
			continue
		}
		r.Segments = Highlight(snippetFor(e, r.MatchedFields), query, cfg)
		r.Highlighted = Render(r.Segments)
		results = append(results, r)
		total += r.Score
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Entry.UpdatedAt.After(results[j].Entry.UpdatedAt)
	})

	stats.TotalResults = len(results)
	if len(results) > 0 {
		stats.AverageScore = total / float64(len(results))
	}
	return results, stats
}

// scoreEntry combines per-field scores by weighted average over the
// fields that matched.
func scoreEntry(e *models.Entry, normQuery string, tokens []string, cfg Config) (Result, bool) {
	type fieldHit struct {
		name   string
		weight float64
		text   string
	}

	fields := make([]fieldHit, 0, 3)
	if cfg.SearchInContent {
		fields = append(fields, fieldHit{"content", weightContent, e.Content})
	}
	if cfg.SearchInPreview {
		fields = append(fields, fieldHit{"preview", weightPreview, e.PreviewText})
	}
	if cfg.SearchInDate {
		fields = append(fields, fieldHit{"date", weightDate, e.Date})
	}

	weightedSum := 0.0
	matchedWeight := 0.0
	matched := make([]string, 0, 3)
	for _, f := range fields {
		candidate := Normalize(f.text, cfg.CaseSensitive)
		if candidate == "" {
			continue
		}
		var score float64
		if cfg.WholeWordsOnly {
			score = wholeWordScore(tokens, candidate)
		} else {
			score = substringScore(normQuery, candidate)
		}
		if score <= 0 {
			continue
		}
		weightedSum += f.weight * score
		matchedWeight += f.weight
		matched = append(matched, f.name)
	}

	if matchedWeight == 0 {
		return Result{}, false
	}
	return Result{
		Entry:         e,
		Score:         weightedSum / matchedWeight,
		MatchedFields: matched,
	}, true
}

// queryTokens splits a normalized query into whole-word tokens, keeping
// only those long enough to be meaningful.
func queryTokens(normQuery string) []string {
	var tokens []string
	for _, t := range strings.Fields(normQuery) {
		if len([]rune(t)) >= minTokenLength {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// wholeWordScore credits each query token against the candidate's own
// tokens: exact match 1.0, token prefix 0.7, substring within a token
// 0.3. An exact-match ratio bonus rewards fully precise queries.
func wholeWordScore(tokens []string, candidate string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	words := strings.Fields(candidate)

	sum := 0.0
	exact := 0
	for _, tok := range tokens {
		best := 0.0
		for _, w := range words {
			switch {
			case w == tok:
				best = 1.0
			case strings.HasPrefix(w, tok):
				if best < 0.7 {
					best = 0.7
				}
			case strings.Contains(w, tok):
				if best < 0.3 {
					best = 0.3
				}
			}
			if best == 1.0 {
				break
			}
		}
		if best == 1.0 {
			exact++
		}
		sum += best
	}

	n := float64(len(tokens))
	score := sum/n + (float64(exact)/n)*0.5
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// substringScore ranks the query against the candidate text: equality,
// prefix, containment (word-boundary containment scores higher), then a
// word-overlap fallback.
func substringScore(query, candidate string) float64 {
	if query == "" {
		return 0
	}
	if candidate == query {
		return 1.0
	}
	if strings.HasPrefix(candidate, query) {
		return 0.9
	}
	if idx := strings.Index(candidate, query); idx >= 0 {
		if idx > 0 && candidate[idx-1] == ' ' {
			return 0.8
		}
		return 0.7
	}

	queryWords := strings.Fields(query)
	if len(queryWords) == 0 {
		return 0
	}
	candidateWords := strings.Fields(candidate)
	overlap := 0
	for _, qw := range queryWords {
		for _, cw := range candidateWords {
			if strings.Contains(cw, qw) || strings.Contains(qw, cw) {
				overlap++
				break
			}
		}
	}
	return float64(overlap) / float64(len(queryWords)) * 0.6
}

// snippetFor picks the text to highlight: a truncated content excerpt
// when content matched, the preview text otherwise.
func snippetFor(e *models.Entry, matchedFields []string) string {
	for _, f := range matchedFields {
		if f == "content" {
			return snippet(e.Content)
		}
	}
	return e.PreviewText
}

// snippet renders a single-line excerpt of content capped at
// snippetLength runes.
func snippet(content string) string {
	line := strings.Join(strings.Fields(content), " ")
	runes := []rune(line)
	if len(runes) <= snippetLength {
		return line
	}
	return strings.TrimRight(string(runes[:snippetLength]), " ") + "…"
}
