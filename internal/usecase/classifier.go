package usecase

import (
	"sort"
	"strings"

	"SignalScanner/internal/domain"
)

const (
	dedupKeyLength   = 50
	snippetLimit     = 200
	maxKeywordsShown = 3
	truncationMarker = "..."
)

// Classifier maps search results onto the signal taxonomy.
type Classifier struct {
	categories []domain.SignalCategory
}

// NewClassifier uses the built-in taxonomy when categories is empty.
func NewClassifier(categories []domain.SignalCategory) *Classifier {
	if len(categories) == 0 {
		categories = domain.Taxonomy()
	}
	return &Classifier{categories: categories}
}

type categoryMatch struct {
	category *domain.SignalCategory
	keywords []string
	score    int
}

// Classify filters, deduplicates and labels results for company.
// Events are ordered by score, highest first; equal scores keep input order.
func (c *Classifier) Classify(results []domain.SearchResult, company string) []domain.SignalEvent {
	tokens := strings.Fields(strings.ToLower(company))
	seen := make(map[string]struct{}, len(results))
	events := make([]domain.SignalEvent, 0, len(results))

	for _, res := range results {
		text := strings.ToLower(res.Title + " " + res.Snippet)
		if !mentionsAny(text, tokens) {
			continue
		}

		key := dedupKey(res.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		best, ok := c.bestMatch(text)
		if !ok {
			continue
		}

		events = append(events, domain.SignalEvent{
			Category:   best.category,
			Confidence: domain.ConfidenceFor(best.score),
			Keywords:   firstKeywords(best.keywords),
			Score:      best.score,
			Snippet:    truncate(res.Snippet, snippetLimit),
			Source:     res,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Score > events[j].Score
	})
	return events
}

// bestMatch scans categories in definition order; only a strictly higher score
// replaces the current winner, so ties go to the earlier category.
func (c *Classifier) bestMatch(text string) (categoryMatch, bool) {
	var (
		best  categoryMatch
		found bool
	)

	for i := range c.categories {
		cat := &c.categories[i]
		var matched []string
		for _, kw := range cat.Keywords {
			if strings.Contains(text, kw) {
				matched = append(matched, kw)
			}
		}
		if len(matched) == 0 {
			continue
		}

		score := cat.Weight * len(matched)
		if !found || score > best.score {
			best = categoryMatch{category: cat, keywords: matched, score: score}
			found = true
		}
	}

	return best, found
}

func mentionsAny(text string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}

func dedupKey(title string) string {
	runes := []rune(title)
	if len(runes) > dedupKeyLength {
		runes = runes[:dedupKeyLength]
	}
	return strings.ToLower(string(runes))
}

func firstKeywords(matched []string) []string {
	if len(matched) > maxKeywordsShown {
		matched = matched[:maxKeywordsShown]
	}
	out := make([]string, len(matched))
	copy(out, matched)
	return out
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + truncationMarker
}
