package domain

import "time"

// SearchResult is a normalized news mention returned by a search backend.
type SearchResult struct {
	Title     string
	Snippet   string
	Link      string
	Published string
	Backend   string
}

// Confidence buckets a signal's numeric score.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// ConfidenceFor maps a winning category score to its band.
func ConfidenceFor(score int) Confidence {
	switch {
	case score >= 8:
		return ConfidenceHigh
	case score >= 4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Weight is the multiplier applied by the readiness scorer.
func (c Confidence) Weight() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	default:
		return 0
	}
}

// Color returns the display color token for the band.
func (c Confidence) Color() string {
	switch c {
	case ConfidenceHigh:
		return "#00ff88"
	case ConfidenceMedium:
		return "#ffcc00"
	default:
		return "#ff6b6b"
	}
}

// SignalEvent is a search result classified into a single category.
type SignalEvent struct {
	Category   *SignalCategory
	Confidence Confidence
	Keywords   []string
	Score      int
	Snippet    string
	Source     SearchResult
}

// Report is the outcome of one pipeline run for a company.
type Report struct {
	RunID          string
	Company        string
	Signals        []SignalEvent
	ArticleCount   int
	ReadinessScore int
	GeneratedAt    time.Time
	// Partial is set when the run deadline expired before every query was tried.
	Partial bool
}

// TopSignals returns at most limit signals; limit <= 0 means all of them.
func (r Report) TopSignals(limit int) []SignalEvent {
	if limit <= 0 || limit >= len(r.Signals) {
		return r.Signals
	}
	return r.Signals[:limit]
}
