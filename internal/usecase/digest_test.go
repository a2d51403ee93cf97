package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"SignalScanner/internal/domain"
)

func TestBuildDigest(t *testing.T) {
	t.Parallel()

	cats := domain.Taxonomy()
	report := domain.Report{
		Company:        "Acme Corp",
		ReadinessScore: 100,
		ArticleCount:   9,
		Signals: []domain.SignalEvent{
			{Category: &cats[1], Confidence: domain.ConfidenceHigh, Score: 20,
				Source: domain.SearchResult{Title: "Acme Corp raises $50 million", Link: "https://news.example/a"}},
			{Category: &cats[3], Confidence: domain.ConfidenceLow, Score: 2,
				Source: domain.SearchResult{Title: "Acme Corp hiring spree"}},
		},
	}

	digest := BuildDigest(report, 1)
	assert.Contains(t, digest, "<b>Buying signals: Acme Corp</b>")
	assert.Contains(t, digest, "Readiness: 100/100 (9 articles, 2 signals)")
	assert.Contains(t, digest, "[High] 💰 Funding &amp; Investment")
	assert.Contains(t, digest, `<a href="https://news.example/a">Acme Corp raises $50 million</a>`)
	assert.NotContains(t, digest, "hiring spree")
}

func TestBuildDigestEscapesScrapedText(t *testing.T) {
	t.Parallel()

	cats := domain.Taxonomy()
	report := domain.Report{
		Company: "Acme_Corp <Labs>",
		Partial: true,
		Signals: []domain.SignalEvent{
			{Category: &cats[1], Confidence: domain.ConfidenceHigh, Score: 12,
				Source: domain.SearchResult{
					Title: "Acme_Corp *raises* [seed] `round` & more",
					Link:  "https://news.example/acme_corp?a=1&b=*2*",
				}},
		},
	}

	digest := BuildDigest(report, 0)
	assert.Contains(t, digest, "<b>Buying signals: Acme_Corp &lt;Labs&gt;</b>")
	assert.Contains(t, digest, "<i>partial scan</i>")
	assert.Contains(t, digest,
		`<a href="https://news.example/acme_corp?a=1&amp;b=*2*">Acme_Corp *raises* [seed] `+"`round`"+` &amp; more</a>`)
	assert.NotContains(t, digest, "<Labs>")
}
