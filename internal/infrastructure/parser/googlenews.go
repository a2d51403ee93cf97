package parser

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"SignalScanner/internal/domain"
	"SignalScanner/internal/scanner"
)

const googleNewsRSSURL = "https://news.google.com/rss/search"

// GoogleNews reads the Google News RSS search feed.
type GoogleNews struct {
	http     *HTTPClient
	endpoint string
	logger   *slog.Logger
	policy   *bluemonday.Policy
}

var _ scanner.Backend = (*GoogleNews)(nil)

// NewGoogleNews targets endpoint, or the public RSS search feed when empty.
func NewGoogleNews(client *HTTPClient, endpoint string, logger *slog.Logger) *GoogleNews {
	if endpoint == "" {
		endpoint = googleNewsRSSURL
	}
	return &GoogleNews{
		http:     client,
		endpoint: endpoint,
		logger:   orDiscard(logger),
		policy:   bluemonday.StrictPolicy(),
	}
}

// Name identifies the backend inside the registry.
func (g *GoogleNews) Name() string {
	return "googlenews"
}

// Search fetches and parses the RSS feed for query.
func (g *GoogleNews) Search(ctx context.Context, query string) []domain.SearchResult {
	return search(ctx, g.Name(), g.logger, query, g.extract)
}

func (g *GoogleNews) extract(ctx context.Context, query string) ([]domain.SearchResult, error) {
	feedURL, err := withQuery(g.endpoint, url.Values{"q": {query + " when:30d"}, "hl": {"en-US"}, "gl": {"US"}, "ceid": {"US:en"}})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(feed.Items))
	for _, item := range feed.Items {
		if len(results) == scanner.MaxResults {
			break
		}
		results = append(results, domain.SearchResult{
			Title:     g.plain(item.Title),
			Snippet:   g.plain(item.Description),
			Link:      item.Link,
			Published: item.Published,
		})
	}
	return results, nil
}

// plain strips markup; the strict policy escapes entities, so unescape afterwards.
func (g *GoogleNews) plain(raw string) string {
	return cleanText(html.UnescapeString(g.policy.Sanitize(raw)))
}
