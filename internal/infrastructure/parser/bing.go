package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"SignalScanner/internal/domain"
	"SignalScanner/internal/scanner"
)

const bingNewsURL = "https://www.bing.com/news/search"

var (
	bingCardExpr     = regexp.MustCompile(`(?i)news-card|card-with-cluster`)
	bingFallbackExpr = regexp.MustCompile(`(?i)t_s|newsitem`)
	bingSnippetExpr  = regexp.MustCompile(`(?i)snippet|desc`)
	bingTimeExpr     = regexp.MustCompile(`(?i)time|date|ago`)
)

// Bing scrapes Bing News restricted to the past month.
type Bing struct {
	http     *HTTPClient
	endpoint string
	logger   *slog.Logger
}

var _ scanner.Backend = (*Bing)(nil)

// NewBing targets endpoint, or Bing News when empty.
func NewBing(client *HTTPClient, endpoint string, logger *slog.Logger) *Bing {
	if endpoint == "" {
		endpoint = bingNewsURL
	}
	return &Bing{http: client, endpoint: endpoint, logger: orDiscard(logger)}
}

// Name identifies the backend inside the registry.
func (b *Bing) Name() string {
	return "bing"
}

// Search fetches the news page and extracts cards.
func (b *Bing) Search(ctx context.Context, query string) []domain.SearchResult {
	return search(ctx, b.Name(), b.logger, query, b.extract)
}

func (b *Bing) extract(ctx context.Context, query string) ([]domain.SearchResult, error) {
	pageURL, err := withQuery(b.endpoint, url.Values{"q": {query}, "freshness": {"Month"}})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	doc, err := b.http.Document(req)
	if err != nil {
		return nil, err
	}
	return parseBing(doc), nil
}

func parseBing(doc *goquery.Document) []domain.SearchResult {
	cards := findByClass(doc.Selection, "div", bingCardExpr)
	if cards.Length() == 0 {
		cards = doc.Find("div[data-eventid]")
	}
	if cards.Length() == 0 {
		cards = findByClass(doc.Selection, "div", bingFallbackExpr)
	}

	var results []domain.SearchResult
	firstN(cards).Each(func(_ int, card *goquery.Selection) {
		titleEl := card.Find("a, h2, h3").First()
		link, _ := titleEl.Attr("href")

		snippetEl := card.Find("p").First()
		if snippetEl.Length() == 0 {
			snippetEl = findByClass(card, "div", bingSnippetExpr)
		}

		results = append(results, domain.SearchResult{
			Title:     text(titleEl),
			Snippet:   text(snippetEl),
			Link:      link,
			Published: text(findByClass(card, "span", bingTimeExpr)),
		})
	})
	return results
}

// withQuery merges params into base's query string.
func withQuery(base string, params url.Values) (string, error) {
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %s: %w", base, err)
	}

	query := parsed.Query()
	for key, values := range params {
		for _, v := range values {
			query.Set(key, v)
		}
	}
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}
