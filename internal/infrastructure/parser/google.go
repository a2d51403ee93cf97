package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"SignalScanner/internal/domain"
	"SignalScanner/internal/scanner"
)

const googleSearchURL = "https://www.google.com/search"

var (
	googleArticleExpr  = regexp.MustCompile(`(?i)SoaBEf|WlydOe|ftSUBd|nChh6e`)
	googleFallbackExpr = regexp.MustCompile(`(?i)dbsr|g `)
	googleSnippetExpr  = regexp.MustCompile(`(?i)Y3v8qd|st|s3v9rd`)
	googleTimeExpr     = regexp.MustCompile(`(?i)time|WG9SHc`)
)

// Google scrapes the news tab of Google Search for the past month.
type Google struct {
	http     *HTTPClient
	endpoint string
	logger   *slog.Logger
}

var _ scanner.Backend = (*Google)(nil)

// NewGoogle targets endpoint, or Google Search when empty.
func NewGoogle(client *HTTPClient, endpoint string, logger *slog.Logger) *Google {
	if endpoint == "" {
		endpoint = googleSearchURL
	}
	return &Google{http: client, endpoint: endpoint, logger: orDiscard(logger)}
}

// Name identifies the backend inside the registry.
func (g *Google) Name() string {
	return "google"
}

// Search fetches the news results page and extracts article blocks.
func (g *Google) Search(ctx context.Context, query string) []domain.SearchResult {
	return search(ctx, g.Name(), g.logger, query, g.extract)
}

func (g *Google) extract(ctx context.Context, query string) ([]domain.SearchResult, error) {
	pageURL, err := withQuery(g.endpoint, url.Values{"q": {query}, "tbm": {"nws"}, "tbs": {"qdr:m"}})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	doc, err := g.http.Document(req)
	if err != nil {
		return nil, err
	}
	return parseGoogle(doc), nil
}

func parseGoogle(doc *goquery.Document) []domain.SearchResult {
	articles := findByClass(doc.Selection, "div", googleArticleExpr)
	if articles.Length() == 0 {
		articles = doc.Find("article")
	}
	if articles.Length() == 0 {
		articles = findByClass(doc.Selection, "div", googleFallbackExpr)
	}

	var results []domain.SearchResult
	firstN(articles).Each(func(_ int, art *goquery.Selection) {
		link, _ := art.Find("a").First().Attr("href")
		if !strings.HasPrefix(link, "http") {
			link = ""
		}

		results = append(results, domain.SearchResult{
			Title:     text(art.Find("h3, h4, a")),
			Snippet:   text(findByClass(art, "div", googleSnippetExpr)),
			Link:      link,
			Published: text(findByClass(art, "time, span", googleTimeExpr)),
		})
	})
	return results
}
