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

const duckDuckGoURL = "https://html.duckduckgo.com/html/"

var (
	ddgResultExpr  = regexp.MustCompile(`(?i)result__body|result `)
	ddgTitleExpr   = regexp.MustCompile(`(?i)result__a`)
	ddgSnippetExpr = regexp.MustCompile(`(?i)result__snippet`)
)

// DuckDuckGo scrapes the HTML-only DuckDuckGo endpoint.
type DuckDuckGo struct {
	http     *HTTPClient
	endpoint string
	logger   *slog.Logger
}

var _ scanner.Backend = (*DuckDuckGo)(nil)

// NewDuckDuckGo targets endpoint, or the public HTML endpoint when empty.
func NewDuckDuckGo(client *HTTPClient, endpoint string, logger *slog.Logger) *DuckDuckGo {
	if endpoint == "" {
		endpoint = duckDuckGoURL
	}
	return &DuckDuckGo{http: client, endpoint: endpoint, logger: orDiscard(logger)}
}

// Name identifies the backend inside the registry.
func (d *DuckDuckGo) Name() string {
	return "duckduckgo"
}

// Search posts the query form and extracts result blocks.
func (d *DuckDuckGo) Search(ctx context.Context, query string) []domain.SearchResult {
	return search(ctx, d.Name(), d.logger, query, d.extract)
}

func (d *DuckDuckGo) extract(ctx context.Context, query string) ([]domain.SearchResult, error) {
	form := url.Values{}
	form.Set("q", query)
	form.Set("b", "")
	form.Set("kl", "us-en")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	doc, err := d.http.Document(req)
	if err != nil {
		return nil, err
	}
	return parseDuckDuckGo(doc), nil
}

func parseDuckDuckGo(doc *goquery.Document) []domain.SearchResult {
	var results []domain.SearchResult
	firstN(findByClass(doc.Selection, "div", ddgResultExpr)).Each(func(_ int, div *goquery.Selection) {
		titleEl := findByClass(div, "a", ddgTitleExpr).First()
		link, _ := titleEl.Attr("href")

		results = append(results, domain.SearchResult{
			Title:   text(titleEl),
			Snippet: text(findByClass(div, "a", ddgSnippetExpr)),
			Link:    link,
		})
	})
	return results
}
