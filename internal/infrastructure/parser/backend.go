package parser

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"SignalScanner/internal/domain"
	"SignalScanner/internal/infrastructure/metrics"
	"SignalScanner/internal/logging"
	"SignalScanner/internal/scanner"
)

// extractFunc performs one provider request and returns raw results.
type extractFunc func(ctx context.Context, query string) ([]domain.SearchResult, error)

// search runs extract and absorbs every failure into an empty result.
func search(ctx context.Context, name string, logger *slog.Logger, query string, extract extractFunc) []domain.SearchResult {
	start := time.Now()
	results, err := extract(ctx, query)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		metrics.RecordBackend(name, metrics.OutcomeError, elapsed)
		logger.Warn("backend search failed", "backend", name, "query", query, "error", err)
		return nil
	}

	accepted := make([]domain.SearchResult, 0, len(results))
	for _, res := range results {
		if !scanner.Accept(res.Title) {
			continue
		}
		res.Backend = name
		accepted = append(accepted, res)
		if len(accepted) == scanner.MaxResults {
			break
		}
	}

	outcome := metrics.OutcomeHit
	if len(accepted) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordBackend(name, outcome, elapsed)
	logger.Debug("backend search done", "backend", name, "query", query, "results", len(accepted))
	return accepted
}

// findByClass selects tag elements whose class attribute matches expr.
func findByClass(sel *goquery.Selection, tag string, expr *regexp.Regexp) *goquery.Selection {
	return sel.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, ok := s.Attr("class")
		return ok && expr.MatchString(class)
	})
}

// firstN limits a selection to the per-call cap.
func firstN(sel *goquery.Selection) *goquery.Selection {
	if sel.Length() > scanner.MaxResults {
		return sel.Slice(0, scanner.MaxResults)
	}
	return sel
}

func text(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return cleanText(sel.First().Text())
}

func cleanText(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return logging.Discard()
	}
	return logger
}
