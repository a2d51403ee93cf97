package parser

import (
	"context"
	"fmt"
	"log/slog"

	"SignalScanner/internal/domain"
	"SignalScanner/internal/ports"
	"SignalScanner/internal/scanner"
)

// FallbackSource implements ResultSource by trying backends in priority order.
type FallbackSource struct {
	backends []scanner.Backend
	pacer    ports.Pacer
	logger   *slog.Logger
}

var _ ports.ResultSource = (*FallbackSource)(nil)

// NewFallbackSource wires ordered backends with a pacing strategy; pacer may be nil.
func NewFallbackSource(backends []scanner.Backend, pacer ports.Pacer, log *slog.Logger) *FallbackSource {
	return &FallbackSource{
		backends: backends,
		pacer:    pacer,
		logger:   log,
	}
}

// Fetch runs every query against the first backend that yields results.
// When ctx ends early the results gathered so far are returned with ctx's error.
func (s *FallbackSource) Fetch(ctx context.Context, queries []string) ([]domain.SearchResult, error) {
	if len(s.backends) == 0 {
		return nil, fmt.Errorf("no search backends configured")
	}

	s.debug("fetch queries", "queries", len(queries), "backends", len(s.backends))

	var aggregated []domain.SearchResult
	for i, query := range queries {
		if i > 0 && s.pacer != nil {
			if err := s.pacer.Pause(ctx); err != nil {
				return aggregated, fmt.Errorf("pause before query %d: %w", i, err)
			}
		}
		if err := ctx.Err(); err != nil {
			return aggregated, fmt.Errorf("query %q: %w", query, err)
		}

		results := s.fetchOne(ctx, query)
		aggregated = append(aggregated, results...)

		// Backends absorb a context timeout as an empty answer.
		if err := ctx.Err(); err != nil {
			return aggregated, fmt.Errorf("query %q cut short: %w", query, err)
		}
	}

	s.debug("fallback source done", "total_results", len(aggregated))
	return aggregated, nil
}

func (s *FallbackSource) fetchOne(ctx context.Context, query string) []domain.SearchResult {
	for _, backend := range s.backends {
		if ctx.Err() != nil {
			return nil
		}
		results := backend.Search(ctx, query)
		if len(results) > 0 {
			s.debug("query answered", "query", query, "backend", backend.Name(), "count", len(results))
			return results
		}
		s.debug("backend empty, falling back", "query", query, "backend", backend.Name())
	}

	s.debug("no backend answered", "query", query)
	return nil
}

func (s *FallbackSource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
