package scanner

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"SignalScanner/internal/domain"
)

// MaxResults caps how many results a backend returns for one query.
const MaxResults = 8

// minTitleLength is exclusive: titles must be longer than this after trimming.
const minTitleLength = 10

// Backend captures a single search provider (DuckDuckGo, Bing, etc.).
// Search never fails: transport and parse errors yield an empty slice.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string) []domain.SearchResult
}

// Accept reports whether a scraped title is long enough to keep.
func Accept(title string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(title)) > minTitleLength
}

// Registry keeps a mapping from backend names to their implementations.
type Registry struct {
	backends map[string]Backend
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{backends: map[string]Backend{}}
}

// Register adds or replaces a backend implementation.
func (r *Registry) Register(backend Backend) {
	if r.backends == nil {
		r.backends = map[string]Backend{}
	}
	r.backends[backend.Name()] = backend
}

// Resolve returns a backend by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Backend, error) {
	if backend, ok := r.backends[name]; ok {
		return backend, nil
	}
	return nil, fmt.Errorf("backend %s is not registered", name)
}

// Ordered resolves names into a priority-ordered backend list.
func (r *Registry) Ordered(names []string) ([]Backend, error) {
	ordered := make([]Backend, 0, len(names))
	for _, name := range names {
		backend, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		ordered = append(ordered, backend)
	}
	return ordered, nil
}
