package ports

import (
	"context"

	"SignalScanner/internal/domain"
)

// ResultSource gathers search results for a set of queries.
type ResultSource interface {
	Fetch(ctx context.Context, queries []string) ([]domain.SearchResult, error)
}

// Pacer blocks between successive outbound queries.
type Pacer interface {
	Pause(ctx context.Context) error
}

// Notifier streams report digests to Telegram or other channels.
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}
