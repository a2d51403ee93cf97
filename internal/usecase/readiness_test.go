package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"SignalScanner/internal/domain"
)

func event(cat *domain.SignalCategory, score int) domain.SignalEvent {
	return domain.SignalEvent{Category: cat, Score: score, Confidence: domain.ConfidenceFor(score)}
}

func TestReadinessScore(t *testing.T) {
	t.Parallel()

	cats := domain.Taxonomy()
	launch, funding, hiring := &cats[0], &cats[1], &cats[3]

	tests := map[string]struct {
		events []domain.SignalEvent
		want   int
	}{
		"no signals": {
			events: nil,
			want:   0,
		},
		"single low signal still saturates": {
			events: []domain.SignalEvent{event(hiring, 2)},
			want:   100,
		},
		"zero raw score keeps only the bonus": {
			events: []domain.SignalEvent{event(hiring, 0)},
			want:   5,
		},
		"bonus counts distinct categories": {
			events: []domain.SignalEvent{event(launch, 0), event(funding, 0), event(funding, 0)},
			want:   10,
		},
		"clamped at 100": {
			events: []domain.SignalEvent{event(launch, 9), event(funding, 20), event(hiring, 4)},
			want:   100,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ReadinessScore(tc.events))
		})
	}
}
