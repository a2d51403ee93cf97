package usecase

import (
	"math"

	"SignalScanner/internal/domain"
)

const categoryBonus = 5

// ReadinessScore reduces ranked signals to a 0–100 buying-readiness score.
//
// The normalization divides raw by max(raw, 1), so any positive raw score
// normalizes to exactly 100 and the result is 100 whenever a signal exists.
// TODO: normalize against a fixed maximum raw score once the formula is revised.
func ReadinessScore(events []domain.SignalEvent) int {
	if len(events) == 0 {
		return 0
	}

	raw := 0
	categories := make(map[string]struct{})
	for _, ev := range events {
		raw += ev.Confidence.Weight() * ev.Score
		if ev.Category != nil {
			categories[ev.Category.Name] = struct{}{}
		}
	}

	normalized := min(100, int(math.Round(float64(raw)/float64(max(raw, 1))*100)))
	bonus := categoryBonus * len(categories)

	return clamp(normalized+bonus, 0, 100)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
