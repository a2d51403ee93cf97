package usecase

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"SignalScanner/internal/ports"
)

// RandomPacer waits a uniformly random interval in [min, max] between queries.
type RandomPacer struct {
	min time.Duration
	max time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

var _ ports.Pacer = (*RandomPacer)(nil)

// NewRandomPacer swaps an inverted range; a nil rnd is seeded from the clock.
func NewRandomPacer(lo, hi time.Duration, rnd *rand.Rand) *RandomPacer {
	if hi < lo {
		lo, hi = hi, lo
	}
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	return &RandomPacer{min: lo, max: hi, rnd: rnd}
}

// Delay draws the next interval.
func (p *RandomPacer) Delay() time.Duration {
	span := p.max - p.min
	if span <= 0 {
		return p.min
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.min + time.Duration(p.rnd.Int64N(int64(span)+1))
}

// Pause blocks for Delay or until ctx is done.
func (p *RandomPacer) Pause(ctx context.Context) error {
	delay := p.Delay()
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
