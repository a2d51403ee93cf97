package parser

import (
	"math/rand/v2"
	"net/http"
	"sync"
	"time"
)

// HeaderProfile is one simulated client identity.
type HeaderProfile map[string]string

// Accept-Encoding is left to net/http so gzip responses are decoded transparently.
var defaultProfiles = []HeaderProfile{
	{
		"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.5",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
	},
	{
		"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15",
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9",
		"Connection":      "keep-alive",
	},
}

// HeaderRotator picks a random header profile per request.
type HeaderRotator struct {
	mu       sync.Mutex
	rnd      *rand.Rand
	profiles []HeaderProfile
}

// NewHeaderRotator uses the built-in browser profiles when none are given.
// A nil rnd is seeded from the clock.
func NewHeaderRotator(rnd *rand.Rand, profiles ...HeaderProfile) *HeaderRotator {
	if len(profiles) == 0 {
		profiles = defaultProfiles
	}
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &HeaderRotator{rnd: rnd, profiles: profiles}
}

// Next returns the profile for the next request.
func (h *HeaderRotator) Next() HeaderProfile {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.profiles[h.rnd.IntN(len(h.profiles))]
}

// Apply writes the next profile into header.
func (h *HeaderRotator) Apply(header http.Header) {
	for key, value := range h.Next() {
		header.Set(key, value)
	}
}
