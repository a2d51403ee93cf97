package parser

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds a single backend request.
const DefaultTimeout = 10 * time.Second

// HTTPClient is the outbound transport shared by all backends.
type HTTPClient struct {
	client  *http.Client
	headers *HeaderRotator
	limiter *hostLimiter
}

// NewHTTPClient wires an http.Client with header rotation and per-host spacing.
// hostInterval <= 0 disables spacing.
func NewHTTPClient(client *http.Client, headers *HeaderRotator, hostInterval time.Duration) *HTTPClient {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if headers == nil {
		headers = NewHeaderRotator(nil)
	}
	return &HTTPClient{
		client:  client,
		headers: headers,
		limiter: newHostLimiter(hostInterval),
	}
}

// Do sends req and returns the response only for 200 OK.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context(), req.URL.Host); err != nil {
		return nil, fmt.Errorf("wait for %s: %w", req.URL.Host, err)
	}
	c.headers.Apply(req.Header)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", req.URL.Host, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%s returned %s", req.URL.Host, resp.Status)
	}
	return resp, nil
}

// Document sends req and parses the body as HTML.
func (c *HTTPClient) Document(req *http.Request) (*goquery.Document, error) {
	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}

type hostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

func newHostLimiter(interval time.Duration) *hostLimiter {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &hostLimiter{limiters: map[string]*rate.Limiter{}, limit: limit}
}

func (h *hostLimiter) Wait(ctx context.Context, host string) error {
	h.mu.Lock()
	limiter, ok := h.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(h.limit, 1)
		h.limiters[host] = limiter
	}
	h.mu.Unlock()

	return limiter.Wait(ctx)
}
