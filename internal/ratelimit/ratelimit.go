package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/serpapi"
)

// Limiter enforces a minimum delay between consecutive search requests so a
// multi-query run stays polite to the API.
type Limiter struct {
	mu       sync.Mutex
	lastCall time.Time
	minDelay time.Duration
}

// NewLimiter creates a limiter that enforces minDelay between consecutive
// requests.
func NewLimiter(minDelay time.Duration) *Limiter {
	return &Limiter{minDelay: minDelay}
}

// Wait blocks until enough time has passed since the previous request.
// Returns an error if the context is cancelled while waiting.
func (r *Limiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	now := time.Now()

	if r.lastCall.IsZero() {
		// First request — no wait needed.
		r.lastCall = now
		r.mu.Unlock()
		return nil
	}

	elapsed := now.Sub(r.lastCall)
	if elapsed >= r.minDelay {
		r.lastCall = now
		r.mu.Unlock()
		return nil
	}

	remaining := r.minDelay - elapsed
	r.mu.Unlock()

	select {
	case <-ctx.Done():
		return fmt.Errorf("rate limiter wait: %w", ctx.Err())
	case <-time.After(remaining):
	}

	r.mu.Lock()
	r.lastCall = time.Now()
	r.mu.Unlock()

	return nil
}

// RateLimitedSearcher is a decorator that waits on the limiter before
// delegating to the wrapped PageSearcher.
type RateLimitedSearcher struct {
	inner   serpapi.PageSearcher
	limiter *Limiter
}

// NewRateLimitedSearcher wraps a PageSearcher with the minimum-delay limiter.
func NewRateLimitedSearcher(inner serpapi.PageSearcher, limiter *Limiter) *RateLimitedSearcher {
	return &RateLimitedSearcher{inner: inner, limiter: limiter}
}

// SearchPage waits for the limiter to allow a request, then delegates to the
// wrapped searcher.
func (s *RateLimitedSearcher) SearchPage(ctx context.Context, query string, page int) ([]serpapi.RawListing, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.SearchPage(ctx, query, page)
}
