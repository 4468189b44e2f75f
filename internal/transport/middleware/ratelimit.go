package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const rateLimitMessage = "Too many requests. Please try again later."

// RateLimiter implements a per-client sliding window counter.
//
// Only accepted requests are recorded: a rejected attempt never occupies a
// slot, so a client at the cap regains capacity as soon as its oldest
// accepted request leaves the window.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string][]time.Time

	max    int
	window time.Duration
	clock  clockwork.Clock
	log    *slog.Logger
}

// NewRateLimiter creates a limiter allowing max requests per window per client.
func NewRateLimiter(clock clockwork.Clock, max int, window time.Duration, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string][]time.Time),
		max:     max,
		window:  window,
		clock:   clock,
		log:     logger.With("middleware", "ratelimit"),
	}
}

// Allow reports whether a request from key may proceed and records it if so.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	recent := prune(rl.windows[key], now.Add(-rl.window))

	if len(recent) >= rl.max {
		rl.windows[key] = recent
		return false
	}

	rl.windows[key] = append(recent, now)
	return true
}

// prune drops timestamps at or before cutoff. Timestamps are appended in
// order, so everything after the first recent one is recent too.
func prune(stamps []time.Time, cutoff time.Time) []time.Time {
	for i, ts := range stamps {
		if ts.After(cutoff) {
			return stamps[i:]
		}
	}
	return stamps[:0]
}

// Sweep drops clients with no timestamps inside the current window.
// Returns the number of removed clients.
func (rl *RateLimiter) Sweep() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.clock.Now().Add(-rl.window)
	removed := 0
	for key, stamps := range rl.windows {
		if recent := prune(stamps, cutoff); len(recent) == 0 {
			delete(rl.windows, key)
			removed++
		} else {
			rl.windows[key] = recent
		}
	}
	return removed
}

// Clients returns the number of tracked client keys.
func (rl *RateLimiter) Clients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.windows)
}

// Run sweeps idle clients every interval until ctx is cancelled.
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) error {
	ticker := rl.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			if n := rl.Sweep(); n > 0 {
				rl.log.DebugContext(ctx, "idle rate limit clients swept", slog.Int("removed", n))
			}
		}
	}
}

// Limit returns middleware that rejects requests over the limit with 429.
// The response deliberately omits the window parameters.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientKey(r)
			if !rl.Allow(key) {
				rl.log.WarnContext(r.Context(), "rate limit exceeded",
					slog.String("client", key),
					slog.String("path", r.URL.Path),
				)
				writeJSON(w, http.StatusTooManyRequests, map[string]any{
					"success": false,
					"error":   rateLimitMessage,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
