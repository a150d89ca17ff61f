// Package ratelimit provides keyed token-bucket admission control.
package ratelimit

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const defaultMaxKeys = 10000

// Limiter allows up to limit events per window for each key.
// Idle keys are forgotten after window, by which time their bucket is full again.
type Limiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates a Limiter. A non-positive limit or window disables limiting.
func New(limit int, window time.Duration) *Limiter {
	if limit <= 0 || window <= 0 {
		return &Limiter{}
	}
	return &Limiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](defaultMaxKeys, nil, window),
		rate:     rate.Limit(float64(limit) / window.Seconds()),
		burst:    limit,
	}
}

// Allow reports whether one more event for key fits in its budget.
func (rl *Limiter) Allow(key string) bool {
	if rl == nil || rl.limiters == nil {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
	}
	// Re-adding refreshes the key's expiry.
	rl.limiters.Add(key, limiter)

	return limiter.Allow()
}
