package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// Limiter - per-key request limiting.
type Limiter interface {
	Allow(key string) bool
	Reset(key string)
}

// MemoryLimiter - in-memory token-bucket limiter, one bucket per key
// (single instance deployment, no shared store needed).
type MemoryLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewMemoryLimiter - rps tokens per second with the given burst per key.
func NewMemoryLimiter(rps int, burst int) *MemoryLimiter {
	return &MemoryLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

// Allow reports whether a request for key may proceed now.
func (l *MemoryLimiter) Allow(key string) bool {
	l.mu.Lock()
	limiter, exists := l.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// Reset drops the bucket for a key.
func (l *MemoryLimiter) Reset(key string) {
	l.mu.Lock()
	delete(l.limiters, key)
	l.mu.Unlock()
}

// Cleanup drops all buckets. Call periodically to bound memory.
func (l *MemoryLimiter) Cleanup() {
	l.mu.Lock()
	l.limiters = make(map[string]*rate.Limiter)
	l.mu.Unlock()
}
