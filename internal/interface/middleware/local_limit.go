package middleware

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type localEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// LocalLimiter is the in-process fallback for deployments without redis:
// one token bucket per origin key, refilling at max tokens per window, so the
// per-window cap still holds on a single node. Stale entries are swept lazily
// on access instead of from a background goroutine.
type LocalLimiter struct {
	mu        sync.Mutex
	entries   map[string]*localEntry
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
}

func NewLocalLimiter(max int, window time.Duration) *LocalLimiter {
	return &LocalLimiter{
		entries:   make(map[string]*localEntry),
		limit:     rate.Limit(float64(max) / window.Seconds()),
		burst:     max,
		ttl:       2 * window,
		lastSweep: time.Now(),
	}
}

// Allow reports whether one more request under key fits the cap.
func (l *LocalLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastSweep) > l.ttl {
		l.sweep(now)
	}

	e, ok := l.entries[key]
	if !ok {
		e = &localEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = e
	}
	e.lastAccess = now
	return e.limiter.Allow()
}

// Len returns the number of tracked origin keys.
func (l *LocalLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *LocalLimiter) sweep(now time.Time) {
	for key, e := range l.entries {
		if now.Sub(e.lastAccess) > l.ttl {
			delete(l.entries, key)
		}
	}
	l.lastSweep = now
}
