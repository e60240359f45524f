// Package ratelimit provides per-client request throttling using a token
// bucket.
package ratelimit

import (
	"sync"
	"time"
)

// DefaultCleanupInterval controls how often idle client buckets are dropped.
const DefaultCleanupInterval = 10 * time.Minute

// bucket tracks one client's available request tokens. Tokens refill at a
// steady rate up to the capacity.
type bucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newBucket(capacity int, refillRate float64) *bucket {
	return &bucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes one token if available.
func (b *bucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill()
	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true
	}
	return false
}

// refill adds tokens for the time elapsed since the last refill. Callers
// must hold b.mu.
func (b *bucket) refill() {
	now := time.Now()
	elapsed := now.Sub(b.lastRefill)
	b.tokens = min(float64(b.capacity), b.tokens+elapsed.Seconds()*b.refillRate)
	b.lastRefill = now
}

// status reports remaining tokens and when the bucket is full again.
func (b *bucket) status() (remaining int, resetTime time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill()
	remaining = int(b.tokens)
	resetTime = b.lastRefill
	if b.tokens < float64(b.capacity) {
		needed := float64(b.capacity) - b.tokens
		resetTime = b.lastRefill.Add(time.Duration(needed / b.refillRate * float64(time.Second)))
	}
	return remaining, resetTime
}

// Info describes a client's rate limit state after a check.
type Info struct {
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter throttles each client to a fixed number of requests per window.
// A zero or negative limit disables throttling.
type Limiter struct {
	limit  int
	window time.Duration

	mu         sync.Mutex
	buckets    map[string]*bucket
	lastAccess map[string]time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter allowing limit requests per window for each
// client.
func NewLimiter(limit int, window time.Duration) *Limiter {
	l := &Limiter{
		limit:      limit,
		window:     window,
		buckets:    make(map[string]*bucket),
		lastAccess: make(map[string]time.Time),
	}
	if limit > 0 {
		l.cleanupTicker = time.NewTicker(DefaultCleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether the client may proceed, consuming one token when
// allowed.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if l.limit <= 0 {
		return true, Info{}
	}

	b := l.bucketFor(clientID)
	allowed := b.allow()
	remaining, resetTime := b.status()

	info := Info{
		Limit:     l.limit,
		Remaining: remaining,
		ResetTime: resetTime,
	}
	if !allowed {
		// Time for one token to refill.
		info.RetryAfter = time.Duration(float64(l.window) / float64(l.limit))
	}
	return allowed, info
}

func (l *Limiter) bucketFor(clientID string) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[clientID]
	if !ok {
		refillRate := float64(l.limit) / l.window.Seconds()
		b = newBucket(l.limit, refillRate)
		l.buckets[clientID] = b
	}
	l.lastAccess[clientID] = time.Now()
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.cleanup()
		case <-l.cleanupStop:
			return
		}
	}
}

// cleanup drops buckets idle long enough to have fully refilled.
func (l *Limiter) cleanup() {
	cutoff := time.Now().Add(-2 * DefaultCleanupInterval)

	l.mu.Lock()
	defer l.mu.Unlock()
	for id, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, id)
			delete(l.lastAccess, id)
		}
	}
}

// Stop terminates the cleanup goroutine. Safe to call on a disabled
// limiter.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}
