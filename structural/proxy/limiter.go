// SPDX-License-Identifier: MIT
// Package: gopatterns/proxy
//
// limiter.go - Limiter implementations: cumulative counter and token bucket.

package proxy

import (
	"golang.org/x/time/rate"
)

// Limiter decides whether a request for key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// CounterLimiter is a cumulative per-key counter with a static threshold.
type CounterLimiter struct {
	max    int
	counts map[string]int
}

// NewCounterLimiter returns a CounterLimiter allowing max calls per key.
// Panics if max < 1.
func NewCounterLimiter(max int) *CounterLimiter {
	if max < 1 {
		panic(ErrBadMaxRequests.Error())
	}
	return &CounterLimiter{max: max, counts: make(map[string]int)}
}

// Allow implements Limiter.
func (l *CounterLimiter) Allow(key string) bool {
	n, ok := l.counts[key]
	if !ok {
		n = 1
	}
	if n > l.max {
		return false
	}
	l.counts[key] = n + 1
	return true
}

// Count returns the current counter for key, or 0 if key was never seen.
func (l *CounterLimiter) Count(key string) int { return l.counts[key] }

// TokenBucketLimiter keeps an independent token bucket per key.
type TokenBucketLimiter struct {
	limit   rate.Limit
	burst   int
	buckets map[string]*rate.Limiter
}

// NewTokenBucketLimiter refills each key's bucket at limit tokens per second
// up to burst. A zero limit never refills, which makes the bucket a plain
// counter of burst calls. Panics if burst < 1.
func NewTokenBucketLimiter(limit rate.Limit, burst int) *TokenBucketLimiter {
	if burst < 1 {
		panic(ErrBadBurst.Error())
	}
	return &TokenBucketLimiter{
		limit:   limit,
		burst:   burst,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Allow implements Limiter.
func (l *TokenBucketLimiter) Allow(key string) bool {
	b, ok := l.buckets[key]
	if !ok {
		b = rate.NewLimiter(l.limit, l.burst)
		l.buckets[key] = b
	}
	return b.Allow()
}
