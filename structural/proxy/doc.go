// Package proxy demonstrates the Proxy pattern with a rate-limiting gateway.
//
// NginxServer stands in front of an Application. Both implement Server, so
// clients cannot tell them apart; the proxy checks a Limiter before
// delegating and answers 403 "Not Allowed" itself when the limiter refuses.
//
// Limiters:
//
//   - CounterLimiter is a fixed-window counter that never resets. A key's
//     count starts at 1 on first sight; each allowed call increments it and
//     the call is refused once the count exceeds the threshold. With a
//     threshold of 2 the first three calls for a key yield true, true, false.
//     Refused calls do not increment.
//   - TokenBucketLimiter keeps one golang.org/x/time/rate bucket per key for
//     callers that want refill over time.
//
// Options:
//
//   - WithMaxAllowedRequests(n): threshold of the default CounterLimiter
//     (default 2). Panics if n < 1.
//   - WithLimiter(l): replace the limiter entirely. Panics on nil.
//   - WithLogger(l): zap logger for allow/deny decisions (default no-op).
//   - WithRegisterer(r): register proxy_requests_total{url,outcome} on r.
//
// Errors (sentinel):
//
//   - ErrNilServer if NewNginxServer receives a nil backend.
//   - ErrMetrics   if the request counter cannot be registered.
//
// Neither limiter is safe to share across goroutines without external
// locking; the proxy itself is single-threaded.
package proxy
