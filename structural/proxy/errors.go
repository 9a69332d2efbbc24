// SPDX-License-Identifier: MIT
// Package: gopatterns/proxy
//
// errors.go - sentinel errors for the proxy package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Context (offending value, underlying library error) is attached with %w
//     at the call site, never baked into the sentinel text.
//   - Operations return errors; panics are confined to option and
//     constructor validation (With..., New...Limiter).

package proxy

import "errors"

// ErrNilServer indicates NewNginxServer was given no backend to protect.
// Classification: construction error.
// Usage: if errors.Is(err, ErrNilServer) { /* wire an Application first */ }.
var ErrNilServer = errors.New("proxy: backend server is nil")

// ErrMetrics indicates the proxy_requests_total counter could not be
// registered, typically because the Registerer already holds a collector
// with the same name. The prometheus error is attached with %w.
// Usage: if errors.Is(err, ErrMetrics) { /* use a fresh prometheus.Registry */ }.
var ErrMetrics = errors.New("proxy: register metrics")

// ErrBadMaxRequests is the panic message of WithMaxAllowedRequests and
// NewCounterLimiter for a threshold below 1.
var ErrBadMaxRequests = errors.New("proxy: max allowed requests must be >= 1")

// ErrBadBurst is the panic message of NewTokenBucketLimiter for a burst below 1.
var ErrBadBurst = errors.New("proxy: burst must be >= 1")
