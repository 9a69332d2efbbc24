// SPDX-License-Identifier: MIT
// Package: gopatterns/proxy
//
// options.go - functional options for NewNginxServer.

package proxy

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultMaxAllowedRequests is the CounterLimiter threshold used when no
// option overrides it.
const DefaultMaxAllowedRequests = 2

type options struct {
	maxAllowed int
	limiter    Limiter
	logger     *zap.Logger
	registerer prometheus.Registerer
}

func defaultOptions() options {
	return options{
		maxAllowed: DefaultMaxAllowedRequests,
		logger:     zap.NewNop(),
	}
}

// Option configures an NginxServer.
type Option func(*options)

// WithMaxAllowedRequests sets the threshold of the built-in CounterLimiter.
// Ignored when WithLimiter is also given. Panics if n < 1.
func WithMaxAllowedRequests(n int) Option {
	if n < 1 {
		panic(ErrBadMaxRequests.Error())
	}
	return func(o *options) {
		o.maxAllowed = n
	}
}

// WithLimiter replaces the built-in CounterLimiter. Panics on nil.
func WithLimiter(l Limiter) Option {
	if l == nil {
		panic("proxy: WithLimiter(nil)")
	}
	return func(o *options) {
		o.limiter = l
	}
}

// WithLogger sets the logger for allow/deny decisions. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("proxy: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithRegisterer enables the proxy_requests_total counter on r.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = r
	}
}
