// SPDX-License-Identifier: MIT
// Package: gopatterns/proxy
//
// server.go - Server, the Application backend and the NginxServer proxy.

package proxy

import (
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Server handles a request and returns a status code and body.
type Server interface {
	HandleRequest(url, method string) (int, string)
}

// Application is the real service behind the proxy.
type Application struct{}

// HandleRequest implements Server.
func (Application) HandleRequest(url, method string) (int, string) {
	switch {
	case url == "/app/status" && method == http.MethodGet:
		return http.StatusOK, "Ok"
	case url == "/create/user" && method == http.MethodPost:
		return http.StatusCreated, "User Created"
	default:
		return http.StatusNotFound, "Not Ok"
	}
}

// NginxServer is a rate-limiting proxy in front of another Server.
type NginxServer struct {
	backend  Server
	limiter  Limiter
	logger   *zap.Logger
	requests *prometheus.CounterVec
}

// NewNginxServer wraps backend. Without options the proxy allows
// DefaultMaxAllowedRequests calls per URL, logs nothing and records no metrics.
func NewNginxServer(backend Server, opts ...Option) (*NginxServer, error) {
	if backend == nil {
		return nil, ErrNilServer
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.limiter == nil {
		cfg.limiter = NewCounterLimiter(cfg.maxAllowed)
	}

	s := &NginxServer{
		backend: backend,
		limiter: cfg.limiter,
		logger:  cfg.logger,
	}
	if cfg.registerer != nil {
		s.requests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "proxy_requests_total",
				Help: "Requests seen by the proxy, by URL and limiter outcome.",
			},
			[]string{"url", "outcome"},
		)
		if err := cfg.registerer.Register(s.requests); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMetrics, err)
		}
	}

	return s, nil
}

// HandleRequest implements Server. A refused request is answered with
// 403 "Not Allowed" and never reaches the backend.
func (s *NginxServer) HandleRequest(url, method string) (int, string) {
	if !s.limiter.Allow(url) {
		s.observe(url, "denied")
		s.logger.Info("request rate limited", zap.String("url", url), zap.String("method", method))
		return http.StatusForbidden, "Not Allowed"
	}

	s.observe(url, "allowed")
	code, body := s.backend.HandleRequest(url, method)
	s.logger.Debug("request forwarded",
		zap.String("url", url),
		zap.String("method", method),
		zap.Int("status", code),
	)
	return code, body
}

func (s *NginxServer) observe(url, outcome string) {
	if s.requests == nil {
		return
	}
	s.requests.WithLabelValues(url, outcome).Inc()
}

// Demo sends five requests through a proxy with the default threshold.
func Demo(w io.Writer) error {
	nginx, err := NewNginxServer(Application{})
	if err != nil {
		return err
	}

	calls := []struct{ url, method string }{
		{"/app/status", http.MethodGet},
		{"/app/status", http.MethodGet},
		{"/app/status", http.MethodGet},
		{"/create/user", http.MethodPost},
		{"/create/user", http.MethodGet},
	}
	for _, c := range calls {
		code, body := nginx.HandleRequest(c.url, c.method)
		fmt.Fprintf(w, "Url: %s\nHttpCode: %d\nBody: %s\n\n", c.url, code, body)
	}

	return nil
}
