// Package ratelimit throttles write traffic per caller. Vendor actors
// share one bucket per vendor name, so a chatty vendor cannot starve the
// dispatcher or the other vendors.
package ratelimit

import (
	"io"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"trucking-planner/internal/logx"
)

// KeyFunc extracts the throttling key from a request.
type KeyFunc func(r *http.Request) string

// Middleware limits requests per key.
type Middleware struct {
	logger  logx.Logger
	counter prometheus.Counter
	limiter Limiter
	keyOf   KeyFunc
}

// New creates a Middleware. A nil limiter disables throttling and a nil
// key function falls back to the client IP.
func New(logger logx.Logger, counter prometheus.Counter, limiter Limiter, keyOf KeyFunc) *Middleware {
	if limiter == nil {
		limiter = NopLimiter{}
	}
	if keyOf == nil {
		keyOf = ClientIP
	}
	return &Middleware{
		logger:  logger,
		counter: counter,
		limiter: limiter,
		keyOf:   keyOf,
	}
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := m.keyOf(r)

			if !m.limiter.Allow(key) {
				if m.counter != nil {
					m.counter.Inc()
				}
				m.logger.Warn("rate limit exceeded",
					logx.String("key", key),
					logx.String("method", r.Method),
					logx.String("path", r.URL.Path),
				)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				if _, err := io.WriteString(w, `{"error":"too many requests"}`); err != nil {
					// the client may have hung up already
					m.logger.Debug("rate limit response write failed",
						logx.String("key", key),
						logx.Any("err", err),
					)
				}
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP keys requests by the remote address.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
