package app

import (
	"net/http"

	"trucking-planner/internal/config"
	mw "trucking-planner/internal/http/middleware"
	"trucking-planner/internal/http/middleware/ratelimit"
	"trucking-planner/internal/logx"
)

// rateLimitMiddleware is the write-endpoint throttle as mounted by the router.
type rateLimitMiddleware func(http.Handler) http.Handler

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	rl := cfg.RateLimit
	if rl.Limit <= 0 {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewTokenBucketPerWindow(clock, rl.Limit, rl.Window, 10*rl.Window, 10000)
}

func newRateLimitMiddleware(logger logx.Logger, limiter ratelimit.Limiter, m *metricSet) rateLimitMiddleware {
	middleware := ratelimit.New(logger, m.RateLimitExceeded, limiter, actorKey)
	return middleware.Handler()
}

// actorKey buckets requests per vendor; the dispatcher and anonymous
// callers fall back to the client IP.
func actorKey(r *http.Request) string {
	if a, ok := mw.ActorFromContext(r.Context()); ok && a.Vendor != "" {
		return "vendor:" + a.Vendor
	}
	return "ip:" + ratelimit.ClientIP(r)
}
