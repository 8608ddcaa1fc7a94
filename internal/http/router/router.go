// Package router wires the HTTP surface of the planner.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trucking-planner/internal/http/handlers"
	mw "trucking-planner/internal/http/middleware"
	"trucking-planner/internal/logx"
)

// Deps carries everything the router mounts.
type Deps struct {
	Logger       logx.Logger
	Base         *handlers.Handlers
	Availability *handlers.AvailabilityHandler
	Orders       *handlers.OrderHandler

	// RateLimit guards write endpoints; nil disables throttling.
	RateLimit func(http.Handler) http.Handler

	// Pprof, when non-nil, is mounted under /debug/pprof.
	Pprof http.Handler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(5 * time.Second))
	r.Use(mw.Observability(d.Logger))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())
	if d.Pprof != nil {
		r.Mount("/debug", d.Pprof)
	}
	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	limit := d.RateLimit
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}

	r.Group(func(r chi.Router) {
		r.Use(mw.Actor(d.Logger))

		r.Route("/availability", func(r chi.Router) {
			r.Get("/summary", d.Availability.MonthSummary)
			r.With(limit).Put("/{date}", d.Availability.Set)
			r.Get("/{date}", d.Availability.ByDate)
			r.Get("/{date}/{vendor}", d.Availability.Get)
		})

		r.Route("/orders", func(r chi.Router) {
			r.With(limit).Post("/", d.Orders.Create)
			r.Get("/", d.Orders.List)
			r.Get("/{id}", d.Orders.Get)
			r.Get("/{id}/breakdown", d.Orders.Breakdown)
			r.Get("/{id}/report", d.Orders.Report)
			r.With(limit).Post("/{id}/accept", d.Orders.AcceptAll)
			r.With(limit).Post("/{id}/reject", d.Orders.RejectAll)
			r.With(limit).Post("/{id}/partial", d.Orders.PartialAccept)
			r.With(limit).Patch("/{id}/containers", d.Orders.BulkUpdateContainers)
			r.With(limit).Patch("/{id}/containers/{seq}", d.Orders.UpdateContainer)
		})
	})

	return r
}
