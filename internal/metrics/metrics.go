package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewOrdersCreatedTotal returns a counter for orders created by the dispatcher.
func NewOrdersCreatedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders created",
	})
}

// NewOrderDecisionsTotal returns a counter of vendor decisions by kind
// (accept, reject, partial).
func NewOrderDecisionsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_decisions_total",
		Help: "Total number of vendor order decisions",
	}, []string{"decision"})
}

// NewContainerUpdatesTotal returns a counter for container logistics updates.
func NewContainerUpdatesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "container_updates_total",
		Help: "Total number of container logistics updates",
	})
}

// NewAvailabilityEventsTotal returns a counter of consumed availability
// events by outcome (applied, skipped, failed).
func NewAvailabilityEventsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "availability_events_total",
		Help: "Total number of consumed vendor availability events",
	}, []string{"outcome"})
}

// NewRateLimitExceededTotal returns a counter for requests rejected by the
// write rate limiter.
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of HTTP requests rejected due to rate limiting",
	})
}
