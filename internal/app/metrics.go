package app

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"trucking-planner/internal/metrics"
)

// metricSet bundles the planner's metric instruments for injection.
type metricSet struct {
	OrdersCreated      prometheus.Counter
	OrderDecisions     *prometheus.CounterVec
	ContainerUpdates   prometheus.Counter
	AvailabilityEvents *prometheus.CounterVec
	RateLimitExceeded  prometheus.Counter
}

func newMetricSet() *metricSet {
	return &metricSet{
		OrdersCreated:      registerOrExisting(metrics.NewOrdersCreatedTotal()).(prometheus.Counter),
		OrderDecisions:     registerOrExisting(metrics.NewOrderDecisionsTotal()).(*prometheus.CounterVec),
		ContainerUpdates:   registerOrExisting(metrics.NewContainerUpdatesTotal()).(prometheus.Counter),
		AvailabilityEvents: registerOrExisting(metrics.NewAvailabilityEventsTotal()).(*prometheus.CounterVec),
		RateLimitExceeded:  registerOrExisting(metrics.NewRateLimitExceededTotal()).(prometheus.Counter),
	}
}

// registerOrExisting registers c with the default registry and falls back
// to the already-registered collector. That keeps repeated container
// builds in one process (tests) from panicking.
func registerOrExisting(c prometheus.Collector) prometheus.Collector {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector
		}
		panic(err)
	}
	return c
}
