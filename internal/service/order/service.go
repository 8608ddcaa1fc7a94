// Package order implements the order lifecycle: creation against vendor
// availability, vendor accept/reject decisions, and per-container logistics
// tracking through the trucking pipeline.
package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"trucking-planner/internal/logx"
)

// Service coordinates order creation, vendor decisions and logistics updates.
type Service struct {
	store            orderStore
	operationTimeout time.Duration
	logger           logx.Logger

	now   func() time.Time
	newID func() string

	ordersCreated    prometheus.Counter
	decisions        *prometheus.CounterVec
	containerUpdates prometheus.Counter
}

// Option configures optional service collaborators.
type Option func(*Service)

// WithMetrics attaches the order metric instruments.
func WithMetrics(created prometheus.Counter, decisions *prometheus.CounterVec, updates prometheus.Counter) Option {
	return func(s *Service) {
		s.ordersCreated = created
		s.decisions = decisions
		s.containerUpdates = updates
	}
}

// WithClock overrides the service clock, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides the order ID generator, used by tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

// NewService creates and configures the order service.
func NewService(store orderStore, timeout time.Duration, logger logx.Logger, opts ...Option) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	s := &Service{
		store:            store,
		operationTimeout: timeout,
		logger:           logger,
		now:              time.Now,
		newID:            newOrderID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// newOrderID mints a short human-readable order identifier.
func newOrderID() string {
	raw := uuid.New()
	return fmt.Sprintf("ORD-%s", strings.ToUpper(fmt.Sprintf("%x", raw[:4])))
}

func (s *Service) countDecision(kind string) {
	if s.decisions != nil {
		s.decisions.WithLabelValues(kind).Inc()
	}
}

func (s *Service) countOrderCreated() {
	if s.ordersCreated != nil {
		s.ordersCreated.Inc()
	}
}

func (s *Service) countContainerUpdate() {
	if s.containerUpdates != nil {
		s.containerUpdates.Inc()
	}
}
