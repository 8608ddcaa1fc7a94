// Package events applies vendor availability events consumed from the
// message broker to the availability ledger.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"trucking-planner/internal/apperr"
	"trucking-planner/internal/domain"
	"trucking-planner/internal/logx"
)

// AvailabilityEvent is the wire shape of one vendor availability message.
type AvailabilityEvent struct {
	Vendor  string `json:"vendor"`
	Date    string `json:"date"`
	Slots20 int    `json:"slots_20"`
	Slots40 int    `json:"slots_40"`
}

// ledger is the slice of the availability service the processor needs.
type ledger interface {
	Set(ctx context.Context, actor domain.Actor, date string, e domain.AvailabilityEntry) error
}

// Processor turns broker messages into ledger writes.
type Processor struct {
	ledger   ledger
	logger   logx.Logger
	outcomes *prometheus.CounterVec
}

// NewProcessor creates a Processor.
func NewProcessor(l ledger, logger logx.Logger, outcomes *prometheus.CounterVec) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Processor{ledger: l, logger: logger, outcomes: outcomes}
}

func (p *Processor) count(outcome string) {
	if p.outcomes != nil {
		p.outcomes.WithLabelValues(outcome).Inc()
	}
}

// Handle applies one raw message. Malformed or unauthorized events are
// logged and dropped; a returned error means the message should be
// redelivered.
func (p *Processor) Handle(ctx context.Context, payload []byte) error {
	var ev AvailabilityEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		p.count("skipped")
		p.logger.Warn("dropping malformed availability event", logx.Err(err))
		return nil
	}

	actor := domain.Actor{Role: domain.RoleVendor, Vendor: ev.Vendor}
	err := p.ledger.Set(ctx, actor, ev.Date, domain.AvailabilityEntry{
		Slots20: ev.Slots20,
		Slots40: ev.Slots40,
	})
	switch {
	case err == nil:
		p.count("applied")
		return nil
	case errors.Is(err, apperr.Invalid), errors.Is(err, apperr.Forbidden):
		p.count("skipped")
		p.logger.Warn("dropping rejected availability event",
			logx.String("vendor", ev.Vendor),
			logx.String("date", ev.Date),
			logx.Err(err),
		)
		return nil
	default:
		p.count("failed")
		return fmt.Errorf("apply availability event: %w", err)
	}
}
