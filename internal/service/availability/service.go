package availability

import (
	"context"
	"fmt"
	"time"

	"trucking-planner/internal/apperr"
	"trucking-planner/internal/domain"
	"trucking-planner/internal/logx"
)

// Service is the availability ledger: per-date, per-vendor counts of open
// container slots. Vendors write their own entries; the dispatcher reads
// per-date and per-month aggregates.
type Service struct {
	store            ledgerStore
	vendors          []string
	capacity         int
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures the availability ledger.
func NewService(store ledgerStore, vendors []string, capacity int, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if capacity <= 0 {
		capacity = 1
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		store:            store,
		vendors:          append([]string(nil), vendors...),
		capacity:         capacity,
		operationTimeout: timeout,
		logger:           logger,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Set overwrites the acting vendor's entry for a date wholesale. Only
// vendors may publish availability, and only under their own name.
func (s *Service) Set(ctx context.Context, actor domain.Actor, date string, e domain.AvailabilityEntry) error {
	if actor.Role != domain.RoleVendor || actor.Vendor == "" {
		return fmt.Errorf("availability is published by vendors: %w", apperr.Forbidden)
	}
	if !domain.ValidDate(date) {
		return fmt.Errorf("invalid date %q: %w", date, apperr.Invalid)
	}
	if e.Slots20 < 0 || e.Slots40 < 0 {
		return fmt.Errorf("slot counts must not be negative: %w", apperr.Invalid)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.store.SetAvailability(ctx, date, actor.Vendor, e); err != nil {
		return err
	}

	s.logger.Info("availability saved",
		logx.String("event", "availability_saved"),
		logx.String("vendor", actor.Vendor),
		logx.String("date", date),
		logx.Int("slots_20", e.Slots20),
		logx.Int("slots_40", e.Slots40),
	)
	return nil
}

// Get returns a vendor's entry for a date, zero-valued when unset.
func (s *Service) Get(ctx context.Context, date, vendor string) (domain.AvailabilityEntry, error) {
	if !domain.ValidDate(date) {
		return domain.AvailabilityEntry{}, fmt.Errorf("invalid date %q: %w", date, apperr.Invalid)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.GetAvailability(ctx, date, vendor)
}

// ByDate returns every known vendor's entry for a date. Vendors that have
// not published for that date show up with zero slots.
func (s *Service) ByDate(ctx context.Context, date string) (map[string]domain.AvailabilityEntry, error) {
	if !domain.ValidDate(date) {
		return nil, fmt.Errorf("invalid date %q: %w", date, apperr.Invalid)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	stored, err := s.store.AvailabilityByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.AvailabilityEntry, len(s.vendors)+len(stored))
	for _, v := range s.vendors {
		out[v] = domain.AvailabilityEntry{}
	}
	for v, e := range stored {
		out[v] = e
	}
	return out, nil
}

// MonthSummary returns cross-vendor slot totals for every day of the
// month. Busy is set when a day's total exceeds half of the configured
// capacity, which backs the calendar coloring.
func (s *Service) MonthSummary(ctx context.Context, year int, month time.Month) ([]domain.DaySummary, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month %d: %w", month, apperr.Invalid)
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("invalid year %d: %w", year, apperr.Invalid)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	byDate, err := s.store.AvailabilityBetween(ctx,
		first.Format(domain.DateFormat), last.Format(domain.DateFormat))
	if err != nil {
		return nil, err
	}

	out := make([]domain.DaySummary, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := d.Format(domain.DateFormat)
		day := domain.DaySummary{Date: key}
		for _, e := range byDate[key] {
			day.Slots20 += e.Slots20
			day.Slots40 += e.Slots40
		}
		day.Busy = 2*(day.Slots20+day.Slots40) > s.capacity
		out = append(out, day)
	}
	return out, nil
}
