package order

import (
	"context"
	"fmt"

	"trucking-planner/internal/apperr"
	"trucking-planner/internal/domain"
	"trucking-planner/internal/repository"
)

// Report is the full picture of one order: header, containers and the
// per-size acceptance breakdown, plus pipeline progress counts.
type Report struct {
	Order      domain.Order
	Containers []domain.Container
	Breakdown  []domain.SizeBreakdown
	Delivered  int
	InTransit  int
}

// Get returns one order with its containers. Vendors may only see their
// own orders.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Order, []domain.Container, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	o, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if o == nil {
		return nil, nil, fmt.Errorf("order %s: %w", id, apperr.NotFound)
	}
	if !actor.IsAdmin() && !actor.ActsFor(o.Vendor) {
		return nil, nil, fmt.Errorf("order %s belongs to %s: %w", id, o.Vendor, apperr.Forbidden)
	}
	items, err := s.store.Containers(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return o, items, nil
}

// List returns orders matching the filter. Vendor actors are pinned to
// their own name regardless of the requested filter.
func (s *Service) List(ctx context.Context, actor domain.Actor, f repository.ListFilter) ([]domain.Order, error) {
	if f.From != "" && !domain.ValidDate(f.From) {
		return nil, fmt.Errorf("invalid from date %q: %w", f.From, apperr.Invalid)
	}
	if f.To != "" && !domain.ValidDate(f.To) {
		return nil, fmt.Errorf("invalid to date %q: %w", f.To, apperr.Invalid)
	}
	if !actor.IsAdmin() {
		f.Vendor = actor.Vendor
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.ListOrders(ctx, f)
}

// Breakdown returns the per-size acceptance counts of one order.
func (s *Service) Breakdown(ctx context.Context, actor domain.Actor, id string) ([]domain.SizeBreakdown, error) {
	_, items, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return domain.BreakdownBySize(items), nil
}

// BuildReport assembles the status report of one order.
func (s *Service) BuildReport(ctx context.Context, actor domain.Actor, id string) (*Report, error) {
	o, items, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	r := &Report{
		Order:      *o,
		Containers: items,
		Breakdown:  domain.BreakdownBySize(items),
	}
	for _, c := range items {
		if c.Acceptance != domain.AcceptanceAccepted {
			continue
		}
		if c.TruckingStatus.Terminal() {
			r.Delivered++
		} else {
			r.InTransit++
		}
	}
	return r, nil
}
