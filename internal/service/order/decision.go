package order

import (
	"context"
	"fmt"

	"trucking-planner/internal/apperr"
	"trucking-planner/internal/domain"
	"trucking-planner/internal/logx"
	"trucking-planner/internal/ports/ordertx"
)

// containerDecision is the planned outcome for one container.
type containerDecision struct {
	seq    int
	accept bool
}

// AcceptAll marks every container of the order accepted. A vendor may
// re-decide an order; the latest decision wins.
func (s *Service) AcceptAll(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	return s.decide(ctx, actor, orderID, "accept", func(o *domain.Order, items []domain.Container) ([]containerDecision, error) {
		plan := make([]containerDecision, 0, len(items))
		for _, c := range items {
			plan = append(plan, containerDecision{seq: c.SequenceNo, accept: true})
		}
		return plan, nil
	})
}

// RejectAll marks every container of the order rejected, including ones a
// previous decision accepted.
func (s *Service) RejectAll(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	return s.decide(ctx, actor, orderID, "reject", func(o *domain.Order, items []domain.Container) ([]containerDecision, error) {
		plan := make([]containerDecision, 0, len(items))
		for _, c := range items {
			plan = append(plan, containerDecision{seq: c.SequenceNo, accept: false})
		}
		return plan, nil
	})
}

// PartialAccept accepts up to the given count per container size, lowest
// sequence numbers first, and rejects the rest. Counts are bounded by the
// order's requested counts per size.
func (s *Service) PartialAccept(ctx context.Context, actor domain.Actor, orderID string, accept20, accept40 int) (*domain.Order, error) {
	if accept20 < 0 || accept40 < 0 {
		return nil, fmt.Errorf("accept counts must not be negative: %w", apperr.Invalid)
	}
	return s.decide(ctx, actor, orderID, "partial", func(o *domain.Order, items []domain.Container) ([]containerDecision, error) {
		if accept20 > o.Requested20 {
			return nil, fmt.Errorf("cannot accept %d x %s, order requests %d: %w",
				accept20, domain.Size20, o.Requested20, apperr.Invalid)
		}
		if accept40 > o.Requested40 {
			return nil, fmt.Errorf("cannot accept %d x %s, order requests %d: %w",
				accept40, domain.Size40, o.Requested40, apperr.Invalid)
		}

		left20, left40 := accept20, accept40
		plan := make([]containerDecision, 0, len(items))
		for _, c := range items {
			take := false
			if c.Size == domain.Size20 && left20 > 0 {
				take = true
				left20--
			}
			if c.Size == domain.Size40 && left40 > 0 {
				take = true
				left40--
			}
			plan = append(plan, containerDecision{seq: c.SequenceNo, accept: take})
		}
		return plan, nil
	})
}

// decide runs a vendor decision and the summary recompute in one store
// transaction. The plan is validated against the order before any container
// is mutated, so a failed decision leaves the order untouched.
func (s *Service) decide(
	ctx context.Context,
	actor domain.Actor,
	orderID string,
	kind string,
	plan func(o *domain.Order, items []domain.Container) ([]containerDecision, error),
) (*domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var out *domain.Order
	err := s.store.WithOrderTx(ctx, func(tx ordertx.Repository) error {
		o, err := tx.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return fmt.Errorf("order %s: %w", orderID, apperr.NotFound)
		}
		if !actor.ActsFor(o.Vendor) {
			return fmt.Errorf("order %s belongs to %s: %w", orderID, o.Vendor, apperr.Forbidden)
		}

		items, err := tx.Containers(ctx, orderID)
		if err != nil {
			return err
		}

		decisions, err := plan(o, items)
		if err != nil {
			return err
		}

		stages := make(map[int]domain.TruckingStatus, len(items))
		for _, c := range items {
			stages[c.SequenceNo] = c.TruckingStatus
		}
		for _, d := range decisions {
			a := domain.AcceptanceRejected
			if d.accept {
				a = domain.AcceptanceAccepted
			}
			if err := tx.SetAcceptance(ctx, orderID, d.seq, a); err != nil {
				return err
			}
			if d.accept && stages[d.seq] == domain.StagePendingOrder {
				if err := tx.SetTruckingStatus(ctx, orderID, d.seq, domain.StageConfirmed); err != nil {
					return err
				}
			}
		}

		updated, err := tx.Containers(ctx, orderID)
		if err != nil {
			return err
		}
		status := domain.SummarizeAcceptance(updated)
		if err := tx.SetSummaryStatus(ctx, orderID, status); err != nil {
			return err
		}

		o.SummaryStatus = status
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.countDecision(kind)
	s.logger.Info("order decided",
		logx.String("event", "order_decided"),
		logx.String("order_id", orderID),
		logx.String("decision", kind),
		logx.String("status", string(out.SummaryStatus)),
	)
	return out, nil
}

// Recompute re-derives and stores the summary status of one order. It is a
// repair operation for stores mutated outside the decision flow.
func (s *Service) Recompute(ctx context.Context, orderID string) (domain.OrderStatus, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var status domain.OrderStatus
	err := s.store.WithOrderTx(ctx, func(tx ordertx.Repository) error {
		o, err := tx.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return fmt.Errorf("order %s: %w", orderID, apperr.NotFound)
		}
		items, err := tx.Containers(ctx, orderID)
		if err != nil {
			return err
		}
		status = domain.SummarizeAcceptance(items)
		if status == o.SummaryStatus {
			return nil
		}
		return tx.SetSummaryStatus(ctx, orderID, status)
	})
	if err != nil {
		return "", err
	}
	return status, nil
}
