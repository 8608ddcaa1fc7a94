package order

import (
	"context"
	"fmt"

	"trucking-planner/internal/apperr"
	"trucking-planner/internal/domain"
	"trucking-planner/internal/logx"
	"trucking-planner/internal/ports/ordertx"
)

// ContainerUpdate addresses one container of an order with its patch.
type ContainerUpdate struct {
	SequenceNo int
	Patch      domain.ContainerPatch
}

// UpdateContainer applies a partial logistics update to one container.
// Only accepted containers move through the pipeline, and an unknown
// trucking stage rejects the whole update.
func (s *Service) UpdateContainer(ctx context.Context, actor domain.Actor, orderID string, seq int, p domain.ContainerPatch) error {
	return s.updateContainers(ctx, actor, orderID, []ContainerUpdate{{SequenceNo: seq, Patch: p}})
}

// BulkUpdate applies patches to several containers of one order
// atomically: either every patch applies or none does.
func (s *Service) BulkUpdate(ctx context.Context, actor domain.Actor, orderID string, updates []ContainerUpdate) error {
	if len(updates) == 0 {
		return fmt.Errorf("no updates given: %w", apperr.Invalid)
	}
	return s.updateContainers(ctx, actor, orderID, updates)
}

func (s *Service) updateContainers(ctx context.Context, actor domain.Actor, orderID string, updates []ContainerUpdate) error {
	for _, u := range updates {
		if u.Patch.Empty() {
			return fmt.Errorf("container %d: patch carries no fields: %w", u.SequenceNo, apperr.Invalid)
		}
		if ts := u.Patch.TruckingStatus; ts != nil && !ts.Valid() {
			return fmt.Errorf("container %d: unknown trucking status %q: %w", u.SequenceNo, *ts, apperr.Invalid)
		}
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

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
		bySeq := make(map[int]domain.Container, len(items))
		for _, c := range items {
			bySeq[c.SequenceNo] = c
		}

		// Validate the whole batch before touching anything.
		for _, u := range updates {
			c, ok := bySeq[u.SequenceNo]
			if !ok {
				return fmt.Errorf("order %s has no container %d: %w", orderID, u.SequenceNo, apperr.NotFound)
			}
			if c.Acceptance != domain.AcceptanceAccepted {
				return fmt.Errorf("container %d is not accepted: %w", u.SequenceNo, apperr.Invalid)
			}
		}

		for _, u := range updates {
			if err := tx.ApplyContainerPatch(ctx, orderID, u.SequenceNo, u.Patch); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.countContainerUpdate()
	s.logger.Info("containers updated",
		logx.String("event", "containers_updated"),
		logx.String("order_id", orderID),
		logx.Int("containers", len(updates)),
	)
	return nil
}
