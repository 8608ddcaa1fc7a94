package order

import (
	"context"
	"fmt"
	"strings"

	"trucking-planner/internal/apperr"
	"trucking-planner/internal/domain"
	"trucking-planner/internal/logx"
)

// CreateInput carries the dispatcher's order request.
type CreateInput struct {
	Vendor        string
	StuffingDate  string
	ClosingDate   string
	DeliveryNote  string
	ShippingPoint string
	Count20       int
	Count40       int
}

func (in CreateInput) validate() error {
	if strings.TrimSpace(in.Vendor) == "" {
		return fmt.Errorf("vendor is required: %w", apperr.Invalid)
	}
	if !domain.ValidDate(in.StuffingDate) {
		return fmt.Errorf("invalid stuffing date %q: %w", in.StuffingDate, apperr.Invalid)
	}
	if in.ClosingDate != "" && !domain.ValidDate(in.ClosingDate) {
		return fmt.Errorf("invalid closing date %q: %w", in.ClosingDate, apperr.Invalid)
	}
	if strings.TrimSpace(in.DeliveryNote) == "" {
		return fmt.Errorf("delivery note is required: %w", apperr.Invalid)
	}
	if in.Count20 < 0 || in.Count40 < 0 {
		return fmt.Errorf("container counts must not be negative: %w", apperr.Invalid)
	}
	if in.Count20+in.Count40 == 0 {
		return fmt.Errorf("order must request at least one container: %w", apperr.Invalid)
	}
	return nil
}

// Create validates the request against the vendor's published availability
// for the stuffing date and, if it fits, materializes the order together
// with its pending containers. Only the dispatcher may place orders.
// Nothing is persisted when any check fails.
func (s *Service) Create(ctx context.Context, actor domain.Actor, in CreateInput) (*domain.Order, []domain.Container, error) {
	if !actor.IsAdmin() {
		return nil, nil, fmt.Errorf("only the dispatcher places orders: %w", apperr.Forbidden)
	}
	if err := in.validate(); err != nil {
		return nil, nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	avail, err := s.store.GetAvailability(ctx, in.StuffingDate, in.Vendor)
	if err != nil {
		return nil, nil, err
	}
	if avail.Total() == 0 {
		return nil, nil, fmt.Errorf("vendor %s has no availability on %s: %w",
			in.Vendor, in.StuffingDate, apperr.Invalid)
	}
	if in.Count20 > avail.Slots20 {
		return nil, nil, fmt.Errorf("requested %d x %s, vendor offers %d: %w",
			in.Count20, domain.Size20, avail.Slots20, apperr.Invalid)
	}
	if in.Count40 > avail.Slots40 {
		return nil, nil, fmt.Errorf("requested %d x %s, vendor offers %d: %w",
			in.Count40, domain.Size40, avail.Slots40, apperr.Invalid)
	}

	o := &domain.Order{
		ID:            s.newID(),
		Vendor:        in.Vendor,
		StuffingDate:  in.StuffingDate,
		ClosingDate:   in.ClosingDate,
		DeliveryNote:  strings.TrimSpace(in.DeliveryNote),
		ShippingPoint: strings.TrimSpace(in.ShippingPoint),
		Requested20:   in.Count20,
		Requested40:   in.Count40,
		CreatedAt:     s.now().UTC(),
		SummaryStatus: domain.OrderPending,
	}
	items := materializeContainers(in.Count20, in.Count40)

	if err := s.store.InsertOrder(ctx, o, items); err != nil {
		return nil, nil, fmt.Errorf("insert order: %w", err)
	}

	s.countOrderCreated()
	s.logger.Info("order created",
		logx.String("event", "order_created"),
		logx.String("order_id", o.ID),
		logx.String("vendor", o.Vendor),
		logx.String("stuffing_date", o.StuffingDate),
		logx.Int("containers", len(items)),
	)
	return o, items, nil
}

// materializeContainers builds the pending container set: all 20ft slots
// first, then the 40ft slots, with 1-based sequence numbers.
func materializeContainers(count20, count40 int) []domain.Container {
	items := make([]domain.Container, 0, count20+count40)
	seq := 1
	for i := 0; i < count20; i++ {
		items = append(items, newContainer(seq, domain.Size20))
		seq++
	}
	for i := 0; i < count40; i++ {
		items = append(items, newContainer(seq, domain.Size40))
		seq++
	}
	return items
}

func newContainer(seq int, size domain.ContainerSize) domain.Container {
	return domain.Container{
		SequenceNo:     seq,
		Size:           size,
		Acceptance:     domain.AcceptancePending,
		TruckingStatus: domain.StagePendingOrder,
	}
}
