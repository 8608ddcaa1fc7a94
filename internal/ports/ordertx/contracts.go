// Package ordertx defines the transactional view of one order aggregate
// (the order plus its containers). A vendor decision and the status
// recompute that follows it run against this interface inside a single
// store transaction, so readers never observe the decision without the
// recomputed summary.
package ordertx

import (
	"context"

	"trucking-planner/internal/domain"
)

// Repository is the order aggregate as seen from inside a transaction.
type Repository interface {
	// GetOrder returns the order or nil when it does not exist.
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	// Containers returns the order's containers in creation order.
	Containers(ctx context.Context, orderID string) ([]domain.Container, error)
	// SetAcceptance writes the vendor decision for one container.
	SetAcceptance(ctx context.Context, orderID string, seq int, a domain.Acceptance) error
	// SetTruckingStatus writes the logistics pipeline stage for one container.
	SetTruckingStatus(ctx context.Context, orderID string, seq int, s domain.TruckingStatus) error
	// ApplyContainerPatch applies a partial logistics update to one container.
	ApplyContainerPatch(ctx context.Context, orderID string, seq int, p domain.ContainerPatch) error
	// SetSummaryStatus writes the derived order-level status.
	SetSummaryStatus(ctx context.Context, orderID string, s domain.OrderStatus) error
}
