package order

import (
	"context"

	"trucking-planner/internal/domain"
	"trucking-planner/internal/ports/ordertx"
	"trucking-planner/internal/repository"
)

// orderStore is the slice of the store the order service depends on.
type orderStore interface {
	GetAvailability(ctx context.Context, date, vendor string) (domain.AvailabilityEntry, error)
	InsertOrder(ctx context.Context, o *domain.Order, items []domain.Container) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, f repository.ListFilter) ([]domain.Order, error)
	Containers(ctx context.Context, orderID string) ([]domain.Container, error)
	WithOrderTx(ctx context.Context, fn func(tx ordertx.Repository) error) error
}
