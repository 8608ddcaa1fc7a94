package repository

import (
	"context"

	"trucking-planner/internal/domain"
	"trucking-planner/internal/ports/ordertx"
)

// ListFilter narrows an order listing. Empty fields are ignored; From and
// To are inclusive stuffing-date bounds.
type ListFilter struct {
	Vendor string
	From   string
	To     string
}

// Store is the persistence contract of the planner. Two implementations
// exist: Memory (default) and Postgres (selected when a DSN is configured).
type Store interface {
	// SetAvailability overwrites the vendor's entry for a date wholesale.
	SetAvailability(ctx context.Context, date, vendor string, e domain.AvailabilityEntry) error
	// GetAvailability returns the entry, zero-valued when absent.
	GetAvailability(ctx context.Context, date, vendor string) (domain.AvailabilityEntry, error)
	// AvailabilityByDate returns all vendor entries for one date.
	AvailabilityByDate(ctx context.Context, date string) (map[string]domain.AvailabilityEntry, error)
	// AvailabilityBetween returns entries keyed date → vendor for the
	// inclusive date range.
	AvailabilityBetween(ctx context.Context, from, to string) (map[string]map[string]domain.AvailabilityEntry, error)

	// InsertOrder stores a new order together with its container set.
	InsertOrder(ctx context.Context, o *domain.Order, items []domain.Container) error
	// GetOrder returns the order or nil when it does not exist.
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	// ListOrders returns orders matching the filter in creation order.
	ListOrders(ctx context.Context, f ListFilter) ([]domain.Order, error)
	// Containers returns the order's containers in creation order.
	Containers(ctx context.Context, orderID string) ([]domain.Container, error)

	// WithOrderTx runs fn against a transactional view of the store. The
	// closure is expected to validate before mutating; on error the
	// Postgres store rolls back, the Memory store relies on that ordering.
	WithOrderTx(ctx context.Context, fn func(tx ordertx.Repository) error) error

	// Close releases underlying resources.
	Close()
}
