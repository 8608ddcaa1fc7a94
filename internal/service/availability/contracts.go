package availability

import (
	"context"

	"trucking-planner/internal/domain"
)

// ledgerStore defines storage operations required by the availability ledger.
type ledgerStore interface {
	SetAvailability(ctx context.Context, date, vendor string, e domain.AvailabilityEntry) error
	GetAvailability(ctx context.Context, date, vendor string) (domain.AvailabilityEntry, error)
	AvailabilityByDate(ctx context.Context, date string) (map[string]domain.AvailabilityEntry, error)
	AvailabilityBetween(ctx context.Context, from, to string) (map[string]map[string]domain.AvailabilityEntry, error)
}
