package handlers

import (
	"context"
	"time"

	"trucking-planner/internal/domain"
	"trucking-planner/internal/repository"
	"trucking-planner/internal/service/availability"
	"trucking-planner/internal/service/order"
)

type availabilityUsecase interface {
	Set(ctx context.Context, actor domain.Actor, date string, e domain.AvailabilityEntry) error
	Get(ctx context.Context, date, vendor string) (domain.AvailabilityEntry, error)
	ByDate(ctx context.Context, date string) (map[string]domain.AvailabilityEntry, error)
	MonthSummary(ctx context.Context, year int, month time.Month) ([]domain.DaySummary, error)
}

// NewAvailabilityUsecase wires the availability service into its handler.
func NewAvailabilityUsecase(svc *availability.Service) availabilityUsecase {
	return svc
}

type orderUsecase interface {
	Create(ctx context.Context, actor domain.Actor, in order.CreateInput) (*domain.Order, []domain.Container, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Order, []domain.Container, error)
	List(ctx context.Context, actor domain.Actor, f repository.ListFilter) ([]domain.Order, error)
	Breakdown(ctx context.Context, actor domain.Actor, id string) ([]domain.SizeBreakdown, error)
	BuildReport(ctx context.Context, actor domain.Actor, id string) (*order.Report, error)
	AcceptAll(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	RejectAll(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	PartialAccept(ctx context.Context, actor domain.Actor, orderID string, accept20, accept40 int) (*domain.Order, error)
	UpdateContainer(ctx context.Context, actor domain.Actor, orderID string, seq int, p domain.ContainerPatch) error
	BulkUpdate(ctx context.Context, actor domain.Actor, orderID string, updates []order.ContainerUpdate) error
}

// NewOrderUsecase wires the order service into its handler.
func NewOrderUsecase(svc *order.Service) orderUsecase {
	return svc
}
