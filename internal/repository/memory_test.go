package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"trucking-planner/internal/apperr"
	"trucking-planner/internal/domain"
	"trucking-planner/internal/ports/ordertx"
)

func sampleOrder(id, vendor, stuffing string) (*domain.Order, []domain.Container) {
	o := &domain.Order{
		ID:            id,
		Vendor:        vendor,
		StuffingDate:  stuffing,
		ClosingDate:   "2024-06-03",
		DeliveryNote:  "DN0001",
		ShippingPoint: "Jakarta",
		Requested20:   2,
		Requested40:   1,
		CreatedAt:     time.Now().UTC(),
		SummaryStatus: domain.OrderPending,
	}
	items := []domain.Container{
		{SequenceNo: 1, Size: domain.Size20, Acceptance: domain.AcceptancePending, TruckingStatus: domain.StagePendingOrder},
		{SequenceNo: 2, Size: domain.Size20, Acceptance: domain.AcceptancePending, TruckingStatus: domain.StagePendingOrder},
		{SequenceNo: 3, Size: domain.Size40, Acceptance: domain.AcceptancePending, TruckingStatus: domain.StagePendingOrder},
	}
	return o, items
}

func TestMemory_Availability(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()

	e, err := m.GetAvailability(ctx, "2024-06-01", "KAMBING")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e != (domain.AvailabilityEntry{}) {
		t.Fatalf("absent entry should be zero, got %#v", e)
	}

	want := domain.AvailabilityEntry{Slots20: 5, Slots40: 2}
	if err := m.SetAvailability(ctx, "2024-06-01", "KAMBING", want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := m.GetAvailability(ctx, "2024-06-01", "KAMBING")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %#v, got %#v", want, got)
	}

	// overwrite, not increment
	if err := m.SetAvailability(ctx, "2024-06-01", "KAMBING", domain.AvailabilityEntry{Slots20: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ = m.GetAvailability(ctx, "2024-06-01", "KAMBING")
	if got.Slots20 != 1 || got.Slots40 != 0 {
		t.Fatalf("expected wholesale overwrite, got %#v", got)
	}
}

func TestMemory_AvailabilityBetween(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()
	_ = m.SetAvailability(ctx, "2024-06-01", "KAMBING", domain.AvailabilityEntry{Slots20: 5})
	_ = m.SetAvailability(ctx, "2024-06-15", "MAJU JAYA", domain.AvailabilityEntry{Slots40: 3})
	_ = m.SetAvailability(ctx, "2024-07-01", "KAMBING", domain.AvailabilityEntry{Slots20: 9})

	got, err := m.AvailabilityBetween(ctx, "2024-06-01", "2024-06-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(got))
	}
	if got["2024-06-01"]["KAMBING"].Slots20 != 5 {
		t.Fatalf("unexpected range result: %#v", got)
	}
	if _, ok := got["2024-07-01"]; ok {
		t.Fatal("July entry must not be in June range")
	}
}

func TestMemory_InsertAndGetOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()
	o, items := sampleOrder("ORD-1", "KAMBING", "2024-06-01")

	if err := m.InsertOrder(ctx, o, items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.InsertOrder(ctx, o, items); !errors.Is(err, apperr.Conflict) {
		t.Fatalf("expected Conflict on duplicate id, got %v", err)
	}

	got, err := m.GetOrder(ctx, "ORD-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.DeliveryNote != "DN0001" {
		t.Fatalf("unexpected order: %#v", got)
	}

	// returned order is a copy
	got.SummaryStatus = domain.OrderAccepted
	again, _ := m.GetOrder(ctx, "ORD-1")
	if again.SummaryStatus != domain.OrderPending {
		t.Fatal("mutating a returned order must not leak into the store")
	}

	missing, err := m.GetOrder(ctx, "ORD-404")
	if err != nil || missing != nil {
		t.Fatalf("missing order should be nil, nil; got %#v, %v", missing, err)
	}
}

func TestMemory_ListOrders_Filter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()
	o1, i1 := sampleOrder("ORD-1", "KAMBING", "2024-06-01")
	o2, i2 := sampleOrder("ORD-2", "MAJU JAYA", "2024-06-05")
	o3, i3 := sampleOrder("ORD-3", "KAMBING", "2024-07-01")
	_ = m.InsertOrder(ctx, o1, i1)
	_ = m.InsertOrder(ctx, o2, i2)
	_ = m.InsertOrder(ctx, o3, i3)

	all, err := m.ListOrders(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 || all[0].ID != "ORD-1" || all[2].ID != "ORD-3" {
		t.Fatalf("expected creation order, got %#v", all)
	}

	kambing, _ := m.ListOrders(ctx, ListFilter{Vendor: "KAMBING"})
	if len(kambing) != 2 {
		t.Fatalf("expected 2 KAMBING orders, got %d", len(kambing))
	}

	june, _ := m.ListOrders(ctx, ListFilter{From: "2024-06-01", To: "2024-06-30"})
	if len(june) != 2 {
		t.Fatalf("expected 2 June orders, got %d", len(june))
	}

	both, _ := m.ListOrders(ctx, ListFilter{Vendor: "KAMBING", From: "2024-06-01", To: "2024-06-30"})
	if len(both) != 1 || both[0].ID != "ORD-1" {
		t.Fatalf("expected only ORD-1, got %#v", both)
	}
}

func TestMemory_WithOrderTx(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()
	o, items := sampleOrder("ORD-1", "KAMBING", "2024-06-01")
	_ = m.InsertOrder(ctx, o, items)

	err := m.WithOrderTx(ctx, func(tx ordertx.Repository) error {
		if err := tx.SetAcceptance(ctx, "ORD-1", 1, domain.AcceptanceAccepted); err != nil {
			return err
		}
		if err := tx.SetTruckingStatus(ctx, "ORD-1", 1, domain.StageConfirmed); err != nil {
			return err
		}
		return tx.SetSummaryStatus(ctx, "ORD-1", domain.OrderPartial)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := m.Containers(ctx, "ORD-1")
	if got[0].Acceptance != domain.AcceptanceAccepted || got[0].TruckingStatus != domain.StageConfirmed {
		t.Fatalf("tx mutations not applied: %#v", got[0])
	}
	order, _ := m.GetOrder(ctx, "ORD-1")
	if order.SummaryStatus != domain.OrderPartial {
		t.Fatalf("summary not applied: %s", order.SummaryStatus)
	}
}

func TestMemory_TxPatchAndNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()
	o, items := sampleOrder("ORD-1", "KAMBING", "2024-06-01")
	_ = m.InsertOrder(ctx, o, items)

	driver := "Budi"
	stage := domain.StageLoadingAtDepot
	err := m.WithOrderTx(ctx, func(tx ordertx.Repository) error {
		return tx.ApplyContainerPatch(ctx, "ORD-1", 2, domain.ContainerPatch{
			DriverName:     &driver,
			TruckingStatus: &stage,
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := m.Containers(ctx, "ORD-1")
	if got[1].DriverName != "Budi" || got[1].TruckingStatus != domain.StageLoadingAtDepot {
		t.Fatalf("patch not applied: %#v", got[1])
	}
	if got[1].ContainerNumber != "" {
		t.Fatal("nil patch fields must not change values")
	}

	err = m.WithOrderTx(ctx, func(tx ordertx.Repository) error {
		return tx.SetAcceptance(ctx, "ORD-1", 99, domain.AcceptanceAccepted)
	})
	if !errors.Is(err, apperr.NotFound) {
		t.Fatalf("expected NotFound for unknown seq, got %v", err)
	}

	err = m.WithOrderTx(ctx, func(tx ordertx.Repository) error {
		return tx.SetSummaryStatus(ctx, "ORD-404", domain.OrderAccepted)
	})
	if !errors.Is(err, apperr.NotFound) {
		t.Fatalf("expected NotFound for unknown order, got %v", err)
	}
}
