package events

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"trucking-planner/internal/apperr"
	"trucking-planner/internal/domain"
	"trucking-planner/internal/logx"
)

type ledgerStub struct {
	setFn func(ctx context.Context, actor domain.Actor, date string, e domain.AvailabilityEntry) error
}

func (l *ledgerStub) Set(ctx context.Context, actor domain.Actor, date string, e domain.AvailabilityEntry) error {
	return l.setFn(ctx, actor, date, e)
}

func TestHandleAppliesEvent(t *testing.T) {
	t.Parallel()

	var gotActor domain.Actor
	var gotDate string
	var gotEntry domain.AvailabilityEntry
	p := NewProcessor(&ledgerStub{
		setFn: func(_ context.Context, actor domain.Actor, date string, e domain.AvailabilityEntry) error {
			gotActor, gotDate, gotEntry = actor, date, e
			return nil
		},
	}, logx.Nop(), nil)

	msg := []byte(`{"vendor":"KAMBING","date":"2025-03-10","slots_20":5,"slots_40":2}`)
	if err := p.Handle(context.Background(), msg); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if gotActor.Role != domain.RoleVendor || gotActor.Vendor != "KAMBING" {
		t.Fatalf("actor %+v", gotActor)
	}
	if gotDate != "2025-03-10" || gotEntry.Slots20 != 5 || gotEntry.Slots40 != 2 {
		t.Fatalf("applied %s %+v", gotDate, gotEntry)
	}
}

func TestHandleDropsBadEvents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		setErr  error
	}{
		{"malformed json", `{"vendor":`, nil},
		{"rejected by ledger", `{"vendor":"KAMBING","date":"bad-date"}`, fmt.Errorf("bad date: %w", apperr.Invalid)},
		{"forbidden", `{"date":"2025-03-10"}`, fmt.Errorf("no vendor: %w", apperr.Forbidden)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProcessor(&ledgerStub{
				setFn: func(context.Context, domain.Actor, string, domain.AvailabilityEntry) error {
					return tc.setErr
				},
			}, logx.Nop(), nil)
			if err := p.Handle(context.Background(), []byte(tc.payload)); err != nil {
				t.Fatalf("bad events must be dropped, got %v", err)
			}
		})
	}
}

func TestHandleReturnsStoreErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("store down")
	p := NewProcessor(&ledgerStub{
		setFn: func(context.Context, domain.Actor, string, domain.AvailabilityEntry) error {
			return boom
		},
	}, logx.Nop(), nil)

	err := p.Handle(context.Background(), []byte(`{"vendor":"KAMBING","date":"2025-03-10"}`))
	if !errors.Is(err, boom) {
		t.Fatalf("transient error must surface for redelivery, got %v", err)
	}
}
