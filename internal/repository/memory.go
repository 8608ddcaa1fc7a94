package repository

import (
	"context"
	"fmt"
	"sync"

	"trucking-planner/internal/apperr"
	"trucking-planner/internal/domain"
	"trucking-planner/internal/ports/ordertx"
)

// Memory is the in-process Store implementation. All state lives in maps
// guarded by one RWMutex; WithOrderTx holds the write lock for the whole
// closure so a decision and its recompute are observed atomically.
type Memory struct {
	mu           sync.RWMutex
	availability map[string]map[string]domain.AvailabilityEntry
	orders       map[string]*domain.Order
	orderIDs     []string
	containers   map[string][]domain.Container
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		availability: make(map[string]map[string]domain.AvailabilityEntry),
		orders:       make(map[string]*domain.Order),
		containers:   make(map[string][]domain.Container),
	}
}

var _ Store = (*Memory)(nil)

// SetAvailability overwrites the vendor's entry for a date wholesale.
func (m *Memory) SetAvailability(_ context.Context, date, vendor string, e domain.AvailabilityEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	byVendor := m.availability[date]
	if byVendor == nil {
		byVendor = make(map[string]domain.AvailabilityEntry)
		m.availability[date] = byVendor
	}
	byVendor[vendor] = e
	return nil
}

// GetAvailability returns the entry, zero-valued when absent.
func (m *Memory) GetAvailability(_ context.Context, date, vendor string) (domain.AvailabilityEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.availability[date][vendor], nil
}

// AvailabilityByDate returns all vendor entries for one date.
func (m *Memory) AvailabilityByDate(_ context.Context, date string) (map[string]domain.AvailabilityEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]domain.AvailabilityEntry, len(m.availability[date]))
	for v, e := range m.availability[date] {
		out[v] = e
	}
	return out, nil
}

// AvailabilityBetween returns entries keyed date → vendor for the range.
// YYYY-MM-DD strings compare correctly in lexical order.
func (m *Memory) AvailabilityBetween(_ context.Context, from, to string) (map[string]map[string]domain.AvailabilityEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]map[string]domain.AvailabilityEntry)
	for date, byVendor := range m.availability {
		if date < from || date > to {
			continue
		}
		cp := make(map[string]domain.AvailabilityEntry, len(byVendor))
		for v, e := range byVendor {
			cp[v] = e
		}
		out[date] = cp
	}
	return out, nil
}

// InsertOrder stores a new order together with its container set.
func (m *Memory) InsertOrder(_ context.Context, o *domain.Order, items []domain.Container) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[o.ID]; ok {
		return fmt.Errorf("order %s: %w", o.ID, apperr.Conflict)
	}
	clone := *o
	m.orders[o.ID] = &clone
	m.orderIDs = append(m.orderIDs, o.ID)
	m.containers[o.ID] = append([]domain.Container(nil), items...)
	return nil
}

// GetOrder returns the order or nil when it does not exist.
func (m *Memory) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.getOrderLocked(id), nil
}

func (m *Memory) getOrderLocked(id string) *domain.Order {
	o, ok := m.orders[id]
	if !ok {
		return nil
	}
	clone := *o
	return &clone
}

// ListOrders returns orders matching the filter in creation order.
func (m *Memory) ListOrders(_ context.Context, f ListFilter) ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Order, 0, len(m.orderIDs))
	for _, id := range m.orderIDs {
		o := m.orders[id]
		if f.Vendor != "" && o.Vendor != f.Vendor {
			continue
		}
		if f.From != "" && o.StuffingDate < f.From {
			continue
		}
		if f.To != "" && o.StuffingDate > f.To {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

// Containers returns the order's containers in creation order.
func (m *Memory) Containers(_ context.Context, orderID string) ([]domain.Container, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.containersLocked(orderID), nil
}

func (m *Memory) containersLocked(orderID string) []domain.Container {
	items, ok := m.containers[orderID]
	if !ok {
		return nil
	}
	return append([]domain.Container(nil), items...)
}

// WithOrderTx runs fn holding the store's write lock. Mutations apply
// directly; the closure must validate before it mutates.
func (m *Memory) WithOrderTx(_ context.Context, fn func(tx ordertx.Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(memTx{m: m})
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() {}

// memTx gives the tx closure unlocked access; the lock is already held
// by WithOrderTx.
type memTx struct{ m *Memory }

var _ ordertx.Repository = memTx{}

func (t memTx) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	return t.m.getOrderLocked(id), nil
}

func (t memTx) Containers(_ context.Context, orderID string) ([]domain.Container, error) {
	return t.m.containersLocked(orderID), nil
}

func (t memTx) SetAcceptance(_ context.Context, orderID string, seq int, a domain.Acceptance) error {
	c, err := t.find(orderID, seq)
	if err != nil {
		return err
	}
	c.Acceptance = a
	return nil
}

func (t memTx) SetTruckingStatus(_ context.Context, orderID string, seq int, s domain.TruckingStatus) error {
	c, err := t.find(orderID, seq)
	if err != nil {
		return err
	}
	c.TruckingStatus = s
	return nil
}

func (t memTx) ApplyContainerPatch(_ context.Context, orderID string, seq int, p domain.ContainerPatch) error {
	c, err := t.find(orderID, seq)
	if err != nil {
		return err
	}
	if p.ContainerNumber != nil {
		c.ContainerNumber = *p.ContainerNumber
	}
	if p.SealNumber != nil {
		c.SealNumber = *p.SealNumber
	}
	if p.VehicleNumber != nil {
		c.VehicleNumber = *p.VehicleNumber
	}
	if p.DriverName != nil {
		c.DriverName = *p.DriverName
	}
	if p.Contact != nil {
		c.Contact = *p.Contact
	}
	if p.Depot != nil {
		c.Depot = *p.Depot
	}
	if p.TruckingStatus != nil {
		c.TruckingStatus = *p.TruckingStatus
	}
	return nil
}

func (t memTx) SetSummaryStatus(_ context.Context, orderID string, s domain.OrderStatus) error {
	o, ok := t.m.orders[orderID]
	if !ok {
		return fmt.Errorf("order %s: %w", orderID, apperr.NotFound)
	}
	o.SummaryStatus = s
	return nil
}

func (t memTx) find(orderID string, seq int) (*domain.Container, error) {
	items, ok := t.m.containers[orderID]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", orderID, apperr.NotFound)
	}
	for i := range items {
		if items[i].SequenceNo == seq {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("container %s/%d: %w", orderID, seq, apperr.NotFound)
}
