package handlers

import (
	"time"

	"trucking-planner/internal/domain"
	"trucking-planner/internal/service/order"
)

func (r createOrderRequest) toModel() order.CreateInput {
	return order.CreateInput{
		Vendor:        r.Vendor,
		StuffingDate:  r.StuffingDate,
		ClosingDate:   r.ClosingDate,
		DeliveryNote:  r.DeliveryNote,
		ShippingPoint: r.ShippingPoint,
		Count20:       r.Count20,
		Count40:       r.Count40,
	}
}

func (r containerPatchRequest) toModel() domain.ContainerPatch {
	p := domain.ContainerPatch{
		ContainerNumber: r.ContainerNumber,
		SealNumber:      r.SealNumber,
		VehicleNumber:   r.VehicleNumber,
		DriverName:      r.DriverName,
		Contact:         r.Contact,
		Depot:           r.Depot,
	}
	if r.TruckingStatus != nil {
		ts := domain.TruckingStatus(*r.TruckingStatus)
		p.TruckingStatus = &ts
	}
	return p
}

func entryToResponse(e domain.AvailabilityEntry) availabilityDTO {
	return availabilityDTO{
		Slots20: e.Slots20,
		Slots40: e.Slots40,
		Total:   e.Total(),
	}
}

func daysToResponse(days []domain.DaySummary) []daySummaryDTO {
	out := make([]daySummaryDTO, 0, len(days))
	for _, d := range days {
		out = append(out, daySummaryDTO{
			Date:    d.Date,
			Slots20: d.Slots20,
			Slots40: d.Slots40,
			Busy:    d.Busy,
		})
	}
	return out
}

func orderToResponse(o domain.Order) orderDTO {
	return orderDTO{
		ID:            o.ID,
		Vendor:        o.Vendor,
		StuffingDate:  o.StuffingDate,
		ClosingDate:   o.ClosingDate,
		DeliveryNote:  o.DeliveryNote,
		ShippingPoint: o.ShippingPoint,
		Count20:       o.Requested20,
		Count40:       o.Requested40,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		Status:        string(o.SummaryStatus),
	}
}

func ordersToResponse(list []domain.Order) []orderDTO {
	out := make([]orderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, orderToResponse(o))
	}
	return out
}

func containerToResponse(c domain.Container) containerDTO {
	return containerDTO{
		SequenceNo:      c.SequenceNo,
		Size:            string(c.Size),
		Acceptance:      string(c.Acceptance),
		TruckingStatus:  string(c.TruckingStatus),
		ContainerNumber: c.ContainerNumber,
		SealNumber:      c.SealNumber,
		VehicleNumber:   c.VehicleNumber,
		DriverName:      c.DriverName,
		Contact:         c.Contact,
		Depot:           c.Depot,
	}
}

func containersToResponse(list []domain.Container) []containerDTO {
	out := make([]containerDTO, 0, len(list))
	for _, c := range list {
		out = append(out, containerToResponse(c))
	}
	return out
}

func breakdownToResponse(list []domain.SizeBreakdown) []breakdownDTO {
	out := make([]breakdownDTO, 0, len(list))
	for _, b := range list {
		out = append(out, breakdownDTO{
			Size:     string(b.Size),
			Total:    b.Total,
			Accepted: b.Accepted,
			Rejected: b.Rejected,
			Pending:  b.Pending,
		})
	}
	return out
}

func reportToResponse(r *order.Report) reportDTO {
	return reportDTO{
		Order:      orderToResponse(r.Order),
		Containers: containersToResponse(r.Containers),
		Breakdown:  breakdownToResponse(r.Breakdown),
		Delivered:  r.Delivered,
		InTransit:  r.InTransit,
	}
}
