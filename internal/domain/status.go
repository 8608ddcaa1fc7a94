package domain

type (
	// ContainerSize represents the physical size class of a container.
	ContainerSize string
	// Acceptance represents the vendor decision on a single container.
	Acceptance string
	// OrderStatus represents the derived summary status of an order.
	OrderStatus string
	// TruckingStatus represents a stage of the logistics pipeline.
	TruckingStatus string
)

// List of container sizes
const (
	Size20 ContainerSize = "20ft"
	Size40 ContainerSize = "40ft/HC"
)

// List of per-container acceptance states
const (
	AcceptancePending  Acceptance = "pending"
	AcceptanceAccepted Acceptance = "accepted"
	AcceptanceRejected Acceptance = "rejected"
)

// List of order summary statuses
const (
	OrderPending  OrderStatus = "Pending"
	OrderAccepted OrderStatus = "Accepted"
	OrderRejected OrderStatus = "Rejected"
	OrderPartial  OrderStatus = "Partial"
)

// Logistics pipeline stages, in order. StageGateInPort is terminal.
const (
	StagePendingOrder     TruckingStatus = "Pending Order"
	StageConfirmed        TruckingStatus = "Confirmed"
	StageEnRouteToDepot   TruckingStatus = "En Route to Depot"
	StageLoadingAtDepot   TruckingStatus = "Loading at Depot"
	StageEnRouteToFactory TruckingStatus = "En Route to Factory"
	StageLoadingWarehouse TruckingStatus = "Loading at Warehouse"
	StageGateInPort       TruckingStatus = "Gate In at Port"
)

var pipeline = [...]TruckingStatus{
	StagePendingOrder,
	StageConfirmed,
	StageEnRouteToDepot,
	StageLoadingAtDepot,
	StageEnRouteToFactory,
	StageLoadingWarehouse,
	StageGateInPort,
}

var allowedSizes = [...]ContainerSize{Size20, Size40}

var allowedAcceptances = [...]Acceptance{
	AcceptancePending, AcceptanceAccepted, AcceptanceRejected,
}

// Valid checks if the ContainerSize is a known size.
func (s ContainerSize) Valid() bool {
	for _, v := range allowedSizes {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the Acceptance is a known decision state.
func (a Acceptance) Valid() bool {
	for _, v := range allowedAcceptances {
		if a == v {
			return true
		}
	}
	return false
}

// Valid checks if the TruckingStatus is one of the pipeline stages.
func (t TruckingStatus) Valid() bool {
	for _, v := range pipeline {
		if t == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the stage is the last one of the pipeline.
func (t TruckingStatus) Terminal() bool {
	return t == pipeline[len(pipeline)-1]
}

// PipelineStages returns the ordered logistics pipeline stages.
func PipelineStages() []TruckingStatus {
	out := make([]TruckingStatus, len(pipeline))
	copy(out, pipeline[:])
	return out
}
