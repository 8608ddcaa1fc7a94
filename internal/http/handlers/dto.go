package handlers

type availabilityRequest struct {
	Slots20 int `json:"slots_20"`
	Slots40 int `json:"slots_40"`
}

type availabilityDTO struct {
	Slots20 int `json:"slots_20"`
	Slots40 int `json:"slots_40"`
	Total   int `json:"total"`
}

type daySummaryDTO struct {
	Date    string `json:"date"`
	Slots20 int    `json:"slots_20"`
	Slots40 int    `json:"slots_40"`
	Busy    bool   `json:"busy"`
}

type createOrderRequest struct {
	Vendor        string `json:"vendor"`
	StuffingDate  string `json:"stuffing_date"`
	ClosingDate   string `json:"closing_date,omitempty"`
	DeliveryNote  string `json:"delivery_note"`
	ShippingPoint string `json:"shipping_point,omitempty"`
	Count20       int    `json:"count_20"`
	Count40       int    `json:"count_40"`
}

type partialAcceptRequest struct {
	Accept20 int `json:"accept_20"`
	Accept40 int `json:"accept_40"`
}

type containerPatchRequest struct {
	ContainerNumber *string `json:"container_number,omitempty"`
	SealNumber      *string `json:"seal_number,omitempty"`
	VehicleNumber   *string `json:"vehicle_number,omitempty"`
	DriverName      *string `json:"driver_name,omitempty"`
	Contact         *string `json:"contact,omitempty"`
	Depot           *string `json:"depot,omitempty"`
	TruckingStatus  *string `json:"trucking_status,omitempty"`
}

type bulkUpdateRequest struct {
	Containers []bulkUpdateItem `json:"containers"`
}

type bulkUpdateItem struct {
	SequenceNo int                   `json:"sequence_no"`
	Patch      containerPatchRequest `json:"patch"`
}

type orderDTO struct {
	ID            string `json:"id"`
	Vendor        string `json:"vendor"`
	StuffingDate  string `json:"stuffing_date"`
	ClosingDate   string `json:"closing_date,omitempty"`
	DeliveryNote  string `json:"delivery_note"`
	ShippingPoint string `json:"shipping_point,omitempty"`
	Count20       int    `json:"count_20"`
	Count40       int    `json:"count_40"`
	CreatedAt     string `json:"created_at"`
	Status        string `json:"status"`
}

type containerDTO struct {
	SequenceNo      int    `json:"sequence_no"`
	Size            string `json:"size"`
	Acceptance      string `json:"acceptance"`
	TruckingStatus  string `json:"trucking_status"`
	ContainerNumber string `json:"container_number,omitempty"`
	SealNumber      string `json:"seal_number,omitempty"`
	VehicleNumber   string `json:"vehicle_number,omitempty"`
	DriverName      string `json:"driver_name,omitempty"`
	Contact         string `json:"contact,omitempty"`
	Depot           string `json:"depot,omitempty"`
}

type orderDetailDTO struct {
	orderDTO
	Containers []containerDTO `json:"containers"`
}

type breakdownDTO struct {
	Size     string `json:"size"`
	Total    int    `json:"total"`
	Accepted int    `json:"accepted"`
	Rejected int    `json:"rejected"`
	Pending  int    `json:"pending"`
}

type reportDTO struct {
	Order      orderDTO       `json:"order"`
	Containers []containerDTO `json:"containers"`
	Breakdown  []breakdownDTO `json:"breakdown"`
	Delivered  int            `json:"delivered"`
	InTransit  int            `json:"in_transit"`
}
