package domain

import "time"

// DateFormat is the wire format for stuffing and closing dates.
const DateFormat = "2006-01-02"

// ValidDate reports whether s is a valid YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// Order represents a dispatcher order placed against one vendor's availability.
type Order struct {
	ID            string
	Vendor        string
	StuffingDate  string
	ClosingDate   string
	DeliveryNote  string
	ShippingPoint string
	Requested20   int
	Requested40   int
	CreatedAt     time.Time
	SummaryStatus OrderStatus
}

// Container represents a single container slot belonging to an order.
// SequenceNo is 1-based and unique within the order.
type Container struct {
	SequenceNo      int
	Size            ContainerSize
	Acceptance      Acceptance
	TruckingStatus  TruckingStatus
	ContainerNumber string
	SealNumber      string
	VehicleNumber   string
	DriverName      string
	Contact         string
	Depot           string
}

// ContainerPatch carries optional logistics fields to update on a container.
// A nil field means “do not change” that attribute.
type ContainerPatch struct {
	ContainerNumber *string
	SealNumber      *string
	VehicleNumber   *string
	DriverName      *string
	Contact         *string
	Depot           *string
	TruckingStatus  *TruckingStatus
}

// Empty reports whether the patch carries no fields at all.
func (p ContainerPatch) Empty() bool {
	return p.ContainerNumber == nil &&
		p.SealNumber == nil &&
		p.VehicleNumber == nil &&
		p.DriverName == nil &&
		p.Contact == nil &&
		p.Depot == nil &&
		p.TruckingStatus == nil
}

// SummarizeAcceptance derives the order summary status from the acceptance
// states of its containers. An empty container set yields OrderPending.
func SummarizeAcceptance(items []Container) OrderStatus {
	var acc, rej, pen int
	for _, c := range items {
		switch c.Acceptance {
		case AcceptanceAccepted:
			acc++
		case AcceptanceRejected:
			rej++
		default:
			pen++
		}
	}
	switch {
	case pen == 0 && acc > 0 && rej == 0:
		return OrderAccepted
	case pen == 0 && rej > 0 && acc == 0:
		return OrderRejected
	case pen == 0 && acc > 0 && rej > 0:
		return OrderPartial
	default:
		return OrderPending
	}
}

// SizeBreakdown holds per-size acceptance counts of one order.
type SizeBreakdown struct {
	Size     ContainerSize
	Total    int
	Accepted int
	Rejected int
	Pending  int
}

// BreakdownBySize computes the acceptance breakdown for each container size.
func BreakdownBySize(items []Container) []SizeBreakdown {
	out := []SizeBreakdown{{Size: Size20}, {Size: Size40}}
	for _, c := range items {
		for i := range out {
			if out[i].Size != c.Size {
				continue
			}
			out[i].Total++
			switch c.Acceptance {
			case AcceptanceAccepted:
				out[i].Accepted++
			case AcceptanceRejected:
				out[i].Rejected++
			default:
				out[i].Pending++
			}
		}
	}
	return out
}
