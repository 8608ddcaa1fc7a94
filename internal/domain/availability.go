package domain

// AvailabilityEntry holds a vendor's open container slots for one date.
// Entries are overwritten wholesale on each save; a missing entry is
// equivalent to the zero value.
type AvailabilityEntry struct {
	Slots20 int
	Slots40 int
}

// Total returns the combined number of open slots.
func (e AvailabilityEntry) Total() int { return e.Slots20 + e.Slots40 }

// DaySummary aggregates availability across all vendors for one date.
// Busy is set when the total exceeds half of the configured capacity.
type DaySummary struct {
	Date    string
	Slots20 int
	Slots40 int
	Busy    bool
}
