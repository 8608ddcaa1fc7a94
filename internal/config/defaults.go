package config

import "time"

const (
	defaultPort             = 8080
	defaultOperationTimeout = 3 * time.Second
)

// Assumed fleet capacity used for calendar busy coloring.
var defaultCalendar = Calendar{Capacity: 156}

var defaultVendors = []string{
	"KAMBING", "BINTANG TIMUR", "CAHAYA LOGISTIK", "MAJU JAYA",
}

// Empty host: the service runs on the in-memory store.
var defaultDB = DB{
	Host: "",
	Port: "5432",
	User: "planner",
	Pass: "planner",
	Name: "trucking",
}

var defaultKafka = Kafka{
	Brokers: nil,
	Topic:   "vendor-availability",
	GroupID: "trucking-planner",
}

var defaultRateLimit = RateLimit{
	Limit:  20,
	Window: time.Second,
}

// DefaultPort returns the default port.
func DefaultPort() int { return defaultPort }

// DefaultCalendar returns the default calendar settings.
func DefaultCalendar() Calendar { return defaultCalendar }

// DefaultVendors returns a copy of the default vendor list.
func DefaultVendors() []string {
	out := make([]string, len(defaultVendors))
	copy(out, defaultVendors)
	return out
}

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultKafka returns the default availability consumer settings.
func DefaultKafka() Kafka { return defaultKafka }

// DefaultRateLimit returns the default write rate limit settings.
func DefaultRateLimit() RateLimit { return defaultRateLimit }
