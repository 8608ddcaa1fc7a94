package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores trucking planner service settings.
type Config struct {
	Port             int
	OperationTimeout time.Duration
	Vendors          []string
	Calendar         Calendar
	DB               DB
	Kafka            Kafka
	RateLimit        RateLimit
	Pprof            Pprof
}

// Calendar stores admin calendar settings.
type Calendar struct {
	// Capacity is the assumed total fleet capacity; a date is flagged
	// busy when published availability exceeds half of it.
	Capacity int
}

// DB stores postgres connection settings. An empty Host selects the
// in-memory store.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// Enabled reports whether a postgres store is configured.
func (d DB) Enabled() bool { return d.Host != "" }

// DSN returns the postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(d.User), url.QueryEscape(d.Pass), d.Host, d.Port, d.Name)
}

// Kafka stores availability events consumer settings. Empty brokers or
// topic disable the worker consumer.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// RateLimit stores per-actor write rate limit settings.
type RateLimit struct {
	Limit  int
	Window time.Duration
}

// Pprof stores basic auth credentials for the profiling endpoints.
// Loopback callers never need them.
type Pprof struct {
	User string
	Pass string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:             defaultPort,
		OperationTimeout: defaultOperationTimeout,
		Vendors:          DefaultVendors(),
		Calendar:         DefaultCalendar(),
		DB:               DefaultDB(),
		Kafka:            DefaultKafka(),
		RateLimit:        DefaultRateLimit(),
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("OPERATION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid OPERATION_TIMEOUT: %w", err)
		}
		cfg.OperationTimeout = d
	}
	if v := os.Getenv("VENDORS"); v != "" {
		cfg.Vendors = splitList(v)
	}
	if v := os.Getenv("CALENDAR_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CALENDAR_CAPACITY: %w", err)
		}
		cfg.Calendar.Capacity = n
	}

	if v := os.Getenv("POSTGRES_HOST"); v != "" {
		cfg.DB.Host = v
	}
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid POSTGRES_PORT: %w", err)
		}
		cfg.DB.Port = v
	}
	if v := os.Getenv("POSTGRES_USER"); v != "" {
		cfg.DB.User = v
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		cfg.DB.Pass = v
	}
	if v := os.Getenv("POSTGRES_DB"); v != "" {
		cfg.DB.Name = v
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		cfg.Kafka.Topic = v
	}
	if v := os.Getenv("KAFKA_GROUP_ID"); v != "" {
		cfg.Kafka.GroupID = v
	}

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT: %w", err)
		}
		cfg.RateLimit.Limit = n
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
		}
		cfg.RateLimit.Window = d
	}

	cfg.Pprof.User = os.Getenv("PPROF_USER")
	cfg.Pprof.Pass = os.Getenv("PPROF_PASSWORD")

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Calendar.Capacity <= 0 {
		return nil, fmt.Errorf("invalid calendar capacity: %d", cfg.Calendar.Capacity)
	}
	if cfg.OperationTimeout <= 0 {
		return nil, fmt.Errorf("invalid operation timeout: %v", cfg.OperationTimeout)
	}
	return cfg, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
