package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"trucking-planner/internal/config"
	"trucking-planner/internal/http/handlers"
	"trucking-planner/internal/logx"
	"trucking-planner/internal/repository"
)

func setupTestContainer(t *testing.T) *dig.Container {
	t.Helper()

	c := dig.New()

	providers := []struct {
		name     string
		provider any
	}{
		{"context", func() context.Context { return context.Background() }},
		{"logger", func() logx.Logger { return logx.Nop() }},
		{"config", func() *config.Config {
			return &config.Config{
				Port:             8080,
				OperationTimeout: time.Second,
				Vendors:          []string{"KAMBING"},
				Calendar:         config.Calendar{Capacity: 156},
			}
		}},
		{"store", func() repository.Store { return repository.NewMemory() }},
		{"metrics", newMetricSet},
	}

	for _, p := range providers {
		err := c.Provide(p.provider)
		require.NoErrorf(t, err, "provide %s", p.name)
	}

	require.NoError(t, registerService(c))
	require.NoError(t, registerHTTP(c))

	return c
}

func TestContainerResolvesServer(t *testing.T) {
	c := setupTestContainer(t)

	err := c.Invoke(func(srv *http.Server) {
		require.NotNil(t, srv)
		require.Equal(t, ":8080", srv.Addr)
		require.Greater(t, srv.ReadHeaderTimeout, time.Duration(0))
		require.Greater(t, srv.ReadTimeout, time.Duration(0))
		require.Greater(t, srv.WriteTimeout, time.Duration(0))
		require.Greater(t, srv.IdleTimeout, time.Duration(0))
	})
	require.NoError(t, err)
}

func TestContainerResolvesHandlers(t *testing.T) {
	c := setupTestContainer(t)

	err := c.Invoke(func(
		base *handlers.Handlers,
		avail *handlers.AvailabilityHandler,
		ord *handlers.OrderHandler,
	) {
		require.NotNil(t, base)
		require.NotNil(t, avail)
		require.NotNil(t, ord)
	})
	require.NoError(t, err)
}

func TestContainerServesRequests(t *testing.T) {
	c := setupTestContainer(t)

	err := c.Invoke(func(mux http.Handler) {
		require.NotNil(t, mux)
	})
	require.NoError(t, err)
}

func TestWorkerContainerWithoutKafkaIsNilConsumer(t *testing.T) {
	c := setupTestContainer(t)
	require.NoError(t, registerWorker(c))

	err := runWorker(c)
	require.Error(t, err, "nil consumer must fail loudly")
}

func TestRateLimiterDisabledWhenLimitZero(t *testing.T) {
	cfg := &config.Config{}
	l := newRateLimiter(cfg, newRateLimitClock())
	for i := 0; i < 100; i++ {
		require.True(t, l.Allow("k"))
	}
}
