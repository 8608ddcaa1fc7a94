// Package app assembles the planner from its parts with a dig container
// and runs the HTTP server and the availability worker.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"trucking-planner/internal/config"
	"trucking-planner/internal/http/handlers"
	"trucking-planner/internal/http/pprofserver"
	"trucking-planner/internal/http/router"
	"trucking-planner/internal/logx"
	"trucking-planner/internal/repository"
	"trucking-planner/internal/service/availability"
	"trucking-planner/internal/service/order"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function.
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerStore(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		newMetricSet,
	)
}

// registerStore picks the persistence backend: in-memory by default,
// postgres when the config carries a database host.
func registerStore(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	provider := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (repository.Store, error) {
		if !cfg.DB.Enabled() {
			logger.Info("using in-memory store")
			return repository.NewMemory(), nil
		}
		pool, err := dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		logger.Info("using postgres store", logx.String("host", cfg.DB.Host))
		return repository.NewPostgres(pool), nil
	}
	return provideAll(container, provider)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		func(store repository.Store, cfg *config.Config, logger logx.Logger) *availability.Service {
			return availability.NewService(store, cfg.Vendors, cfg.Calendar.Capacity, cfg.OperationTimeout, logger)
		},
		func(store repository.Store, cfg *config.Config, logger logx.Logger, m *metricSet) *order.Service {
			return order.NewService(store, cfg.OperationTimeout, logger,
				order.WithMetrics(m.OrdersCreated, m.OrderDecisions, m.ContainerUpdates))
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	routerProvider := func(
		cfg *config.Config,
		logger logx.Logger,
		base *handlers.Handlers,
		avail *handlers.AvailabilityHandler,
		ord *handlers.OrderHandler,
		limit rateLimitMiddleware,
	) http.Handler {
		return router.New(router.Deps{
			Logger:       logger,
			Base:         base,
			Availability: avail,
			Orders:       ord,
			RateLimit:    limit,
			Pprof:        pprofserver.Handler(cfg.Pprof.User, cfg.Pprof.Pass),
		})
	}
	return provideAll(container,
		handlers.New,
		handlers.NewAvailabilityUsecase,
		handlers.NewAvailabilityHandler,
		handlers.NewOrderUsecase,
		handlers.NewOrderHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		routerProvider,
		serverProvider,
	)
}
