package app

import (
	"context"
	"fmt"

	"go.uber.org/dig"

	"trucking-planner/internal/config"
	"trucking-planner/internal/logx"
	"trucking-planner/internal/service/availability"
	"trucking-planner/internal/service/events"
	"trucking-planner/internal/transport/kafka"
)

// MustBuildWorkerContainer builds the DI container of the availability
// events worker.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

// MustBuildWorker builds and returns the worker dig container.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
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
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(svc *availability.Service, logger logx.Logger, m *metricSet) *events.Processor {
			return events.NewProcessor(svc, logger, m.AvailabilityEvents)
		},
		makeAvailabilityHandler,
		func(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, h)
		},
	)
}

func makeAvailabilityHandler(p *events.Processor) kafka.HandleFunc {
	return p.Handle
}
