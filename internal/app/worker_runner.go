package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/dig"

	"trucking-planner/internal/logx"
	"trucking-planner/internal/repository"
	"trucking-planner/internal/transport/kafka"
)

// WorkerRunner runs the availability events consumer.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner.
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun starts the worker using the provided DI container.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	store repository.Store,
	logger logx.Logger,
	consumer *kafka.Consumer,
) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: worker container misconfigured")
	}
	defer closeWorker(store, logger, consumer)

	logger.Info("trucking-planner-worker started")
	return consumer.Run(ctx)
}

func closeWorker(store repository.Store, logger logx.Logger, consumer *kafka.Consumer) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka close error", logx.Err(err))
	}
	store.Close()
}
