package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
	"github.com/fieldwork-labs/nfield-cli/internal/core/ports/driven"
	"github.com/fieldwork-labs/nfield-cli/internal/logger"
)

const (
	// DefaultPollInterval is how often a waited task is re-fetched.
	DefaultPollInterval = 2 * time.Second

	// MinPollInterval is the floor applied to configured intervals so a
	// misconfigured value can never spin against the API.
	MinPollInterval = 500 * time.Millisecond
)

// TaskWaiter polls background tasks until they reach a terminal state.
type TaskWaiter struct {
	tasks        driven.BackgroundTasksService
	pollInterval time.Duration
}

// NewTaskWaiter creates a waiter over the given task service. A
// non-positive interval falls back to DefaultPollInterval.
func NewTaskWaiter(tasks driven.BackgroundTasksService, pollInterval time.Duration) *TaskWaiter {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	if pollInterval < MinPollInterval {
		pollInterval = MinPollInterval
	}
	return &TaskWaiter{tasks: tasks, pollInterval: pollInterval}
}

// Await polls the task until it reaches a terminal status or ctx is
// done. It returns the final task record. A Faulted task yields
// domain.ErrTaskFaulted; a ctx deadline yields domain.ErrTaskTimeout.
func (w *TaskWaiter) Await(ctx context.Context, taskID string) (*domain.BackgroundTask, error) {
	if taskID == "" {
		return nil, fmt.Errorf("%w: task id is required", domain.ErrInvalidInput)
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		task, err := w.tasks.Get(ctx, taskID)
		if err != nil {
			return nil, fmt.Errorf("poll task %s: %w", taskID, err)
		}

		logger.Debug("task %s status %s", taskID, task.Status)

		if task.Status.Terminal() {
			if !task.Status.Succeeded() {
				return task, fmt.Errorf("%w: task %s", domain.ErrTaskFaulted, taskID)
			}
			return task, nil
		}

		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return task, fmt.Errorf("%w: task %s", domain.ErrTaskTimeout, taskID)
			}
			return task, ctx.Err()
		case <-ticker.C:
		}
	}
}

// AwaitAll waits on several tasks concurrently and returns the final
// records in the same order as the IDs. The first failure cancels the
// remaining waits.
func (w *TaskWaiter) AwaitAll(ctx context.Context, taskIDs []string) ([]*domain.BackgroundTask, error) {
	results := make([]*domain.BackgroundTask, len(taskIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range taskIDs {
		g.Go(func() error {
			task, err := w.Await(gctx, id)
			if err != nil {
				return err
			}
			results[i] = task
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
