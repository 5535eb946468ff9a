package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"tickethub/admin-api/internal/domain/catalog"
	"tickethub/admin-api/internal/infrastructure/metrics"
	"tickethub/admin-api/internal/infrastructure/queue"
)

// Refresher re-fetches one resource snapshot and reports its age. Implemented
// by the catalog service.
type Refresher interface {
	Refresh(ctx context.Context, resource catalog.Resource) error
	SnapshotAge(resource catalog.Resource, now time.Time) (time.Duration, bool)
}

// Worker processes refresh tasks from the queue.
type Worker struct {
	id          int
	queue       queue.TaskQueue
	refresher   Refresher
	taskTimeout time.Duration
	pollPeriod  time.Duration
	log         zerolog.Logger
	stopChan    chan struct{}
}

// NewWorker creates a background refresh worker.
func NewWorker(
	id int,
	taskQueue queue.TaskQueue,
	refresher Refresher,
	taskTimeout time.Duration,
	pollPeriod time.Duration,
	log zerolog.Logger,
) *Worker {
	return &Worker{
		id:          id,
		queue:       taskQueue,
		refresher:   refresher,
		taskTimeout: taskTimeout,
		pollPeriod:  pollPeriod,
		log:         log.With().Int("worker_id", id).Str("component", "worker").Logger(),
		stopChan:    make(chan struct{}),
	}
}

// Start begins processing tasks from the queue.
func (w *Worker) Start(ctx context.Context) {
	w.log.Info().Msg("worker started")

	ticker := time.NewTicker(w.pollPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("worker stopped by context")
			return
		case <-w.stopChan:
			w.log.Info().Msg("worker stopped")
			return
		case <-ticker.C:
			w.processNextTask(ctx)
		}
	}
}

// Stop gracefully stops the worker.
func (w *Worker) Stop() {
	close(w.stopChan)
}

func (w *Worker) processNextTask(ctx context.Context) {
	task, err := w.queue.Dequeue(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("failed to dequeue task")
		return
	}

	if task == nil {
		// No tasks available
		return
	}

	taskCtx, cancel := context.WithTimeout(ctx, w.taskTimeout)
	defer cancel()

	resource := task.Resource.String()
	if err := w.refresher.Refresh(taskCtx, task.Resource); err != nil {
		metrics.RecordRefreshJob(resource, "failed")
		w.log.Warn().Err(err).Str("resource", resource).Msg("snapshot refresh failed")
		return
	}

	metrics.RecordRefreshJob(resource, "completed")
	if age, ok := w.refresher.SnapshotAge(task.Resource, time.Now()); ok {
		metrics.SetSnapshotAge(resource, age.Seconds())
	}
	w.log.Debug().Str("resource", resource).Msg("snapshot refreshed")
}
