// Package worker keeps resource snapshots warm: a scheduler enqueues one
// refresh task per resource on an interval and a small pool of workers drains
// the queue.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"tickethub/admin-api/internal/domain/catalog"
	"tickethub/admin-api/internal/infrastructure/queue"
)

// Config contains worker pool configuration.
type Config struct {
	WorkerCount     int
	TaskTimeout     time.Duration
	PollPeriod      time.Duration
	RefreshInterval time.Duration
}

// Pool manages the refresh workers and the scheduler.
type Pool struct {
	workers   []*Worker
	queue     queue.TaskQueue
	refresher Refresher
	cfg       Config
	log       zerolog.Logger
	wg        sync.WaitGroup
	stopChan  chan struct{}
}

// NewPool creates a new worker pool.
func NewPool(taskQueue queue.TaskQueue, refresher Refresher, cfg Config, log zerolog.Logger) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.PollPeriod <= 0 {
		cfg.PollPeriod = 2 * time.Second
	}
	return &Pool{
		queue:     taskQueue,
		refresher: refresher,
		cfg:       cfg,
		log:       log.With().Str("component", "worker-pool").Logger(),
		stopChan:  make(chan struct{}),
	}
}

// Start launches the workers and the refresh scheduler.
func (p *Pool) Start(ctx context.Context) error {
	p.log.Info().Int("worker_count", p.cfg.WorkerCount).Msg("starting worker pool")

	p.workers = make([]*Worker, p.cfg.WorkerCount)
	for i := 0; i < p.cfg.WorkerCount; i++ {
		worker := NewWorker(i+1, p.queue, p.refresher, p.cfg.TaskTimeout, p.cfg.PollPeriod, p.log)
		p.workers[i] = worker

		p.wg.Add(1)
		go func(w *Worker) {
			defer p.wg.Done()
			w.Start(ctx)
		}(worker)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.schedule(ctx)
	}()

	p.log.Info().Msg("worker pool started")

	return nil
}

// Stop gracefully shuts down the scheduler and all workers.
func (p *Pool) Stop() {
	p.log.Info().Msg("stopping worker pool")

	close(p.stopChan)
	for _, worker := range p.workers {
		worker.Stop()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.log.Info().Msg("all workers stopped gracefully")
	case <-time.After(30 * time.Second):
		p.log.Warn().Msg("worker pool shutdown timed out")
	}
}

// QueueDepth returns the current refresh queue depth.
func (p *Pool) QueueDepth(ctx context.Context) (int64, error) {
	return p.queue.Depth(ctx)
}

// schedule enqueues a refresh task per resource immediately and then on
// every refresh interval.
func (p *Pool) schedule(ctx context.Context) {
	p.enqueueAll(ctx)

	ticker := time.NewTicker(p.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopChan:
			return
		case <-ticker.C:
			p.enqueueAll(ctx)
		}
	}
}

func (p *Pool) enqueueAll(ctx context.Context) {
	for _, resource := range catalog.Resources() {
		task := &queue.Task{Resource: resource, QueuedAt: time.Now()}
		if err := p.queue.Enqueue(ctx, task); err != nil {
			p.log.Warn().Err(err).Str("resource", resource.String()).Msg("failed to enqueue refresh task")
		}
	}
}
