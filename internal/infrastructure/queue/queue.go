package queue

import (
	"context"
	"errors"
	"time"

	"tickethub/admin-api/internal/domain/catalog"
)

// Task identifies one snapshot refresh to perform.
type Task struct {
	Resource catalog.Resource
	QueuedAt time.Time
}

// TaskQueue defines the interface for refresh task queue operations.
type TaskQueue interface {
	// Enqueue adds a task to the queue
	Enqueue(ctx context.Context, task *Task) error

	// Dequeue fetches the next available task, or nil when none is queued
	Dequeue(ctx context.Context) (*Task, error)

	// Depth returns the number of queued tasks
	Depth(ctx context.Context) (int64, error)
}

// ErrQueueFull is returned when the queue cannot accept another task.
var ErrQueueFull = errors.New("refresh queue full")

// MemoryQueue is a bounded in-process task queue. Refresh work is
// best-effort cache warming, so a full queue drops the task instead of
// blocking the scheduler.
type MemoryQueue struct {
	tasks chan *Task
}

// NewMemoryQueue creates a queue holding at most capacity tasks.
func NewMemoryQueue(capacity int) *MemoryQueue {
	if capacity <= 0 {
		capacity = 64
	}
	return &MemoryQueue{tasks: make(chan *Task, capacity)}
}

// Enqueue adds a task without blocking.
func (q *MemoryQueue) Enqueue(ctx context.Context, task *Task) error {
	select {
	case q.tasks <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue returns the next task, or nil when the queue is empty.
func (q *MemoryQueue) Dequeue(ctx context.Context) (*Task, error) {
	select {
	case task := <-q.tasks:
		return task, nil
	default:
		return nil, nil
	}
}

// Depth returns the number of queued tasks.
func (q *MemoryQueue) Depth(ctx context.Context) (int64, error) {
	return int64(len(q.tasks)), nil
}

// Ensure interface compliance.
var _ TaskQueue = (*MemoryQueue)(nil)
