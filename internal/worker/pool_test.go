package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickethub/admin-api/internal/domain/catalog"
	"tickethub/admin-api/internal/infrastructure/queue"
	"tickethub/admin-api/internal/worker"
)

type fakeRefresher struct {
	mu        sync.Mutex
	refreshed map[catalog.Resource]int
	err       error
	done      chan struct{}
	want      int
}

func newFakeRefresher(want int) *fakeRefresher {
	return &fakeRefresher{
		refreshed: make(map[catalog.Resource]int),
		done:      make(chan struct{}),
		want:      want,
	}
}

func (f *fakeRefresher) Refresh(_ context.Context, resource catalog.Resource) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.refreshed[resource]++
	total := 0
	for _, n := range f.refreshed {
		total += n
	}
	if total == f.want {
		close(f.done)
	}
	return f.err
}

func (f *fakeRefresher) SnapshotAge(catalog.Resource, time.Time) (time.Duration, bool) {
	return time.Second, true
}

func (f *fakeRefresher) counts() map[catalog.Resource]int {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[catalog.Resource]int, len(f.refreshed))
	for k, v := range f.refreshed {
		out[k] = v
	}
	return out
}

func TestPool_RefreshesEveryResourceOnStart(t *testing.T) {
	refresher := newFakeRefresher(len(catalog.Resources()))
	taskQueue := queue.NewMemoryQueue(16)

	pool := worker.NewPool(taskQueue, refresher, worker.Config{
		WorkerCount:     2,
		TaskTimeout:     time.Second,
		PollPeriod:      5 * time.Millisecond,
		RefreshInterval: time.Hour,
	}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	select {
	case <-refresher.done:
	case <-time.After(3 * time.Second):
		t.Fatalf("initial refresh round did not complete, got %v", refresher.counts())
	}

	counts := refresher.counts()
	for _, resource := range catalog.Resources() {
		assert.Equal(t, 1, counts[resource], "resource %s", resource)
	}
}

func TestPool_KeepsRunningWhenRefreshFails(t *testing.T) {
	refresher := newFakeRefresher(len(catalog.Resources()))
	refresher.err = errors.New("backend down")
	taskQueue := queue.NewMemoryQueue(16)

	pool := worker.NewPool(taskQueue, refresher, worker.Config{
		WorkerCount:     1,
		TaskTimeout:     time.Second,
		PollPeriod:      5 * time.Millisecond,
		RefreshInterval: time.Hour,
	}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	// Every task is still attempted; failures must not stop the worker.
	select {
	case <-refresher.done:
	case <-time.After(3 * time.Second):
		t.Fatalf("failed refreshes stalled the pool, got %v", refresher.counts())
	}
}

func TestPool_StopDrainsCleanly(t *testing.T) {
	refresher := newFakeRefresher(len(catalog.Resources()))
	taskQueue := queue.NewMemoryQueue(16)

	pool := worker.NewPool(taskQueue, refresher, worker.Config{
		WorkerCount:     2,
		TaskTimeout:     time.Second,
		PollPeriod:      5 * time.Millisecond,
		RefreshInterval: time.Hour,
	}, zerolog.Nop())

	require.NoError(t, pool.Start(context.Background()))

	select {
	case <-refresher.done:
	case <-time.After(3 * time.Second):
		t.Fatal("initial refresh round did not complete")
	}

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Stop did not return")
	}

	depth, err := pool.QueueDepth(context.Background())
	require.NoError(t, err)
	assert.Zero(t, depth)
}
