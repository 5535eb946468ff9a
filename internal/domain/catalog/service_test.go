package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickethub/admin-api/internal/domain/catalog"
	"tickethub/admin-api/internal/notify"
)

type mockUpstream struct {
	listEventsFunc   func(ctx context.Context, search string) ([]catalog.Event, catalog.Outcome)
	listTicketsFunc  func(ctx context.Context, search string) ([]catalog.Ticket, catalog.Outcome)
	listUsersFunc    func(ctx context.Context, search string) ([]catalog.User, catalog.Outcome)
	listVendorsFunc  func(ctx context.Context, search string) ([]catalog.Vendor, catalog.Outcome)
	listPaymentsFunc func(ctx context.Context, search string) ([]catalog.Payment, catalog.Outcome)
}

func (m *mockUpstream) ListEvents(ctx context.Context, search string) ([]catalog.Event, catalog.Outcome) {
	if m.listEventsFunc != nil {
		return m.listEventsFunc(ctx, search)
	}
	return nil, catalog.Outcome{OK: true}
}

func (m *mockUpstream) ListTickets(ctx context.Context, search string) ([]catalog.Ticket, catalog.Outcome) {
	if m.listTicketsFunc != nil {
		return m.listTicketsFunc(ctx, search)
	}
	return nil, catalog.Outcome{OK: true}
}

func (m *mockUpstream) ListUsers(ctx context.Context, search string) ([]catalog.User, catalog.Outcome) {
	if m.listUsersFunc != nil {
		return m.listUsersFunc(ctx, search)
	}
	return nil, catalog.Outcome{OK: true}
}

func (m *mockUpstream) ListVendors(ctx context.Context, search string) ([]catalog.Vendor, catalog.Outcome) {
	if m.listVendorsFunc != nil {
		return m.listVendorsFunc(ctx, search)
	}
	return nil, catalog.Outcome{OK: true}
}

func (m *mockUpstream) ListPayments(ctx context.Context, search string) ([]catalog.Payment, catalog.Outcome) {
	if m.listPaymentsFunc != nil {
		return m.listPaymentsFunc(ctx, search)
	}
	return nil, catalog.Outcome{OK: true}
}

type recordingNotifier struct {
	levels   []notify.Level
	messages []string
}

func (r *recordingNotifier) Notify(_ context.Context, level notify.Level, message string) {
	r.levels = append(r.levels, level)
	r.messages = append(r.messages, message)
}

func TestService_ListEventsLive(t *testing.T) {
	upstream := &mockUpstream{
		listEventsFunc: func(_ context.Context, search string) ([]catalog.Event, catalog.Outcome) {
			assert.Equal(t, "jazz", search)
			return []catalog.Event{{ID: "e1", Name: "Jazz Night"}}, catalog.Outcome{OK: true}
		},
	}
	notifier := &recordingNotifier{}
	service := catalog.NewService(upstream, notifier, zerolog.Nop())

	result, err := service.ListEvents(context.Background(), "jazz")

	require.NoError(t, err)
	assert.False(t, result.Stale)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Jazz Night", result.Records[0].Name)
	assert.Empty(t, notifier.messages, "successful fetches raise no notification")
}

func TestService_FailureFallsBackToSnapshot(t *testing.T) {
	healthy := true
	upstream := &mockUpstream{
		listEventsFunc: func(_ context.Context, _ string) ([]catalog.Event, catalog.Outcome) {
			if healthy {
				return []catalog.Event{{ID: "e1"}}, catalog.Outcome{OK: true}
			}
			return nil, catalog.Outcome{OK: false, Message: "backend down", Err: "connection refused"}
		},
	}
	notifier := &recordingNotifier{}
	service := catalog.NewService(upstream, notifier, zerolog.Nop())

	// Warm the snapshot with an unfiltered fetch.
	_, err := service.ListEvents(context.Background(), "")
	require.NoError(t, err)

	healthy = false
	result, err := service.ListEvents(context.Background(), "")

	require.NoError(t, err, "a populated snapshot keeps the listing alive")
	assert.True(t, result.Stale)
	assert.Equal(t, "backend down", result.Message)
	assert.False(t, result.CapturedAt.IsZero())
	require.Len(t, result.Records, 1)
	assert.Equal(t, "e1", result.Records[0].ID)

	require.Len(t, notifier.messages, 1)
	assert.Equal(t, notify.LevelError, notifier.levels[0])
	assert.Equal(t, "backend down", notifier.messages[0])
}

func TestService_FailureWithoutSnapshotIsAnError(t *testing.T) {
	upstream := &mockUpstream{
		listUsersFunc: func(_ context.Context, _ string) ([]catalog.User, catalog.Outcome) {
			return nil, catalog.Outcome{OK: false, Message: "backend down"}
		},
	}
	notifier := &recordingNotifier{}
	service := catalog.NewService(upstream, notifier, zerolog.Nop())

	_, err := service.ListUsers(context.Background(), "")

	require.Error(t, err)
	assert.EqualError(t, err, "backend down")
	require.Len(t, notifier.messages, 1)
}

func TestService_FilteredFetchSkipsSnapshot(t *testing.T) {
	healthy := true
	upstream := &mockUpstream{
		listEventsFunc: func(_ context.Context, search string) ([]catalog.Event, catalog.Outcome) {
			if !healthy {
				return nil, catalog.Outcome{OK: false, Message: "backend down"}
			}
			if search != "" {
				return []catalog.Event{{ID: "filtered"}}, catalog.Outcome{OK: true}
			}
			return []catalog.Event{{ID: "full-1"}, {ID: "full-2"}}, catalog.Outcome{OK: true}
		},
	}
	service := catalog.NewService(upstream, &recordingNotifier{}, zerolog.Nop())

	// A filtered success must not overwrite the snapshot...
	_, err := service.ListEvents(context.Background(), "")
	require.NoError(t, err)
	_, err = service.ListEvents(context.Background(), "x")
	require.NoError(t, err)

	healthy = false
	result, err := service.ListEvents(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, result.Records, 2, "snapshot must hold the unfiltered set")

	// ...and a filtered failure must not be served from it.
	_, err = service.ListEvents(context.Background(), "x")
	require.Error(t, err)
}

func TestService_RefreshWarmsSnapshot(t *testing.T) {
	calls := 0
	upstream := &mockUpstream{
		listVendorsFunc: func(_ context.Context, search string) ([]catalog.Vendor, catalog.Outcome) {
			calls++
			assert.Empty(t, search, "refresh always fetches the unfiltered set")
			return []catalog.Vendor{{ID: "v1"}}, catalog.Outcome{OK: true}
		},
	}
	service := catalog.NewService(upstream, &recordingNotifier{}, zerolog.Nop())

	require.NoError(t, service.Refresh(context.Background(), catalog.ResourceVendors))
	assert.Equal(t, 1, calls)

	age, ok := service.SnapshotAge(catalog.ResourceVendors, time.Now())
	require.True(t, ok)
	assert.GreaterOrEqual(t, age, time.Duration(0))
}

func TestService_RefreshUnknownResource(t *testing.T) {
	service := catalog.NewService(&mockUpstream{}, &recordingNotifier{}, zerolog.Nop())

	err := service.Refresh(context.Background(), catalog.Resource("bogus"))

	require.Error(t, err)
}

func TestService_SnapshotAgeBeforeAnyFetch(t *testing.T) {
	service := catalog.NewService(&mockUpstream{}, &recordingNotifier{}, zerolog.Nop())

	_, ok := service.SnapshotAge(catalog.ResourceTickets, time.Now())

	assert.False(t, ok)
}
