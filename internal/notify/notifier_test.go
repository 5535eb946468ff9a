package notify_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickethub/admin-api/internal/notify"
)

func TestHub_RecordsNotifications(t *testing.T) {
	hub := notify.NewHub(zerolog.Nop(), 10)
	ctx := context.Background()

	hub.Notify(ctx, notify.LevelError, "backend down")
	hub.Notify(ctx, notify.LevelInfo, "backend recovered")

	entries := hub.Recent()
	require.Len(t, entries, 2)
	assert.Equal(t, notify.LevelError, entries[0].Level)
	assert.Equal(t, "backend down", entries[0].Message)
	assert.Equal(t, "backend recovered", entries[1].Message)
	assert.False(t, entries[0].RaisedAt.IsZero())
}

func TestHub_EvictsOldestBeyondLimit(t *testing.T) {
	hub := notify.NewHub(zerolog.Nop(), 3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		hub.Notify(ctx, notify.LevelWarn, fmt.Sprintf("msg-%d", i))
	}

	entries := hub.Recent()
	require.Len(t, entries, 3)
	assert.Equal(t, "msg-2", entries[0].Message)
	assert.Equal(t, "msg-4", entries[2].Message)
}

func TestHub_RecentReturnsACopy(t *testing.T) {
	hub := notify.NewHub(zerolog.Nop(), 10)
	hub.Notify(context.Background(), notify.LevelInfo, "original")

	entries := hub.Recent()
	entries[0].Message = "mutated"

	fresh := hub.Recent()
	assert.Equal(t, "original", fresh[0].Message)
}
