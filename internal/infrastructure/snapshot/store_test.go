package snapshot_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickethub/admin-api/internal/infrastructure/snapshot"
)

func TestStore_EmptyReportsNoSnapshot(t *testing.T) {
	store := snapshot.New[string]()

	_, _, ok := store.Get()
	assert.False(t, ok)

	_, ok = store.Age(time.Now())
	assert.False(t, ok)
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	store := snapshot.New[string]()
	store.Put([]string{"a", "b"})

	records, capturedAt, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, records)
	assert.WithinDuration(t, time.Now().UTC(), capturedAt, time.Second)
}

func TestStore_GetReturnsACopy(t *testing.T) {
	store := snapshot.New[string]()
	store.Put([]string{"a", "b"})

	records, _, ok := store.Get()
	require.True(t, ok)
	records[0] = "mutated"

	fresh, _, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, "a", fresh[0], "callers must not be able to mutate the snapshot")
}

func TestStore_PutCopiesInput(t *testing.T) {
	store := snapshot.New[string]()
	input := []string{"a"}
	store.Put(input)
	input[0] = "mutated"

	records, _, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, "a", records[0])
}

func TestStore_EmptyCollectionIsStillASnapshot(t *testing.T) {
	store := snapshot.New[int]()
	store.Put(nil)

	records, _, ok := store.Get()
	require.True(t, ok, "an empty upstream collection is a valid snapshot")
	assert.Empty(t, records)
}

func TestStore_AgeGrowsWithTime(t *testing.T) {
	store := snapshot.New[int]()
	store.Put([]int{1})

	age, ok := store.Age(time.Now().Add(time.Minute))
	require.True(t, ok)
	assert.GreaterOrEqual(t, age, time.Minute-time.Second)
}
