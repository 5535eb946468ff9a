package tokenstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickethub/admin-api/internal/infrastructure/tokenstore"
)

func TestMemory_PersistentWinsOverSession(t *testing.T) {
	store := tokenstore.NewMemory()

	_, ok := store.Token()
	assert.False(t, ok, "empty store must report no token")

	require.NoError(t, store.SetToken(tokenstore.SlotSession, "session-tok"))
	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "session-tok", token)

	require.NoError(t, store.SetToken(tokenstore.SlotPersistent, "persistent-tok"))
	token, ok = store.Token()
	require.True(t, ok)
	assert.Equal(t, "persistent-tok", token, "persistent slot is consulted first")
}

func TestMemory_Clear(t *testing.T) {
	store := tokenstore.NewMemory()
	require.NoError(t, store.SetToken(tokenstore.SlotPersistent, "a"))
	require.NoError(t, store.SetToken(tokenstore.SlotSession, "b"))

	store.Clear()

	_, ok := store.Token()
	assert.False(t, ok)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	store, err := tokenstore.NewFileStore(path)
	require.NoError(t, err)

	_, ok := store.Token()
	assert.False(t, ok, "missing file means no token")

	require.NoError(t, store.SetToken(tokenstore.SlotPersistent, "persisted"))

	// A fresh store picks the token up from disk.
	reloaded, err := tokenstore.NewFileStore(path)
	require.NoError(t, err)
	token, ok := reloaded.Token()
	require.True(t, ok)
	assert.Equal(t, "persisted", token)
}

func TestFileStore_TrimsWhitespaceOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  tok-42\n"), 0o600))

	store, err := tokenstore.NewFileStore(path)
	require.NoError(t, err)

	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-42", token)
}

func TestFileStore_SessionSlotStaysOffDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	store, err := tokenstore.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetToken(tokenstore.SlotSession, "ephemeral"))

	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "ephemeral", token)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "session tokens must not be written to disk")
}

func TestFileStore_ClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	store, err := tokenstore.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetToken(tokenstore.SlotPersistent, "persisted"))

	store.Clear()

	_, ok := store.Token()
	assert.False(t, ok)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
