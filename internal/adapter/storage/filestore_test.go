package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestFileStore_SetAndGet(t *testing.T) {
	store := OpenFileStore(storePath(t))

	require.NoError(t, store.Set(map[string]string{"jwt_token": "abc", "current_user_id": "u1"}))

	token, ok := store.Get("jwt_token")
	require.True(t, ok)
	assert.Equal(t, "abc", token)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := storePath(t)

	store := OpenFileStore(path)
	require.NoError(t, store.Set(map[string]string{"jwt_token": "abc"}))

	reopened := OpenFileStore(path)
	token, ok := reopened.Get("jwt_token")
	require.True(t, ok)
	assert.Equal(t, "abc", token)
}

func TestFileStore_RemovePersists(t *testing.T) {
	path := storePath(t)

	store := OpenFileStore(path)
	require.NoError(t, store.Set(map[string]string{"jwt_token": "abc", "current_user_id": "u1"}))
	require.NoError(t, store.Remove("jwt_token", "current_user_id"))

	reopened := OpenFileStore(path)
	_, ok := reopened.Get("jwt_token")
	assert.False(t, ok)
}

func TestFileStore_MissingFileStartsEmpty(t *testing.T) {
	store := OpenFileStore(storePath(t))
	_, ok := store.Get("jwt_token")
	assert.False(t, ok)
}

func TestFileStore_MalformedFileStartsEmpty(t *testing.T) {
	path := storePath(t)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	store := OpenFileStore(path)
	_, ok := store.Get("jwt_token")
	assert.False(t, ok)

	// The store is still usable and writes cleanly over the bad file.
	require.NoError(t, store.Set(map[string]string{"jwt_token": "abc"}))
	token, ok := OpenFileStore(path).Get("jwt_token")
	require.True(t, ok)
	assert.Equal(t, "abc", token)
}
