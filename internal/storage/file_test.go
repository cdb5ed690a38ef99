package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenFileStore_FileNotExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	fs, err := OpenFileStore(path)
	require.NoError(t, err)

	keys, err := fs.Keys(context.Background())
	require.NoError(t, err)
	require.Empty(t, keys)
}

func TestFileStore_SetGetDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	fs, err := OpenFileStore(path)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.Set(ctx, "currentUser", "bob"))

	v, ok, err := fs.Get(ctx, "currentUser")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "bob", v)

	_, ok, err = fs.Get(ctx, "isAdmin")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, fs.Delete(ctx, "currentUser"))
	_, ok, err = fs.Get(ctx, "currentUser")
	require.NoError(t, err)
	require.False(t, ok)

	// deleting an unset key is not an error
	require.NoError(t, fs.Delete(ctx, "currentUser"))
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	ctx := context.Background()

	fs, err := OpenFileStore(path)
	require.NoError(t, err)
	require.NoError(t, fs.Set(ctx, "loggedIn", "true"))
	require.NoError(t, fs.Set(ctx, "users", `{"bob":"pw1"}`))

	reopened, err := OpenFileStore(path)
	require.NoError(t, err)

	v, ok, err := reopened.Get(ctx, "users")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"bob":"pw1"}`, v)

	keys, err := reopened.Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"loggedIn", "users"}, keys)
}

func TestFileStore_FileIsJSONObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	fs, err := OpenFileStore(path)
	require.NoError(t, err)
	require.NoError(t, fs.Set(context.Background(), "isAdmin", "false"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var data map[string]string
	require.NoError(t, json.Unmarshal(raw, &data))
	require.Equal(t, "false", data["isAdmin"])
}
