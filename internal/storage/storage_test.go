package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LukeFitzGit/MyGymLog/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestStore_GetAbsentKey(t *testing.T) {
	store := openTestStore(t)

	value, found, err := store.Get(context.Background(), storage.KeyLastDate)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestStore_SetAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeyLastDate, "1/1/2024"))

	value, found, err := store.Get(ctx, storage.KeyLastDate)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "1/1/2024", value)
}

func TestStore_SetOverwrites(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeyCurrentWorkout, `[{"exercise":"Squat"}]`))
	require.NoError(t, store.Set(ctx, storage.KeyCurrentWorkout, `[]`))

	value, found, err := store.Get(ctx, storage.KeyCurrentWorkout)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, value)
}

func TestStore_SetMulti(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeyLastDate, "1/1/2024"))

	err := store.SetMulti(ctx, map[string]string{
		storage.KeyLastDate:       "2/1/2024",
		storage.KeyCurrentWorkout: `[]`,
		storage.KeyHistory:        `[{"date":"1/1/2024","data":[]}]`,
	})
	require.NoError(t, err)

	for key, want := range map[string]string{
		storage.KeyLastDate:       "2/1/2024",
		storage.KeyCurrentWorkout: `[]`,
		storage.KeyHistory:        `[{"date":"1/1/2024","data":[]}]`,
	} {
		value, found, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, found, key)
		assert.Equal(t, want, value, key)
	}
}
