package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKV(t *testing.T) {
	ctx := context.Background()

	newStore := func(t *testing.T) *File {
		f, err := NewFile(t.TempDir())
		require.NoError(t, err)
		return f
	}

	t.Run("get on missing key", func(t *testing.T) {
		f := newStore(t)
		_, ok, err := f.Get(ctx, CacheKey)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		f := newStore(t)
		require.NoError(t, f.Set(ctx, CacheKey, []byte(`{"ts":1}`)))
		got, ok, err := f.Get(ctx, CacheKey)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []byte(`{"ts":1}`), got)
	})

	t.Run("overwrite wins", func(t *testing.T) {
		f := newStore(t)
		require.NoError(t, f.Set(ctx, BoardKey, []byte("one")))
		require.NoError(t, f.Set(ctx, BoardKey, []byte("two")))
		got, _, err := f.Get(ctx, BoardKey)
		require.NoError(t, err)
		assert.Equal(t, []byte("two"), got)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		f := newStore(t)
		require.NoError(t, f.Set(ctx, CacheKey, []byte("x")))
		require.NoError(t, f.Delete(ctx, CacheKey))
		require.NoError(t, f.Delete(ctx, CacheKey))
		_, ok, err := f.Get(ctx, CacheKey)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("keys with separators stay inside the data dir", func(t *testing.T) {
		f := newStore(t)
		require.NoError(t, f.Set(ctx, "weird/../key", []byte("x")))
		got, ok, err := f.Get(ctx, "weird/../key")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []byte("x"), got)
	})
}
