package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent-pipeline/internal/candidate"
)

func TestCacheStore(t *testing.T) {
	ctx := context.Background()

	t.Run("read on empty store", func(t *testing.T) {
		s := NewCacheStore(NewMemory())
		assert.Empty(t, s.Read(ctx))
	})

	t.Run("replace then read", func(t *testing.T) {
		s := NewCacheStore(NewMemory())
		list := []candidate.Candidate{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}
		require.NoError(t, s.Replace(ctx, list))
		got := s.Read(ctx)
		require.Len(t, got, 2)
		assert.Equal(t, "Alice", got[0].Name)
	})

	t.Run("append keeps existing entries first", func(t *testing.T) {
		s := NewCacheStore(NewMemory())
		require.NoError(t, s.Replace(ctx, []candidate.Candidate{{ID: 1}}))
		total, err := s.Append(ctx, []candidate.Candidate{{ID: 2}, {ID: 3}})
		require.NoError(t, err)
		assert.Equal(t, 3, total)

		got := s.Read(ctx)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[2].ID)
	})

	t.Run("prepend puts the new entry first", func(t *testing.T) {
		s := NewCacheStore(NewMemory())
		require.NoError(t, s.Replace(ctx, []candidate.Candidate{{ID: 1}}))
		require.NoError(t, s.Prepend(ctx, candidate.Candidate{ID: 2}))
		got := s.Read(ctx)
		require.Len(t, got, 2)
		assert.Equal(t, int64(2), got[0].ID)
	})

	t.Run("append then clear then read is empty", func(t *testing.T) {
		s := NewCacheStore(NewMemory())
		_, err := s.Append(ctx, []candidate.Candidate{{ID: 1}})
		require.NoError(t, err)
		require.NoError(t, s.Clear(ctx))
		assert.Empty(t, s.Read(ctx))
	})

	t.Run("corrupt snapshot reads as empty", func(t *testing.T) {
		kv := NewMemory()
		require.NoError(t, kv.Set(ctx, CacheKey, []byte("{not json")))
		s := NewCacheStore(kv)
		assert.Empty(t, s.Read(ctx))
	})

	t.Run("valid JSON of the wrong shape reads as empty", func(t *testing.T) {
		kv := NewMemory()
		require.NoError(t, kv.Set(ctx, CacheKey, []byte(`{"something":"else"}`)))
		s := NewCacheStore(kv)
		assert.Empty(t, s.Read(ctx))
	})
}
