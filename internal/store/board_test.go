package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent-pipeline/internal/candidate"
)

func boardCandidates() []candidate.Candidate {
	return []candidate.Candidate{
		{ID: 1, Name: "Alice", Status: candidate.StatusSourced},
		{ID: 2, Name: "Bob", Status: candidate.StatusSourced},
		{ID: 3, Name: "Carol", Status: candidate.StatusInterview},
	}
}

func TestBoardFrom(t *testing.T) {
	b := BoardFrom(boardCandidates())

	assert.Len(t, b[candidate.StatusSourced], 2)
	assert.Len(t, b[candidate.StatusInterview], 1)
	assert.Equal(t, 3, b.Total())

	// every bucket exists even when empty
	for _, s := range candidate.AllStatuses {
		assert.NotNil(t, b[s])
	}
}

func TestBoardStore_LoadAndRebuild(t *testing.T) {
	ctx := context.Background()

	t.Run("load on empty store is nil", func(t *testing.T) {
		s := NewBoardStore(NewMemory())
		assert.Nil(t, s.Load(ctx))
	})

	t.Run("corrupt board loads as nil", func(t *testing.T) {
		kv := NewMemory()
		require.NoError(t, kv.Set(ctx, BoardKey, []byte("][")))
		s := NewBoardStore(kv)
		assert.Nil(t, s.Load(ctx))
	})

	t.Run("rebuild persists and reloads", func(t *testing.T) {
		s := NewBoardStore(NewMemory())
		_, err := s.RebuildFrom(ctx, boardCandidates())
		require.NoError(t, err)

		b := s.Load(ctx)
		require.NotNil(t, b)
		assert.Equal(t, 3, b.Total())
		assert.Equal(t, "Alice", b[candidate.StatusSourced][0].Name)
	})

	t.Run("rebuild discards previous arrangement", func(t *testing.T) {
		s := NewBoardStore(NewMemory())
		b, err := s.RebuildFrom(ctx, boardCandidates())
		require.NoError(t, err)
		_, err = s.Move(ctx, b, 1, candidate.StatusHired)
		require.NoError(t, err)

		_, err = s.RebuildFrom(ctx, boardCandidates())
		require.NoError(t, err)
		b = s.Load(ctx)
		assert.Len(t, b[candidate.StatusHired], 0)
		assert.Len(t, b[candidate.StatusSourced], 2)
	})
}

func TestBoardStore_Move(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*BoardStore, Board, *Memory) {
		kv := NewMemory()
		s := NewBoardStore(kv)
		b, err := s.RebuildFrom(ctx, boardCandidates())
		require.NoError(t, err)
		return s, b, kv
	}

	t.Run("move updates status and prepends to destination", func(t *testing.T) {
		s, b, _ := setup(t)
		moved, err := s.Move(ctx, b, 2, candidate.StatusOffer)
		require.NoError(t, err)
		assert.True(t, moved)

		assert.Len(t, b[candidate.StatusSourced], 1)
		assert.Equal(t, int64(1), b[candidate.StatusSourced][0].ID)
		require.Len(t, b[candidate.StatusOffer], 1)
		assert.Equal(t, int64(2), b[candidate.StatusOffer][0].ID)
		assert.Equal(t, candidate.StatusOffer, b[candidate.StatusOffer][0].Status)
		assert.Equal(t, 3, b.Total())

		// write-through: the persisted board reflects the move
		reloaded := s.Load(ctx)
		assert.Equal(t, int64(2), reloaded[candidate.StatusOffer][0].ID)
	})

	t.Run("destination prepend puts the mover at the head", func(t *testing.T) {
		s, b, _ := setup(t)
		_, err := s.Move(ctx, b, 3, candidate.StatusSourced)
		require.NoError(t, err)
		require.Len(t, b[candidate.StatusSourced], 3)
		assert.Equal(t, int64(3), b[candidate.StatusSourced][0].ID)
	})

	t.Run("move to the current stage is a byte-for-byte no-op", func(t *testing.T) {
		s, b, kv := setup(t)
		before, ok, err := kv.Get(ctx, BoardKey)
		require.NoError(t, err)
		require.True(t, ok)

		moved, err := s.Move(ctx, b, 1, candidate.StatusSourced)
		require.NoError(t, err)
		assert.False(t, moved)

		after, ok, err := kv.Get(ctx, BoardKey)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, before, after)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		s, b, _ := setup(t)
		moved, err := s.Move(ctx, b, 99, candidate.StatusHired)
		require.NoError(t, err)
		assert.False(t, moved)
		assert.Equal(t, 3, b.Total())
	})

	t.Run("nil board is a no-op", func(t *testing.T) {
		s := NewBoardStore(NewMemory())
		moved, err := s.Move(ctx, nil, 1, candidate.StatusHired)
		require.NoError(t, err)
		assert.False(t, moved)
	})
}

func TestBoardStore_Insert(t *testing.T) {
	ctx := context.Background()

	t.Run("no board means no-op", func(t *testing.T) {
		kv := NewMemory()
		s := NewBoardStore(kv)
		require.NoError(t, s.Insert(ctx, candidate.Candidate{ID: 9, Status: candidate.StatusApplied}))
		_, ok, err := kv.Get(ctx, BoardKey)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("insert prepends into the matching bucket", func(t *testing.T) {
		s := NewBoardStore(NewMemory())
		_, err := s.RebuildFrom(ctx, boardCandidates())
		require.NoError(t, err)

		require.NoError(t, s.Insert(ctx, candidate.Candidate{ID: 9, Status: candidate.StatusSourced}))
		b := s.Load(ctx)
		require.Len(t, b[candidate.StatusSourced], 3)
		assert.Equal(t, int64(9), b[candidate.StatusSourced][0].ID)
	})
}

func TestBoardStore_Clear(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	s := NewBoardStore(kv)
	_, err := s.RebuildFrom(ctx, boardCandidates())
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx))
	assert.Nil(t, s.Load(ctx))
}
