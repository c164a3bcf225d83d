package session

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacitajun_backend/internals/helpers/cache"
)

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory()
	store := NewStore(mem)
	userID, lessonID := uuid.New(), uuid.New()

	st, err := store.Load(ctx, userID, lessonID)
	require.NoError(t, err)
	assert.Equal(t, PhaseContent, st.Phase)

	st, err = Apply(st, Start([]uuid.UUID{uuid.New(), uuid.New()}))
	require.NoError(t, err)
	st, err = Apply(st, Select(1))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, userID, st))

	got, err := store.Load(ctx, userID, lessonID)
	require.NoError(t, err)
	assert.Equal(t, st, got)
	assert.Equal(t, 1, mem.Len())

	require.NoError(t, store.Delete(ctx, userID, lessonID))
	got, err = store.Load(ctx, userID, lessonID)
	require.NoError(t, err)
	assert.Equal(t, PhaseContent, got.Phase)
}

func TestStore_CorruptEntryStartsOver(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory()
	userID, lessonID := uuid.New(), uuid.New()
	require.NoError(t, mem.Set(ctx, Key(userID, lessonID), []byte("{not json"), AttemptTTL))

	st, err := NewStore(mem).Load(ctx, userID, lessonID)
	require.NoError(t, err)
	assert.Equal(t, New(lessonID), st)
}
