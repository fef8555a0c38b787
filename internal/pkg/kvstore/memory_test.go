package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ReadMissingCollection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Read(ctx, "employees")
	assert.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestMemoryStore_WriteThenRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Write(ctx, "employees", []byte(`[{"id":"emp-1"}]`)))

	data, err := store.Read(ctx, "employees")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"emp-1"}]`, string(data))
}

func TestMemoryStore_ReadReturnsCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Write(ctx, "settings", []byte(`{"a":1}`)))

	data, err := store.Read(ctx, "settings")
	require.NoError(t, err)
	data[0] = 'X'

	fresh, err := store.Read(ctx, "settings")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(fresh))
}

func TestMemoryStore_DeleteMissingIsNoop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	assert.NoError(t, store.Delete(ctx, "nothing"))
}

func TestMemoryStore_List(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Write(ctx, "punishments", []byte(`[]`)))
	require.NoError(t, store.Write(ctx, "attendance", []byte(`[]`)))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"attendance", "punishments"}, names)
}
