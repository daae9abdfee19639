package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_LoadSaveDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, ok, err := store.Load(ctx, "resolucity_users_v1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, "resolucity_users_v1", []byte(`[{"id":1}]`)))

	value, ok, err := store.Load(ctx, "resolucity_users_v1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":1}]`, string(value))

	require.NoError(t, store.Delete(ctx, "resolucity_users_v1"))

	_, ok, err = store.Load(ctx, "resolucity_users_v1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Save(ctx, "k", []byte(`"old"`)))
	require.NoError(t, store.Save(ctx, "k", []byte(`"new"`)))

	value, ok, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"new"`, string(value))
}

func TestMemory_LoadCopiesValue(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Save(ctx, "k", []byte(`"aaaa"`)))

	value, _, err := store.Load(ctx, "k")
	require.NoError(t, err)
	value[1] = 'z'

	again, _, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"aaaa"`, string(again))
}

func TestMemory_DeleteUnknownKey(t *testing.T) {
	store := NewMemory()
	assert.NoError(t, store.Delete(context.Background(), "nunca_escrito"))
}
