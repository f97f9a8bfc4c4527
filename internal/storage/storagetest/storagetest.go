// Package storagetest holds the behaviour every storage.Store backend must share.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CokeFamer_Go/internal/storage"
)

// Run exercises a fresh Store produced by newStore.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		s := newStore(t)
		_, ok, err := s.Get(ctx, "absent")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("put then get", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, "k", []byte(`{"version":6}`)))
		got, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
		assert.JSONEq(t, `{"version":6}`, string(got))
	})

	t.Run("put overwrites", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, "k", []byte("one")))
		require.NoError(t, s.Put(ctx, "k", []byte("two")))
		got, _, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "two", string(got))
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, "k", []byte("v")))
		require.NoError(t, s.Delete(ctx, "k"))
		_, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, s.Delete(ctx, "k"), "deleting a missing key is not an error")
	})

	t.Run("legacy fallback for slot 1 only", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, storage.LegacyKey, []byte("legacy")))

		got, ok, err := storage.LoadSlot(ctx, s, 1)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "legacy", string(got))

		_, ok, err = storage.LoadSlot(ctx, s, 2)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, storage.SaveSlot(ctx, s, 1, []byte("slotted")))
		got, _, err = storage.LoadSlot(ctx, s, 1)
		require.NoError(t, err)
		assert.Equal(t, "slotted", string(got))

		require.NoError(t, storage.DeleteSlot(ctx, s, 1))
		_, ok, err = storage.LoadSlot(ctx, s, 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("slots are independent", func(t *testing.T) {
		s := newStore(t)
		for slot := 1; slot <= storage.MaxSlots; slot++ {
			require.NoError(t, storage.SaveSlot(ctx, s, slot, []byte{byte('0' + slot)}))
		}
		for slot := 1; slot <= storage.MaxSlots; slot++ {
			got, ok, err := storage.LoadSlot(ctx, s, slot)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte{byte('0' + slot)}, got)
		}
	})
}
