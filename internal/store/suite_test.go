package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runKeyValueStoreSuite checks the behaviour every backend must share.
func runKeyValueStoreSuite(t *testing.T, newStore func(t *testing.T) KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("absent key", func(t *testing.T) {
		s := newStore(t)

		value, found, err := s.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStore(t)

		require.NoError(t, s.Set(ctx, "apiKey", "record-1"))

		value, found, err := s.Get(ctx, "apiKey")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "record-1", value)
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := newStore(t)

		require.NoError(t, s.Set(ctx, "apiKey", "first"))
		require.NoError(t, s.Set(ctx, "apiKey", "second"))

		value, found, err := s.Get(ctx, "apiKey")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "second", value)
	})

	t.Run("empty value is stored", func(t *testing.T) {
		s := newStore(t)

		require.NoError(t, s.Set(ctx, "apiKey", ""))

		value, found, err := s.Get(ctx, "apiKey")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Empty(t, value)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		s := newStore(t)

		require.NoError(t, s.Set(ctx, "apiKey", "record"))
		require.NoError(t, s.Remove(ctx, "apiKey"))
		require.NoError(t, s.Remove(ctx, "apiKey"))
		require.NoError(t, s.Remove(ctx, "never-set"))

		_, found, err := s.Get(ctx, "apiKey")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := newStore(t)

		require.NoError(t, s.Set(ctx, "a", "1"))
		require.NoError(t, s.Set(ctx, "b", "2"))
		require.NoError(t, s.Remove(ctx, "a"))

		value, found, err := s.Get(ctx, "b")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "2", value)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		s := newStore(t)

		_, _, err := s.Get(ctx, "")
		assert.ErrorIs(t, err, ErrStorage)
		assert.ErrorIs(t, err, ErrEmptyKey)
		assert.ErrorIs(t, s.Set(ctx, "", "v"), ErrEmptyKey)
		assert.ErrorIs(t, s.Remove(ctx, ""), ErrEmptyKey)
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := newStore(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := s.Set(cancelled, "apiKey", "record")
		assert.ErrorIs(t, err, ErrStorage)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("concurrent writers", func(t *testing.T) {
		s := newStore(t)

		var wg sync.WaitGroup
		for i := range 8 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.NoError(t, s.Set(ctx, "apiKey", fmt.Sprintf("record-%d", i)))
				_, _, err := s.Get(ctx, "apiKey")
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		value, found, err := s.Get(ctx, "apiKey")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Contains(t, value, "record-")
	})
}
