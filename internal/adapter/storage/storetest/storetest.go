// Package storetest runs the same behavioral checks against every
// storage.Store implementation.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/its-jojoo/kontakclip/internal/adapter/storage"
	"github.com/its-jojoo/kontakclip/internal/core"
)

func batch() []core.Contact {
	return []core.Contact{
		{ID: "c1", DisplayName: "05/01/24 Ns Alice", PhoneNumber: "62812345"},
		{ID: "c2", DisplayName: "05/01/24 Ns Bob", PhoneNumber: "62812346"},
		{ID: "c3", DisplayName: "05/01/24 Ns Cici", PhoneNumber: ""},
	}
}

// Run exercises newStore; each subtest gets a fresh store.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		st := newStore(t)
		items, err := st.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)

		n, err := st.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("replace keeps order", func(t *testing.T) {
		st := newStore(t)
		require.NoError(t, st.Replace(ctx, batch()))

		items, err := st.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, batch(), items)
	})

	t.Run("replace drops previous batch", func(t *testing.T) {
		st := newStore(t)
		require.NoError(t, st.Replace(ctx, batch()))
		next := []core.Contact{{ID: "n1", DisplayName: "06/01/24 Ns Dina", PhoneNumber: "62811"}}
		require.NoError(t, st.Replace(ctx, next))

		items, err := st.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, next, items)

		_, err = st.Get(ctx, "c1")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("put updates in place", func(t *testing.T) {
		st := newStore(t)
		require.NoError(t, st.Replace(ctx, batch()))

		edited := core.Contact{ID: "c2", DisplayName: "Robert", PhoneNumber: "62899"}
		require.NoError(t, st.Put(ctx, edited))

		got, err := st.Get(ctx, "c2")
		require.NoError(t, err)
		assert.Equal(t, edited, got)

		items, err := st.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "c2", items[1].ID)
	})

	t.Run("put unknown", func(t *testing.T) {
		st := newStore(t)
		require.NoError(t, st.Replace(ctx, batch()))
		err := st.Put(ctx, core.Contact{ID: "nope", DisplayName: "x"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		st := newStore(t)
		require.NoError(t, st.Replace(ctx, batch()))
		require.NoError(t, st.Delete(ctx, "c1"))
		assert.ErrorIs(t, st.Delete(ctx, "c1"), storage.ErrNotFound)

		items, err := st.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "c2", items[0].ID)

		n, err := st.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("clear", func(t *testing.T) {
		st := newStore(t)
		require.NoError(t, st.Replace(ctx, batch()))
		require.NoError(t, st.Replace(ctx, nil))

		n, err := st.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}
