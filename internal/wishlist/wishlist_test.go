package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-storefront/internal/catalog"
	"github.com/ariefcatur/go-storefront/internal/kv"
)

func newStore(t *testing.T) (*Store, *kv.Memory) {
	t.Helper()
	m := kv.NewMemory()
	s, err := New(context.Background(), m)
	require.NoError(t, err)
	return s, m
}

func TestAddIsIdempotent(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	p := catalog.Seed[0]

	require.NoError(t, s.AddToWishlist(ctx, p))
	require.NoError(t, s.AddToWishlist(ctx, p))
	assert.Equal(t, 1, s.Count())
	assert.True(t, s.IsInWishlist(p.ID))
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	ctx := context.Background()
	p := catalog.Seed[1]

	t.Run("absent", func(t *testing.T) {
		s, _ := newStore(t)
		in, err := s.ToggleWishlist(ctx, p)
		require.NoError(t, err)
		assert.True(t, in)
		in, err = s.ToggleWishlist(ctx, p)
		require.NoError(t, err)
		assert.False(t, in)
		assert.False(t, s.IsInWishlist(p.ID))
	})

	t.Run("present", func(t *testing.T) {
		s, _ := newStore(t)
		require.NoError(t, s.AddToWishlist(ctx, p))
		_, err := s.ToggleWishlist(ctx, p)
		require.NoError(t, err)
		_, err = s.ToggleWishlist(ctx, p)
		require.NoError(t, err)
		assert.True(t, s.IsInWishlist(p.ID))
		assert.Equal(t, 1, s.Count())
	})
}

func TestRemoveClearAndReload(t *testing.T) {
	s, m := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.AddToWishlist(ctx, catalog.Seed[0]))
	require.NoError(t, s.AddToWishlist(ctx, catalog.Seed[2]))
	require.NoError(t, s.RemoveFromWishlist(ctx, catalog.Seed[0].ID))

	reloaded, err := New(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, []catalog.Product{catalog.Seed[2]}, reloaded.Items())

	require.NoError(t, s.ClearWishlist(ctx))
	assert.Zero(t, s.Count())
	raw, _, _ := m.Get(ctx, kv.KeyWishlist)
	assert.Equal(t, "[]", raw)
}

func TestLoadDropsDuplicates(t *testing.T) {
	ctx := context.Background()
	m := kv.NewMemory()
	require.NoError(t, kv.Save(ctx, m, kv.KeyWishlist, []catalog.Product{catalog.Seed[0], catalog.Seed[0]}))

	s, err := New(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count())
}
