package redisx

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-storefront/internal/kv"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return mr, client
}

func TestBackendGetSetDelete(t *testing.T) {
	_, client := setupTestRedis(t)
	b := &Backend{Client: client}
	ctx := context.Background()

	_, ok, err := b.Get(ctx, kv.KeyOrders)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Set(ctx, kv.KeyOrders, `[]`))
	v, ok, err := b.Get(ctx, kv.KeyOrders)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)

	require.NoError(t, b.Delete(ctx, kv.KeyOrders))
	_, ok, err = b.Get(ctx, kv.KeyOrders)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBackendNamespace(t *testing.T) {
	mr, client := setupTestRedis(t)
	b := &Backend{Client: client, Namespace: "shop"}
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, kv.KeyAdminAuth, "true"))
	got, err := mr.Get("shop:adminAuth")
	require.NoError(t, err)
	assert.Equal(t, "true", got)
	assert.False(t, mr.Exists("adminAuth"))
}

func TestBackendWithLoadSave(t *testing.T) {
	_, client := setupTestRedis(t)
	b := &Backend{Client: client}
	ctx := context.Background()

	in := []string{"a", "b"}
	require.NoError(t, kv.Save(ctx, b, kv.KeyWishlist, in))
	out, err := kv.Load(ctx, b, kv.KeyWishlist, []string{})
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
