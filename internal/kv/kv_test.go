package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type failing struct{}

func (failing) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("boom")
}
func (failing) Set(context.Context, string, string) error { return errors.New("boom") }
func (failing) Delete(context.Context, string) error      { return errors.New("boom") }

func TestLoadMissingKeyReturnsDefault(t *testing.T) {
	got, err := Load(context.Background(), NewMemory(), KeyOrders, []entry{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadMalformedReturnsDefault(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Set(ctx, KeyReviews, "{not json"))

	got, err := Load(ctx, m, KeyReviews, []entry{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	in := []entry{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
	require.NoError(t, Save(ctx, m, KeyWishlist, in))

	out, err := Load(ctx, m, KeyWishlist, []entry{})
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadBackendError(t *testing.T) {
	_, err := Load(context.Background(), failing{}, KeyUser, (*entry)(nil))
	assert.Error(t, err)
}

func TestPurge(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	for _, k := range AllKeys {
		require.NoError(t, m.Set(ctx, k, "x"))
	}
	require.NoError(t, Purge(ctx, m))
	for _, k := range AllKeys {
		_, ok, _ := m.Get(ctx, k)
		assert.False(t, ok, k)
	}
}
