// Package kv is the persistence boundary of the storefront: every store owns
// exactly one key and rewrites its whole collection on each mutation.
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// Backend is a string key-value store. Get reports ok=false for a missing key.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Persisted keys, one per store.
const (
	KeyOrders    = "orders"
	KeyReviews   = "reviews"
	KeyWishlist  = "wishlist"
	KeyUser      = "user"
	KeyAdminAuth = "adminAuth"
	KeyCart      = "cart"
)

// AllKeys lists every key written by the storefront.
var AllKeys = []string{KeyOrders, KeyReviews, KeyWishlist, KeyUser, KeyAdminAuth, KeyCart}

// Load decodes the JSON stored at key. A missing key or malformed content
// yields def; only backend failures are returned as errors.
func Load[T any](ctx context.Context, b Backend, key string, def T) (T, error) {
	raw, ok, err := b.Get(ctx, key)
	if err != nil {
		return def, fmt.Errorf("kv load %s: %w", key, err)
	}
	if !ok || raw == "" {
		return def, nil
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Printf("kv: discard malformed %q: %v", key, err)
		return def, nil
	}
	return out, nil
}

// Save overwrites key with the JSON encoding of v.
func Save(ctx context.Context, b Backend, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv encode %s: %w", key, err)
	}
	if err := b.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("kv save %s: %w", key, err)
	}
	return nil
}

// Purge deletes every storefront key.
func Purge(ctx context.Context, b Backend) error {
	for _, k := range AllKeys {
		if err := b.Delete(ctx, k); err != nil {
			return fmt.Errorf("kv purge %s: %w", k, err)
		}
	}
	return nil
}
