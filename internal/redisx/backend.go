package redisx

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
)

// Backend stores each storefront key as a plain Redis string, without TTL.
type Backend struct {
	Client    *redis.Client
	Namespace string
}

func (b *Backend) key(k string) string {
	if b.Namespace == "" {
		return k
	}
	return fmt.Sprintf(KeyStore, b.Namespace, k)
}

func (b *Backend) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := b.Client.Get(ctx, b.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (b *Backend) Set(ctx context.Context, key, value string) error {
	return b.Client.Set(ctx, b.key(key), value, 0).Err()
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	return b.Client.Del(ctx, b.key(key)).Err()
}
