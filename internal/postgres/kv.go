package postgres

import (
	"context"
	"errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const kvSchema = `CREATE TABLE IF NOT EXISTS storefront_kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// KV is a kv.Backend over a single Postgres table. Every Set is a full
// overwrite of the row, same as the other backends.
type KV struct{ DB *pgxpool.Pool }

func (k *KV) Migrate(ctx context.Context) error {
	_, err := k.DB.Exec(ctx, kvSchema)
	return err
}

func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := k.DB.QueryRow(ctx, `SELECT value FROM storefront_kv WHERE key=$1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (k *KV) Set(ctx context.Context, key, value string) error {
	_, err := k.DB.Exec(ctx, `
		INSERT INTO storefront_kv(key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, key, value)
	return err
}

func (k *KV) Delete(ctx context.Context, key string) error {
	_, err := k.DB.Exec(ctx, `DELETE FROM storefront_kv WHERE key=$1`, key)
	return err
}
