package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "STORE_BACKEND", "KAFKA_BROKERS", "LOGIN_DELAY", "PERSIST_CART"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.False(t, cfg.KafkaEnabled())
	assert.Equal(t, time.Second, cfg.LoginDelay)
	assert.True(t, cfg.PersistCart)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("KAFKA_BROKERS", "k1:9092, ,k2:9092")
	t.Setenv("CHECKOUT_DELAY", "250ms")
	t.Setenv("PERSIST_CART", "false")
	t.Setenv("DIGEST_WORKERS", "nope")

	cfg := Load()
	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.KafkaEnabled())
	assert.Equal(t, 250*time.Millisecond, cfg.CheckoutDelay)
	assert.False(t, cfg.PersistCart)
	assert.Equal(t, 4, cfg.DigestWorkers)
}
