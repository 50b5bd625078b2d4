package digest

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kafkax "github.com/ariefcatur/go-storefront/internal/kafka"
	"github.com/ariefcatur/go-storefront/internal/orders"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return client
}

func message(t *testing.T, eventType string, payload any) (kafkago.Message, orders.Envelope) {
	t.Helper()
	env, err := orders.NewEnvelope(eventType, "test", "o1", "", payload)
	require.NoError(t, err)
	return kafkago.Message{Value: kafkax.MustMarshal(env)}, env
}

func TestHandleEventAggregatesDay(t *testing.T) {
	svc := &Service{Redis: setupTestRedis(t), ServiceName: "digest"}
	ctx := context.Background()

	m1, env := message(t, orders.EventOrderPlaced, orders.OrderPlacedPayload{OrderID: "o1", Total: 19.5})
	m2, _ := message(t, orders.EventOrderPlaced, orders.OrderPlacedPayload{OrderID: "o2", Total: 5.5})
	m3, _ := message(t, orders.EventOrderStatusChanged, orders.OrderStatusChangedPayload{OrderID: "o1", From: orders.StatusPending, To: orders.StatusCancelled})
	m4, _ := message(t, orders.EventOrderDeleted, orders.OrderDeletedPayload{OrderID: "o2"})

	for _, m := range []kafkago.Message{m1, m2, m3, m4} {
		require.NoError(t, svc.HandleEvent(ctx, m))
	}

	sum, err := svc.Day(ctx, env.OccurredAt)
	require.NoError(t, err)
	assert.Equal(t, int64(2), sum.Placed)
	assert.True(t, sum.Gross.Equal(decimal.RequireFromString("25")), sum.Gross.String())
	assert.Equal(t, int64(1), sum.Deleted)
	assert.Equal(t, int64(1), sum.Transitions[orders.StatusCancelled])
}

func TestHandleEventIsIdempotent(t *testing.T) {
	svc := &Service{Redis: setupTestRedis(t), ServiceName: "digest"}
	ctx := context.Background()

	m, env := message(t, orders.EventOrderPlaced, orders.OrderPlacedPayload{OrderID: "o1", Total: 10})
	require.NoError(t, svc.HandleEvent(ctx, m))
	require.NoError(t, svc.HandleEvent(ctx, m))

	sum, err := svc.Day(ctx, env.OccurredAt)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sum.Placed)
}

func TestHandleEventRejectsGarbage(t *testing.T) {
	svc := &Service{Redis: setupTestRedis(t), ServiceName: "digest"}
	assert.Error(t, svc.HandleEvent(context.Background(), kafkago.Message{Value: []byte("nope")}))
}

func TestEmptyDay(t *testing.T) {
	svc := &Service{Redis: setupTestRedis(t), ServiceName: "digest"}
	sum, err := svc.Day(context.Background(), time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02", sum.Day)
	assert.Zero(t, sum.Placed)
	assert.True(t, sum.Gross.IsZero())
}
