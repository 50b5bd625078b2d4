// Package digest consumes order events and keeps a per-day activity summary
// in Redis for the admin dashboard.
package digest

import (
	"context"
	"encoding/json"
	"fmt"
	kafkax "github.com/ariefcatur/go-storefront/internal/kafka"
	"github.com/ariefcatur/go-storefront/internal/orders"
	"github.com/ariefcatur/go-storefront/internal/redisx"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"strconv"
	"time"
)

const dayLayout = "2006-01-02"

// hash fields
const (
	fieldPlaced    = "placed"
	fieldGross     = "gross"
	fieldDeleted   = "deleted"
	fieldStatusPfx = "status:"
)

type Service struct {
	Redis       *redis.Client
	ServiceName string
}

// Summary is one day of order activity.
type Summary struct {
	Day         string                 `json:"day"`
	Placed      int64                  `json:"placed"`
	Gross       decimal.Decimal        `json:"gross"`
	Deleted     int64                  `json:"deleted"`
	Transitions map[orders.Status]int64 `json:"transitions"`
}

// HandleEvent dipasang sebagai handler consumer.
func (s *Service) HandleEvent(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}

	// dedup via Redis (pakai event_id); released again if processing fails
	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	fresh, err := s.Redis.SetNX(ctx, dkey, "1", redisx.TTLDedup).Result()
	if err != nil {
		return err
	}
	if !fresh {
		return nil
	}
	if err := s.apply(ctx, env); err != nil {
		_ = s.Redis.Del(ctx, dkey).Err()
		return err
	}
	return nil
}

func (s *Service) apply(ctx context.Context, env orders.Envelope) error {
	key := fmt.Sprintf(redisx.KeySalesDaily, env.OccurredAt.UTC().Format(dayLayout))

	switch env.EventType {
	case orders.EventOrderPlaced:
		p, err := kafkax.UnwrapPayload[orders.OrderPlacedPayload](env.Payload)
		if err != nil {
			return err
		}
		_, err = s.Redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HIncrBy(ctx, key, fieldPlaced, 1)
			pipe.HIncrByFloat(ctx, key, fieldGross, p.Total)
			pipe.Expire(ctx, key, redisx.TTLSalesDigest)
			return nil
		})
		return err

	case orders.EventOrderStatusChanged:
		p, err := kafkax.UnwrapPayload[orders.OrderStatusChangedPayload](env.Payload)
		if err != nil {
			return err
		}
		_, err = s.Redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HIncrBy(ctx, key, fieldStatusPfx+string(p.To), 1)
			pipe.Expire(ctx, key, redisx.TTLSalesDigest)
			return nil
		})
		return err

	case orders.EventOrderDeleted:
		if _, err := kafkax.UnwrapPayload[orders.OrderDeletedPayload](env.Payload); err != nil {
			return err
		}
		_, err := s.Redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HIncrBy(ctx, key, fieldDeleted, 1)
			pipe.Expire(ctx, key, redisx.TTLSalesDigest)
			return nil
		})
		return err
	}
	return nil // ignore
}

// Day reads the summary for day (UTC).
func (s *Service) Day(ctx context.Context, day time.Time) (Summary, error) {
	d := day.UTC().Format(dayLayout)
	h, err := s.Redis.HGetAll(ctx, fmt.Sprintf(redisx.KeySalesDaily, d)).Result()
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{Day: d, Gross: decimal.Zero, Transitions: map[orders.Status]int64{}}
	for k, v := range h {
		switch {
		case k == fieldPlaced:
			sum.Placed, _ = strconv.ParseInt(v, 10, 64)
		case k == fieldDeleted:
			sum.Deleted, _ = strconv.ParseInt(v, 10, 64)
		case k == fieldGross:
			if g, err := decimal.NewFromString(v); err == nil {
				sum.Gross = g
			}
		case len(k) > len(fieldStatusPfx) && k[:len(fieldStatusPfx)] == fieldStatusPfx:
			n, _ := strconv.ParseInt(v, 10, 64)
			sum.Transitions[orders.Status(k[len(fieldStatusPfx):])] = n
		}
	}
	return sum, nil
}
