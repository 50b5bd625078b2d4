package main

import (
	"context"
	"github.com/ariefcatur/go-storefront/internal/config"
	"github.com/ariefcatur/go-storefront/internal/digest"
	kafkax "github.com/ariefcatur/go-storefront/internal/kafka"
	"github.com/ariefcatur/go-storefront/internal/orders"
	"github.com/ariefcatur/go-storefront/internal/redisx"
	"github.com/joho/godotenv"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if !cfg.KafkaEnabled() {
		log.Fatalf("digest: KAFKA_BROKERS is empty")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &digest.Service{Redis: rdb, ServiceName: cfg.ServiceName + "-digest"}

	topics := []string{orders.TopicOrderPlaced, orders.TopicOrderStatusChanged, orders.TopicOrderDeleted}
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.DigestGroup, topics, cfg.DigestWorkers)

	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Printf("digest consumer started: group=%s topics=%v workers=%d", cfg.DigestGroup, topics, cfg.DigestWorkers)
		if err := cons.Start(ctx, svc.HandleEvent); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Println("shutting down consumer...")
	cancel()
	<-done
}
