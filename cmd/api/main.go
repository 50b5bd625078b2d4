package main

import (
	"context"
	"github.com/ariefcatur/go-storefront/internal/catalog"
	"github.com/ariefcatur/go-storefront/internal/config"
	"github.com/ariefcatur/go-storefront/internal/digest"
	"github.com/ariefcatur/go-storefront/internal/httpx"
	kafkax "github.com/ariefcatur/go-storefront/internal/kafka"
	"github.com/ariefcatur/go-storefront/internal/kv"
	"github.com/ariefcatur/go-storefront/internal/postgres"
	"github.com/ariefcatur/go-storefront/internal/redisx"
	"github.com/ariefcatur/go-storefront/internal/storefront"
	"github.com/joho/godotenv"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Backend + catalog
	var (
		backend kv.Backend
		src     catalog.Source = catalog.Static{Products: catalog.Seed}
	)
	switch cfg.StoreBackend {
	case config.BackendRedis:
		rdb := redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping: %v", err)
		}
		backend = &redisx.Backend{Client: rdb, Namespace: cfg.StoreNamespace}
	case config.BackendPostgres:
		db, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.ServiceName)
		if err != nil {
			log.Fatalf("db connect: %v", err)
		}
		defer db.Close()
		store := &postgres.KV{DB: db}
		if err := store.Migrate(ctx); err != nil {
			log.Fatalf("db migrate: %v", err)
		}
		backend = store
		repo := &catalog.Repo{DB: db}
		if err := repo.Migrate(ctx, catalog.Seed); err != nil {
			log.Fatalf("catalog migrate: %v", err)
		}
		src = repo
	default:
		backend = kv.NewMemory()
	}

	provider, err := storefront.New(ctx, backend, src, storefront.Options{
		LoginDelay:    cfg.LoginDelay,
		CheckoutDelay: cfg.CheckoutDelay,
		PersistCart:   cfg.PersistCart,
	})
	if err != nil {
		log.Fatalf("load stores: %v", err)
	}

	h := &httpx.Handler{Store: provider, Service: cfg.ServiceName}

	// Kafka producer (optional)
	var prod *kafkax.Producer
	if cfg.KafkaEnabled() {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, 1024)
		prod.Start(ctx)
		h.Events = prod

		// summary ditulis oleh cmd/digest
		drdb := redisx.New(cfg.RedisAddr)
		defer drdb.Close()
		h.Digest = &digest.Service{Redis: drdb, ServiceName: cfg.ServiceName}
	}

	router := httpx.NewRouter()
	h.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Printf("HTTP listening at %s (backend=%s)", cfg.HTTPAddr, cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	if prod != nil {
		prod.Close() // flush inbox lalu tutup writer
		prod.WaitClosed()
	}
	cancel()
}
