package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	rd "github.com/redis/go-redis/v9"

	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/audit"
	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/config"
	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/router"
	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// 1. Open the in-memory store and seed the deterministic dataset.
	st, err := store.Open(cfg.DBDSN)
	if err != nil {
		log.Fatalf("store open: %v", err)
	}
	ctx := context.Background()
	empty, err := st.Empty(ctx)
	if err != nil {
		log.Fatalf("store check: %v", err)
	}
	if empty {
		if err := st.Seed(ctx, cfg.SeedInventory, cfg.SeedOrders, cfg.SeedTasks, time.Now()); err != nil {
			log.Fatalf("store seed: %v", err)
		}
		log.Printf("seeded %d inventory items, %d orders, %d tasks",
			cfg.SeedInventory, cfg.SeedOrders, cfg.SeedTasks)
	}

	// 2. Redis backs the rate limiter and the audit outbox.
	rdb := rd.NewClient(&rd.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})

	// 3. Audit pipeline: outbox -> relay -> Kafka -> consumer -> audit table.
	recorder := audit.NewStreamRecorder(rdb, cfg.AuditStream)
	producer := audit.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()
	relay := audit.NewRelay(rdb, producer, cfg.AuditStream, cfg.AuditGroup, cfg.AuditConsumer)
	go relay.Run(ctx)
	consumer := audit.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID, st)
	defer consumer.Close()
	go consumer.Run(ctx)

	r := gin.Default()
	router.Setup(r, st, rdb, recorder, cfg)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
