package main

import (
	"context"
	"github.com/ariefcatur/chale-calendar.git/internal/activity"
	"github.com/ariefcatur/chale-calendar.git/internal/config"
	kafkax "github.com/ariefcatur/chale-calendar.git/internal/kafka"
	"github.com/ariefcatur/chale-calendar.git/internal/redisx"
	"github.com/joho/godotenv"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if len(cfg.KafkaBrokers) == 0 {
		log.Fatalf("KAFKA_BROKERS is required")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &activity.Service{ServiceName: cfg.ActivityGroup}
	if cfg.RedisAddr != "" {
		rdb := redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		if err := redisx.Ping(ctx, rdb); err != nil {
			log.Fatalf("redis: %v", err)
		}
		svc.Dedup = &activity.RedisDeduper{Redis: rdb}
	} else {
		log.Println("REDIS_ADDR not set, redelivered events will be logged again")
	}

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.ActivityGroup, cfg.ActivityTopic, cfg.ActivityWorkers)
	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Printf("activity consumer started: group=%s topic=%s workers=%d", cfg.ActivityGroup, cfg.ActivityTopic, cfg.ActivityWorkers)
		if err := cons.Start(ctx, svc.HandleActivity); err != nil {
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
