package main

import (
	"context"
	"github.com/ariefcatur/chale-calendar.git/internal/activity"
	"github.com/ariefcatur/chale-calendar.git/internal/config"
	"github.com/ariefcatur/chale-calendar.git/internal/httpx"
	kafkax "github.com/ariefcatur/chale-calendar.git/internal/kafka"
	"github.com/ariefcatur/chale-calendar.git/internal/redisx"
	"github.com/ariefcatur/chale-calendar.git/internal/reservations"
	"github.com/ariefcatur/chale-calendar.git/internal/session"
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

	// Sessions: Redis when configured, otherwise this process only
	var store session.Store = session.NewMemoryStore(cfg.SessionTTL)
	if cfg.RedisAddr != "" {
		rdb := redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		if err := redisx.Ping(ctx, rdb); err != nil {
			log.Fatalf("redis: %v", err)
		}
		store = &session.RedisStore{Redis: rdb, TTL: cfg.SessionTTL}
	}

	h := &httpx.CalendarHandler{
		API:        reservations.NewClient(cfg.APIBaseURL, cfg.APITimeout),
		Sessions:   store,
		SessionTTL: cfg.SessionTTL,
	}

	// Activity events are optional
	var prod *kafkax.Producer
	if len(cfg.KafkaBrokers) > 0 {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, cfg.ActivityTopic, 1024)
		prod.Start(ctx)
		h.Activity = activity.NewKafkaRecorder(prod, cfg.ServiceName)
	}

	router := httpx.NewRouter()
	h.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		log.Printf("calendar listening at %s (api %s)", cfg.HTTPAddr, cfg.APIBaseURL)
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
		prod.Close() // flush queued events before exit
		prod.WaitClosed()
	}
}
