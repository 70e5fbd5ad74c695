package activity

import (
	"context"
	"encoding/json"
	"fmt"
	kafkax "github.com/ariefcatur/chale-calendar.git/internal/kafka"
	"github.com/ariefcatur/chale-calendar.git/internal/redisx"
	"github.com/ariefcatur/chale-calendar.git/internal/reservations"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"log"
)

// Deduper remembers which event ids were already handled.
type Deduper interface {
	// Seen marks key and reports whether it was marked before.
	Seen(ctx context.Context, key string) (bool, error)
}

type RedisDeduper struct {
	Redis *redis.Client
}

func (d *RedisDeduper) Seen(ctx context.Context, key string) (bool, error) {
	set, err := d.Redis.SetNX(ctx, key, "1", redisx.TTLDedup).Result()
	if err != nil {
		return false, err
	}
	return !set, nil
}

// Service is the consumer side: it logs every activity event once.
type Service struct {
	Dedup       Deduper
	ServiceName string
	Logf        func(format string, args ...any)
}

// HandleActivity is installed as the consumer handler.
func (s *Service) HandleActivity(ctx context.Context, m kafkago.Message) error {
	var env reservations.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		// a poison message would block the partition; log and commit it
		s.logf("activity: skip undecodable message at offset %d: %v", m.Offset, err)
		return nil
	}
	if !known(env.EventType) {
		return nil
	}

	if s.Dedup != nil && env.EventID != "" {
		seen, err := s.Dedup.Seen(ctx, fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID))
		if err != nil {
			log.Printf("activity dedup %s: %v", env.EventID, err)
		} else if seen {
			return nil
		}
	}

	p, err := kafkax.UnwrapPayload[reservations.ActivityPayload](env.Payload)
	if err != nil {
		s.logf("activity: %s %s: %v", env.EventType, env.EventID, err)
		return nil
	}
	s.logf("activity: %s reservation=%s chale=%d nome=%q %s..%s status=%s valor=%d by=%s at=%s",
		env.EventType, p.ReservationID, p.Chale, p.Nome, p.CheckIn, p.CheckOut, p.Status, p.ValorCents,
		env.Producer, env.OccurredAt.Format("2006-01-02T15:04:05Z07:00"))
	return nil
}

func (s *Service) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func known(eventType string) bool {
	switch eventType {
	case reservations.EventReservationCreated,
		reservations.EventReservationUpdated,
		reservations.EventReservationRemoved,
		reservations.EventReservationCheckedIn,
		reservations.EventReservationCheckedOut:
		return true
	}
	return false
}
