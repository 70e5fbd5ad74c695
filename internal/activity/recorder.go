// Package activity publishes reservation mutations to Kafka and consumes them.
package activity

import (
	"context"
	kafkax "github.com/ariefcatur/chale-calendar.git/internal/kafka"
	"github.com/ariefcatur/chale-calendar.git/internal/reservations"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"log"
	"strconv"
	"time"
)

const eventVersion = 1

type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header) bool
}

// KafkaRecorder turns controller mutations into activity envelopes.
type KafkaRecorder struct {
	Producer    Publisher
	ServiceName string
	Now         func() time.Time
}

func NewKafkaRecorder(p Publisher, service string) *KafkaRecorder {
	return &KafkaRecorder{Producer: p, ServiceName: service, Now: time.Now}
}

// Record never fails the caller; a dropped event is only logged.
func (k *KafkaRecorder) Record(ctx context.Context, eventType string, p reservations.ActivityPayload) {
	ev := reservations.Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  eventVersion,
		OccurredAt:    k.now().UTC(),
		Producer:      k.ServiceName,
		TraceID:       TraceID(ctx),
		CorrelationID: string(p.ReservationID),
		Payload:       kafkax.MustMarshal(p),
	}
	ok := k.Producer.Publish(reservations.PartitionKey(p.ReservationID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte(strconv.Itoa(eventVersion))},
	)
	if !ok {
		log.Printf("activity %s for reservation %s dropped", eventType, p.ReservationID)
	}
}

func (k *KafkaRecorder) now() time.Time {
	if k.Now == nil {
		return time.Now()
	}
	return k.Now()
}

type traceKey struct{}

// WithTraceID tags ctx so events recorded under it share one trace id.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey{}, id)
}

func TraceID(ctx context.Context) string {
	s, _ := ctx.Value(traceKey{}).(string)
	return s
}
