package reservations

import (
	"encoding/json"
	"time"
)

const (
	EventReservationCreated    = "ReservationCreated"
	EventReservationUpdated    = "ReservationUpdated"
	EventReservationRemoved    = "ReservationRemoved"
	EventReservationCheckedIn  = "ReservationCheckedIn"
	EventReservationCheckedOut = "ReservationCheckedOut"
)

type Envelope struct {
	EventID       string          `json:"event_id"`      // uuid
	EventType     string          `json:"event_type"`    // one of the consts above
	EventVersion  int             `json:"event_version"` // 1
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"` // e.g. "chale-calendar"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // reservation id
	Payload       json.RawMessage `json:"payload"`
}

// ActivityPayload describes the reservation as the operator submitted or
// last saw it. ValorCents is derived from the display string on writes.
type ActivityPayload struct {
	ReservationID ID     `json:"reservation_id"`
	Chale         int    `json:"chale,omitempty"`
	Nome          string `json:"nome,omitempty"`
	CheckIn       string `json:"checkin,omitempty"`
	CheckOut      string `json:"checkout,omitempty"`
	Status        Status `json:"status,omitempty"`
	ValorCents    int64  `json:"valor_cents,omitempty"`
}
