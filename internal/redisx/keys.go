package redisx

import "time"

const (
	// Operator session: calendar:session:{session_id} -> JSON session (visible month, cache, modal)
	KeySession = "calendar:session:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLSession = 12 * time.Hour
	TTLDedup   = 48 * time.Hour
)
