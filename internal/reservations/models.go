package reservations

import (
	"encoding/json"
	"fmt"
)

// ID is the server-assigned reservation identifier. The API emits integers;
// strings are accepted as well and the value is carried around as text.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("reservation id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

type Reservation struct {
	ID          ID     `json:"id"`
	Chale       int    `json:"chale"`
	Nome        string `json:"nome"`
	WhatsApp    string `json:"whatsapp"` // digits only
	ValorCents  int64  `json:"valor_cents"`
	Pessoas     int    `json:"pessoas"`
	CheckIn     string `json:"checkin"`  // YYYY-MM-DD
	CheckOut    string `json:"checkout"` // YYYY-MM-DD, never before CheckIn
	Observacoes string `json:"observacoes"`
	Status      Status `json:"status"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Occupies reports whether the stay covers day (inclusive on both ends).
// ISO dates compare correctly as strings.
func (r Reservation) Occupies(day string) bool {
	return r.CheckIn <= day && r.CheckOut >= day
}

// Payload is the write shape for create and update. Valor travels as the
// display string ("1.234,56"); the server converts it to cents.
type Payload struct {
	Chale       int    `json:"chale"`
	Nome        string `json:"nome"`
	WhatsApp    string `json:"whatsapp"`
	Valor       string `json:"valor"`
	Pessoas     int    `json:"pessoas"`
	CheckIn     string `json:"checkin"`
	CheckOut    string `json:"checkout"`
	Observacoes string `json:"observacoes"`
}
