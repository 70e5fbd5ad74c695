package reservations

type Status string

const (
	StatusBooked   Status = "reservado"
	StatusCheckIn  Status = "checkin"
	StatusCheckOut Status = "checkout"
)

var validNext = map[Status]map[Status]bool{
	StatusBooked:   {StatusCheckIn: true},
	StatusCheckIn:  {StatusCheckOut: true},
	StatusCheckOut: {StatusCheckIn: true},
}

// Normalize maps empty and unknown values to StatusBooked.
func (s Status) Normalize() Status {
	switch s {
	case StatusCheckIn, StatusCheckOut:
		return s
	}
	return StatusBooked
}

func (s Status) CheckedIn() bool { return s == StatusCheckIn }

func CanTransition(from, to Status) bool {
	return validNext[from.Normalize()][to]
}
