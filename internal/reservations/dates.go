package reservations

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

func FormatISO(t time.Time) string { return t.Format(DateLayout) }

func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func AddDaysISO(iso string, n int) (string, error) {
	t, err := ParseISO(iso)
	if err != nil {
		return "", err
	}
	return FormatISO(t.AddDate(0, 0, n)), nil
}

// DisplayDate turns YYYY-MM-DD into DD/MM/YYYY; anything else is returned as is.
func DisplayDate(iso string) string {
	t, err := ParseISO(iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}
