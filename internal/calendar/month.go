package calendar

import (
	"fmt"
	"github.com/ariefcatur/chale-calendar.git/internal/reservations"
	"time"
)

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Weekdays are the grid's column labels, Sunday first.
var Weekdays = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// Month identifies one visible page of the calendar.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Add moves delta months, wrapping the year at December/January.
func (m Month) Add(delta int) Month {
	idx := int(m.Month) - 1 + delta
	year := m.Year + idx/12
	idx %= 12
	if idx < 0 {
		idx += 12
		year--
	}
	return Month{Year: year, Month: time.Month(idx + 1)}
}

func (m Month) Next() Month { return m.Add(1) }
func (m Month) Prev() Month { return m.Add(-1) }

func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) Last() time.Time {
	return m.First().AddDate(0, 1, -1)
}

func (m Month) Days() int { return m.Last().Day() }

// Range is the inclusive [first, last] day of the month as ISO dates.
func (m Month) Range() (from, to string) {
	return reservations.FormatISO(m.First()), reservations.FormatISO(m.Last())
}

func (m Month) Title() string {
	if m.Month < time.January || m.Month > time.December {
		return fmt.Sprintf("%d/%d", int(m.Month), m.Year)
	}
	return fmt.Sprintf("%s %d", monthNames[m.Month-1], m.Year)
}

// Valid reports whether m names a real calendar month.
func (m Month) Valid() bool {
	return m.Year > 0 && m.Month >= time.January && m.Month <= time.December
}
