package calendar

import (
	"fmt"
	"github.com/ariefcatur/chale-calendar.git/internal/reservations"
	"sort"
	"strings"
	"time"
)

// Style is the bar colour class.
type Style string

const (
	StyleCheckIn Style = "green"
	StyleNote    Style = "note"
	StyleBooked  Style = "blue"
)

type Bar struct {
	ID     reservations.ID
	Chale  int
	Label  string
	Style  Style
	Intent Intent
}

type Day struct {
	Date   string // YYYY-MM-DD
	Number int
	Bars   []Bar
	Intent Intent
}

type Grid struct {
	Month    Month
	Title    string
	Prev     Month
	Next     Month
	Weekdays [7]string
	Leading  int // blank cells before the 1st
	Days     []Day
}

// BarStyle picks the colour: checked-in wins over a note, a note wins over
// the plain booked colour.
func BarStyle(r reservations.Reservation) Style {
	switch {
	case r.Status.CheckedIn():
		return StyleCheckIn
	case strings.TrimSpace(r.Observacoes) != "":
		return StyleNote
	}
	return StyleBooked
}

func BarLabel(r reservations.Reservation) string {
	name := r.Nome
	if name == "" {
		name = "—"
	}
	return fmt.Sprintf("C%d • %s", r.Chale, name)
}

// Occupants returns the reservations covering day, ordered by cabin.
func Occupants(rs []reservations.Reservation, day string) []reservations.Reservation {
	var out []reservations.Reservation
	for _, r := range rs {
		if r.Occupies(day) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Chale < out[j].Chale })
	return out
}

// Build lays out month m with a bar for every reservation on every day it
// occupies.
func Build(m Month, rs []reservations.Reservation) Grid {
	g := Grid{
		Month:    m,
		Title:    m.Title(),
		Prev:     m.Prev(),
		Next:     m.Next(),
		Weekdays: Weekdays,
		Leading:  int(m.First().Weekday()),
	}
	first := m.First()
	n := m.Days()
	g.Days = make([]Day, 0, n)
	for d := 0; d < n; d++ {
		date := reservations.FormatISO(first.AddDate(0, 0, d))
		occ := Occupants(rs, date)
		day := Day{Date: date, Number: d + 1, Intent: DayIntent(date, occ)}
		for _, r := range occ {
			day.Bars = append(day.Bars, Bar{
				ID:     r.ID,
				Chale:  r.Chale,
				Label:  BarLabel(r),
				Style:  BarStyle(r),
				Intent: BarIntent(r),
			})
		}
		g.Days = append(g.Days, day)
	}
	return g
}

// Rows splits the grid into weeks; cells before the 1st and after the last
// day are nil.
func (g Grid) Rows() [][]*Day {
	var rows [][]*Day
	row := make([]*Day, 0, 7)
	for i := 0; i < g.Leading; i++ {
		row = append(row, nil)
	}
	for i := range g.Days {
		row = append(row, &g.Days[i])
		if len(row) == 7 {
			rows = append(rows, row)
			row = make([]*Day, 0, 7)
		}
	}
	if len(row) > 0 {
		for len(row) < 7 {
			row = append(row, nil)
		}
		rows = append(rows, row)
	}
	return rows
}

// IsToday is used by the templates to highlight the current day.
func (d Day) IsToday(now time.Time) bool {
	return d.Date == reservations.FormatISO(now)
}
