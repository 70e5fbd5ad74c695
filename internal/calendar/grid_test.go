package calendar

import (
	"github.com/ariefcatur/chale-calendar.git/internal/reservations"
	"strings"
	"testing"
	"time"
)

func fixture() []reservations.Reservation {
	return []reservations.Reservation{
		{ID: "1", Chale: 3, Nome: "Carla", CheckIn: "2024-05-10", CheckOut: "2024-05-12", Status: reservations.StatusCheckIn, Observacoes: "late arrival"},
		{ID: "2", Chale: 1, Nome: "Ana", CheckIn: "2024-05-11", CheckOut: "2024-05-11", Observacoes: "  berço  "},
		{ID: "3", Chale: 2, Nome: "", CheckIn: "2024-04-28", CheckOut: "2024-05-02"},
		{ID: "4", Chale: 2, Nome: "Dani", CheckIn: "2024-05-31", CheckOut: "2024-06-03", Observacoes: "   "},
	}
}

func TestMonthNavigationWraps(t *testing.T) {
	dec := Month{Year: 2024, Month: time.December}
	if got := dec.Next(); got != (Month{Year: 2025, Month: time.January}) {
		t.Errorf("expected January 2025, got %+v", got)
	}
	jan := Month{Year: 2024, Month: time.January}
	if got := jan.Prev(); got != (Month{Year: 2023, Month: time.December}) {
		t.Errorf("expected December 2023, got %+v", got)
	}
	if got := jan.Add(-13); got != (Month{Year: 2022, Month: time.December}) {
		t.Errorf("expected December 2022, got %+v", got)
	}
	if got := jan.Add(25); got != (Month{Year: 2026, Month: time.February}) {
		t.Errorf("expected February 2026, got %+v", got)
	}
}

func TestMonthRange(t *testing.T) {
	from, to := Month{Year: 2024, Month: time.February}.Range()
	if from != "2024-02-01" || to != "2024-02-29" {
		t.Errorf("expected leap February range, got %s..%s", from, to)
	}
	if title := (Month{Year: 2024, Month: time.March}).Title(); title != "Março 2024" {
		t.Errorf("unexpected title %q", title)
	}
}

func TestReservationAppearsOnEveryOccupiedDay(t *testing.T) {
	g := Build(Month{Year: 2024, Month: time.May}, fixture())

	for _, d := range g.Days {
		has := false
		for _, b := range d.Bars {
			if b.ID == "1" {
				has = true
			}
		}
		want := d.Date >= "2024-05-10" && d.Date <= "2024-05-12"
		if has != want {
			t.Errorf("%s: expected bar for reservation 1 = %v, got %v", d.Date, want, has)
		}
	}
}

func TestGridLayout(t *testing.T) {
	g := Build(Month{Year: 2024, Month: time.May}, nil)
	if g.Leading != 3 { // 1 May 2024 is a Wednesday
		t.Errorf("expected 3 leading blanks, got %d", g.Leading)
	}
	if len(g.Days) != 31 || g.Days[0].Date != "2024-05-01" || g.Days[30].Number != 31 {
		t.Errorf("unexpected days %d first=%s", len(g.Days), g.Days[0].Date)
	}
	if g.Weekdays[0] != "Dom" || g.Weekdays[6] != "Sáb" {
		t.Errorf("weekdays must start on Sunday, got %v", g.Weekdays)
	}
	rows := g.Rows()
	if len(rows) != 5 {
		t.Fatalf("expected 5 weeks, got %d", len(rows))
	}
	if rows[0][2] != nil || rows[0][3] == nil || rows[0][3].Number != 1 {
		t.Error("first day must sit under Wednesday")
	}
	if rows[4][5] == nil || rows[4][5].Number != 31 || rows[4][6] != nil {
		t.Error("31st sits under Friday and the Saturday after it is blank")
	}
}

func TestBarsSortedAndStyled(t *testing.T) {
	g := Build(Month{Year: 2024, Month: time.May}, fixture())
	day := g.Days[10] // 2024-05-11
	if day.Date != "2024-05-11" {
		t.Fatalf("unexpected date %s", day.Date)
	}
	if len(day.Bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(day.Bars))
	}
	if day.Bars[0].Chale != 1 || day.Bars[1].Chale != 3 {
		t.Errorf("bars must be sorted by cabin, got %d,%d", day.Bars[0].Chale, day.Bars[1].Chale)
	}
	if day.Bars[0].Style != StyleNote {
		t.Errorf("observations should give note style, got %s", day.Bars[0].Style)
	}
	if day.Bars[1].Style != StyleCheckIn {
		t.Errorf("checkin must win over observations, got %s", day.Bars[1].Style)
	}
	if day.Bars[0].Label != "C1 • Ana" {
		t.Errorf("unexpected label %q", day.Bars[0].Label)
	}

	first := g.Days[0]
	if len(first.Bars) != 1 || first.Bars[0].Style != StyleBooked || first.Bars[0].Label != "C2 • —" {
		t.Errorf("unexpected bar on May 1st: %+v", first.Bars)
	}
	last := g.Days[30]
	if len(last.Bars) != 1 || last.Bars[0].Style != StyleBooked {
		t.Errorf("blank observations must stay blue: %+v", last.Bars)
	}
}

func TestDayIntents(t *testing.T) {
	g := Build(Month{Year: 2024, Month: time.May}, fixture())

	empty := g.Days[4] // 2024-05-05
	if empty.Intent.Kind != IntentNew || empty.Intent.Date != "2024-05-05" {
		t.Errorf("empty day should open a new reservation, got %+v", empty.Intent)
	}
	single := g.Days[9] // 2024-05-10
	if single.Intent.Kind != IntentEdit || single.Intent.ID != "1" {
		t.Errorf("single occupant should open edit, got %+v", single.Intent)
	}
	crowded := g.Days[10]
	if crowded.Intent.Kind != IntentPick || len(crowded.Intent.Choices) != 2 {
		t.Fatalf("crowded day should ask, got %+v", crowded.Intent)
	}
	prompt := PickPrompt(crowded.Intent.Choices)
	if !strings.HasPrefix(prompt, "Selecione a reserva:\n1. Chalé 1 - Ana\n2. Chalé 3 - Carla") {
		t.Errorf("unexpected prompt %q", prompt)
	}
	if id, ok := ResolvePick(crowded.Intent.Choices, " 2 "); !ok || id != "1" {
		t.Errorf("expected pick 2 -> id 1, got %q %v", id, ok)
	}
	for _, bad := range []string{"", "0", "3", "x"} {
		if _, ok := ResolvePick(crowded.Intent.Choices, bad); ok {
			t.Errorf("answer %q must select nothing", bad)
		}
	}
}

func TestBarIntentNeverFallsThroughToDay(t *testing.T) {
	g := Build(Month{Year: 2024, Month: time.May}, fixture())
	for _, b := range g.Days[10].Bars {
		if b.Intent.Kind != IntentEdit || b.Intent.ID != b.ID {
			t.Errorf("bar %s should edit itself, got %+v", b.ID, b.Intent)
		}
	}
}
