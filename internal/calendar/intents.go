package calendar

import (
	"fmt"
	"github.com/ariefcatur/chale-calendar.git/internal/reservations"
	"strconv"
	"strings"
)

type IntentKind string

const (
	IntentNew      IntentKind = "new"
	IntentEdit     IntentKind = "edit"
	IntentPick     IntentKind = "pick"
	IntentNavigate IntentKind = "navigate"
)

// Intent is what a selection on the grid asks the controller to do.
type Intent struct {
	Kind    IntentKind
	Date    string          // IntentNew
	ID      reservations.ID // IntentEdit
	Choices []Choice        // IntentPick, in cabin order
	Delta   int             // IntentNavigate
}

type Choice struct {
	ID    reservations.ID
	Label string
}

// DayIntent maps a day selection: empty day -> new reservation for it,
// one occupant -> edit it, several -> ask which one.
func DayIntent(date string, occupants []reservations.Reservation) Intent {
	switch len(occupants) {
	case 0:
		return Intent{Kind: IntentNew, Date: date}
	case 1:
		return Intent{Kind: IntentEdit, ID: occupants[0].ID}
	}
	choices := make([]Choice, 0, len(occupants))
	for _, r := range occupants {
		choices = append(choices, Choice{ID: r.ID, Label: fmt.Sprintf("Chalé %d - %s", r.Chale, r.Nome)})
	}
	return Intent{Kind: IntentPick, Date: date, Choices: choices}
}

// BarIntent always edits the bar's own reservation.
func BarIntent(r reservations.Reservation) Intent {
	return Intent{Kind: IntentEdit, ID: r.ID}
}

func NavigateIntent(delta int) Intent {
	return Intent{Kind: IntentNavigate, Delta: delta}
}

// PickPrompt is the numbered question shown for a crowded day.
func PickPrompt(choices []Choice) string {
	lines := make([]string, 0, len(choices)+1)
	lines = append(lines, "Selecione a reserva:")
	for i, c := range choices {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, c.Label))
	}
	return strings.Join(lines, "\n")
}

// ResolvePick maps a 1-based ordinal answer to the chosen reservation.
func ResolvePick(choices []Choice, answer string) (reservations.ID, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n < 1 || n > len(choices) {
		return "", false
	}
	return choices[n-1].ID, true
}
