package controller

import (
	"github.com/ariefcatur/chale-calendar.git/internal/calendar"
	"github.com/ariefcatur/chale-calendar.git/internal/masks"
	"github.com/ariefcatur/chale-calendar.git/internal/reservations"
	"strconv"
	"time"
)

const (
	defaultChale   = 1
	defaultPessoas = 2
)

// State is everything one calendar instance owns: the visible month, the
// reservations cached for it and the open modal, if any.
type State struct {
	Visible      calendar.Month             `json:"visible"`
	Reservations []reservations.Reservation `json:"reservations"`
	Modal        *Modal                     `json:"modal,omitempty"`
}

func NewState(now time.Time) *State {
	return &State{Visible: calendar.MonthOf(now), Reservations: []reservations.Reservation{}}
}

type Mode string

const (
	ModeNew  Mode = "new"
	ModeEdit Mode = "edit"
)

type Modal struct {
	Mode    Mode                `json:"mode"`
	Status  reservations.Status `json:"status,omitempty"`
	Form    Form                `json:"form"`
	Buttons Buttons             `json:"buttons"`
}

func (m Modal) Title() string {
	if m.Mode == ModeEdit {
		return "Editar Reserva"
	}
	return "Nova Reserva"
}

// Buttons says which status actions the modal offers.
type Buttons struct {
	CheckIn  bool `json:"checkin"`
	CheckOut bool `json:"checkout"`
	Remove   bool `json:"remove"`
}

func ButtonsFor(mode Mode, status reservations.Status) Buttons {
	if mode != ModeEdit {
		return Buttons{}
	}
	return Buttons{
		CheckIn:  reservations.CanTransition(status, reservations.StatusCheckIn),
		CheckOut: reservations.CanTransition(status, reservations.StatusCheckOut),
		Remove:   true,
	}
}

// Form holds the raw field values as the operator sees them.
type Form struct {
	ID          reservations.ID `json:"id,omitempty"`
	Chale       string          `json:"chale"`
	Nome        string          `json:"nome"`
	WhatsApp    string          `json:"whatsapp"`
	Valor       string          `json:"valor"`
	Pessoas     string          `json:"pessoas"`
	CheckIn     string          `json:"checkin"`
	CheckOut    string          `json:"checkout"`
	Observacoes string          `json:"observacoes"`
}

// FormFrom fills the edit form from a reservation fetched from the API.
func FormFrom(r reservations.Reservation) Form {
	chale := r.Chale
	if chale <= 0 {
		chale = defaultChale
	}
	pessoas := r.Pessoas
	if pessoas <= 0 {
		pessoas = defaultPessoas
	}
	return Form{
		ID:          r.ID,
		Chale:       strconv.Itoa(chale),
		Nome:        r.Nome,
		WhatsApp:    masks.Phone(r.WhatsApp),
		Valor:       masks.CentsToBRL(r.ValorCents),
		Pessoas:     strconv.Itoa(pessoas),
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		Observacoes: r.Observacoes,
	}
}

// Masked returns the form with the phone and money masks applied, as they
// would read after the last keystroke.
func (f Form) Masked() Form {
	f.WhatsApp = masks.Phone(f.WhatsApp)
	if f.Valor != "" {
		f.Valor = masks.Currency(f.Valor)
	}
	return f
}
