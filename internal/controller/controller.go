package controller

import (
	"context"
	"errors"
	"fmt"
	"github.com/ariefcatur/chale-calendar.git/internal/calendar"
	"github.com/ariefcatur/chale-calendar.git/internal/reservations"
	"log"
	"time"
)

var (
	// ErrDeclined means the operator said no, or picked nothing.
	ErrDeclined = errors.New("declined by operator")
	// ErrNoReservation is returned by status actions when the modal has no saved reservation.
	ErrNoReservation = errors.New("no reservation open")
)

// API is the reservation REST collaborator (*reservations.Client in production).
type API interface {
	List(ctx context.Context, from, to string) ([]reservations.Reservation, error)
	Get(ctx context.Context, id reservations.ID) (*reservations.Reservation, error)
	Create(ctx context.Context, p reservations.Payload) (*reservations.Reservation, error)
	Update(ctx context.Context, id reservations.ID, p reservations.Payload) (*reservations.Reservation, error)
	Delete(ctx context.Context, id reservations.ID) error
	CheckIn(ctx context.Context, id reservations.ID) (*reservations.Reservation, error)
	CheckOut(ctx context.Context, id reservations.ID) (*reservations.Reservation, error)
}

// Decider is how the controller talks to the operator. Confirm and Prompt
// must not return before the operator has answered; an adapter that cannot
// block answers "no" and asks again on the next request.
type Decider interface {
	Alert(msg string)
	Confirm(msg string) bool
	Prompt(msg string) (answer string, ok bool)
}

// Opener hands a URL to the operator's browser (the WhatsApp deep link).
type Opener interface {
	Open(url string)
}

// Recorder is told about every mutation that reached the API.
type Recorder interface {
	Record(ctx context.Context, eventType string, p reservations.ActivityPayload)
}

// Controller drives one calendar instance. Handlers run one at a time per
// State; nothing here is safe for concurrent use on the same State.
type Controller struct {
	API      API
	Decide   Decider
	Open     Opener
	Activity Recorder
	Now      func() time.Time
	State    *State
}

func New(api API, d Decider, st *State) *Controller {
	return &Controller{API: api, Decide: d, Now: time.Now, State: st}
}

func (c *Controller) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// LoadMonth replaces the cache with the visible month's reservations. A
// failed fetch leaves an empty calendar; it is logged, never surfaced.
func (c *Controller) LoadMonth(ctx context.Context) {
	from, to := c.State.Visible.Range()
	rs, err := c.API.List(ctx, from, to)
	if err != nil {
		log.Printf("load reservations %s..%s: %v", from, to, err)
		rs = []reservations.Reservation{}
	}
	c.State.Reservations = rs
}

// Render builds the grid for the visible month from the cache.
func (c *Controller) Render() calendar.Grid {
	return calendar.Build(c.State.Visible, c.State.Reservations)
}

// Navigate moves the visible month and reloads it.
func (c *Controller) Navigate(ctx context.Context, delta int) {
	c.State.Visible = c.State.Visible.Add(delta)
	c.LoadMonth(ctx)
}

// Today jumps back to the month containing today and reloads it.
func (c *Controller) Today(ctx context.Context) {
	c.State.Visible = calendar.MonthOf(c.now())
	c.LoadMonth(ctx)
}

// SelectDay handles a selection of a day cell, using the cached reservations.
func (c *Controller) SelectDay(ctx context.Context, date string) error {
	return c.Dispatch(ctx, calendar.DayIntent(date, calendar.Occupants(c.State.Reservations, date)))
}

// SelectBar handles a selection of a reservation bar.
func (c *Controller) SelectBar(ctx context.Context, id reservations.ID) error {
	return c.Dispatch(ctx, calendar.BarIntent(reservations.Reservation{ID: id}))
}

func (c *Controller) Dispatch(ctx context.Context, in calendar.Intent) error {
	switch in.Kind {
	case calendar.IntentNew:
		c.OpenNew(in.Date)
		return nil
	case calendar.IntentEdit:
		return c.OpenEdit(ctx, in.ID)
	case calendar.IntentPick:
		answer, ok := c.Decide.Prompt(calendar.PickPrompt(in.Choices))
		if !ok {
			return ErrDeclined
		}
		id, ok := calendar.ResolvePick(in.Choices, answer)
		if !ok {
			return ErrDeclined
		}
		return c.OpenEdit(ctx, id)
	case calendar.IntentNavigate:
		c.Navigate(ctx, in.Delta)
		return nil
	}
	return fmt.Errorf("unknown intent %q", in.Kind)
}

func (c *Controller) record(ctx context.Context, eventType string, p reservations.ActivityPayload) {
	if c.Activity == nil {
		return
	}
	c.Activity.Record(ctx, eventType, p)
}
