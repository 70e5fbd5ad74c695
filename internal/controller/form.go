package controller

import (
	"context"
	"fmt"
	"github.com/ariefcatur/chale-calendar.git/internal/masks"
	"github.com/ariefcatur/chale-calendar.git/internal/reservations"
	"log"
	"strconv"
	"strings"
)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// OpenNew opens an empty form for date (today when empty), staying one night.
func (c *Controller) OpenNew(date string) {
	if _, err := reservations.ParseISO(date); err != nil {
		date = reservations.FormatISO(c.now())
	}
	checkout, _ := reservations.AddDaysISO(date, 1)
	c.State.Modal = &Modal{
		Mode: ModeNew,
		Form: Form{
			Chale:    strconv.Itoa(defaultChale),
			Pessoas:  strconv.Itoa(defaultPessoas),
			CheckIn:  date,
			CheckOut: checkout,
		},
		Buttons: ButtonsFor(ModeNew, ""),
	}
}

// OpenEdit fetches the reservation again (the server is the source of truth)
// and opens it. Any failure, not-found included, is alerted and aborts.
func (c *Controller) OpenEdit(ctx context.Context, id reservations.ID) error {
	r, err := c.API.Get(ctx, id)
	if err != nil {
		log.Printf("open reservation %s: %v", id, err)
		c.Decide.Alert(MsgOpenFailed)
		return fmt.Errorf("open reservation %s: %w", id, err)
	}
	status := r.Status.Normalize()
	c.State.Modal = &Modal{
		Mode:    ModeEdit,
		Status:  status,
		Form:    FormFrom(*r),
		Buttons: ButtonsFor(ModeEdit, status),
	}
	return nil
}

// Close drops the modal and whatever was typed into it.
func (c *Controller) Close() {
	c.State.Modal = nil
}

// BuildPayload converts the form into the API write shape.
func BuildPayload(f Form) reservations.Payload {
	return reservations.Payload{
		Chale:       atoiDefault(f.Chale, defaultChale),
		Nome:        strings.TrimSpace(f.Nome),
		WhatsApp:    masks.Digits(f.WhatsApp),
		Valor:       valor(f.Valor),
		Pessoas:     atoiDefault(f.Pessoas, defaultPessoas),
		CheckIn:     f.CheckIn,
		CheckOut:    f.CheckOut,
		Observacoes: strings.TrimSpace(f.Observacoes),
	}
}

// ValidatePayload checks what must hold before anything is sent.
func ValidatePayload(p reservations.Payload) error {
	if p.CheckIn == "" || p.CheckOut == "" {
		return &ValidationError{Message: MsgDatesRequired}
	}
	in, err := reservations.ParseISO(p.CheckIn)
	if err != nil {
		return &ValidationError{Message: MsgDatesInvalid}
	}
	out, err := reservations.ParseISO(p.CheckOut)
	if err != nil {
		return &ValidationError{Message: MsgDatesInvalid}
	}
	if out.Before(in) {
		return &ValidationError{Message: MsgCheckoutBefore}
	}
	return nil
}

// Submit saves the form: update when it carries an id, create otherwise.
// On failure the modal stays open with f in it.
func (c *Controller) Submit(ctx context.Context, f Form) error {
	c.keep(f)

	p := BuildPayload(f)
	if err := ValidatePayload(p); err != nil {
		c.Decide.Alert(err.Error())
		return err
	}

	var (
		saved *reservations.Reservation
		err   error
		event = reservations.EventReservationCreated
	)
	if f.ID != "" {
		event = reservations.EventReservationUpdated
		saved, err = c.API.Update(ctx, f.ID, p)
	} else {
		saved, err = c.API.Create(ctx, p)
	}
	if err != nil {
		log.Printf("save reservation %q: %v", f.ID, err)
		c.Decide.Alert(MsgSaveFailed)
		return fmt.Errorf("save reservation: %w", err)
	}

	ap := payloadActivity(f.ID, p)
	if saved != nil && saved.ID != "" {
		ap.ReservationID = saved.ID
	}
	c.record(ctx, event, ap)

	c.LoadMonth(ctx)
	c.Close()
	return nil
}

// keep puts f into the modal so a failed save leaves it in front of the operator.
func (c *Controller) keep(f Form) {
	if c.State.Modal == nil {
		mode := ModeNew
		if f.ID != "" {
			mode = ModeEdit
		}
		c.State.Modal = &Modal{Mode: mode, Buttons: ButtonsFor(mode, "")}
	}
	c.State.Modal.Form = f.Masked()
}

func payloadActivity(id reservations.ID, p reservations.Payload) reservations.ActivityPayload {
	return reservations.ActivityPayload{
		ReservationID: id,
		Chale:         p.Chale,
		Nome:          p.Nome,
		CheckIn:       p.CheckIn,
		CheckOut:      p.CheckOut,
		ValorCents:    masks.ParseBRL(p.Valor),
	}
}

// valor sends the money field in display form even when the keystroke mask
// never ran on it.
func valor(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	return masks.Currency(v)
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}
