package controller

import (
	"context"
	"errors"
	"fmt"
	"github.com/ariefcatur/chale-calendar.git/internal/masks"
	"github.com/ariefcatur/chale-calendar.git/internal/reservations"
	"log"
)

func (c *Controller) CheckIn(ctx context.Context) error {
	return c.transition(ctx, "checkin", MsgConfirmCheckIn, MsgCheckInFailed, reservations.EventReservationCheckedIn,
		func(id reservations.ID) error {
			_, err := c.API.CheckIn(ctx, id)
			return err
		})
}

func (c *Controller) CheckOut(ctx context.Context) error {
	return c.transition(ctx, "checkout", MsgConfirmCheckOut, MsgCheckOutFailed, reservations.EventReservationCheckedOut,
		func(id reservations.ID) error {
			_, err := c.API.CheckOut(ctx, id)
			return err
		})
}

func (c *Controller) Remove(ctx context.Context) error {
	return c.transition(ctx, "remove", MsgConfirmRemove, MsgRemoveFailed, reservations.EventReservationRemoved,
		func(id reservations.ID) error {
			return c.API.Delete(ctx, id)
		})
}

// transition runs one confirmed status action against the open reservation.
func (c *Controller) transition(ctx context.Context, op, question, failed, event string, call func(reservations.ID) error) error {
	m := c.State.Modal
	if m == nil || m.Form.ID == "" {
		return ErrNoReservation
	}
	id := m.Form.ID
	if !c.Decide.Confirm(question) {
		return ErrDeclined
	}
	if err := call(id); err != nil {
		log.Printf("%s reservation %s: %v", op, id, err)
		c.Decide.Alert(failed)
		return fmt.Errorf("%s reservation %s: %w", op, id, err)
	}

	ap := payloadActivity(id, BuildPayload(m.Form))
	switch event {
	case reservations.EventReservationCheckedIn:
		ap.Status = reservations.StatusCheckIn
	case reservations.EventReservationCheckedOut:
		ap.Status = reservations.StatusCheckOut
	}
	c.record(ctx, event, ap)

	c.LoadMonth(ctx)
	c.Close()
	return nil
}

// OpenWhatsApp opens a chat with phone (as typed in the form).
func (c *Controller) OpenWhatsApp(phone string) error {
	url, err := masks.WhatsAppURL(phone)
	if err != nil {
		c.Decide.Alert(MsgInvalidWhatsApp)
		return err
	}
	if c.Open == nil {
		return errors.New("no opener configured")
	}
	c.Open.Open(url)
	return nil
}
