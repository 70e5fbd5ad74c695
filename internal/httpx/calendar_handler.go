package httpx

import (
	"bytes"
	"context"
	"errors"
	"github.com/ariefcatur/chale-calendar.git/internal/activity"
	"github.com/ariefcatur/chale-calendar.git/internal/calendar"
	"github.com/ariefcatur/chale-calendar.git/internal/controller"
	"github.com/ariefcatur/chale-calendar.git/internal/masks"
	"github.com/ariefcatur/chale-calendar.git/internal/reservations"
	"github.com/ariefcatur/chale-calendar.git/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"log"
	"net/http"
	"time"
)

// CalendarHandler serves the operator's calendar. Every request runs one
// controller operation against the session's State and saves it back.
type CalendarHandler struct {
	API        controller.API
	Sessions   session.Store
	Activity   controller.Recorder // nil disables activity events
	SessionTTL time.Duration
	Now        func() time.Time
}

func (h *CalendarHandler) Register(r *chi.Mux) {
	r.Handle("/static/*", staticHandler())
	r.Get("/mask/{kind}", h.mask)

	r.Group(func(r chi.Router) {
		r.Use(WithSessionID(h.SessionTTL))
		r.Get("/", h.index)
		r.Post("/nav/{dir}", h.navigate)
		r.Get("/today", h.today)
		r.Get("/days/{date}", h.selectDay)
		r.Get("/reservations/{id}", h.selectBar)
		r.Get("/new", h.newReservation)
		r.Post("/modal/save", h.save)
		r.Post("/modal/checkin", h.checkIn)
		r.Post("/modal/checkout", h.checkOut)
		r.Post("/modal/remove", h.remove)
		r.Post("/modal/whatsapp", h.whatsapp)
		r.Get("/modal/cancel", h.cancel)
	})
}

func (h *CalendarHandler) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

// turn is one request's view of the session.
type turn struct {
	ctx     context.Context
	id      string
	sess    *session.Session
	ctl     *controller.Controller
	opener  *webOpener
	handler *CalendarHandler
}

func (h *CalendarHandler) begin(w http.ResponseWriter, r *http.Request) (*turn, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return nil, false
	}
	ctx := activity.WithTraceID(r.Context(), middleware.GetReqID(r.Context()))
	id := sessionID(ctx)
	s, err := h.Sessions.Load(ctx, id)
	if err != nil {
		log.Printf("session %s: %v", id, err)
		http.Error(w, "session unavailable", http.StatusServiceUnavailable)
		return nil, false
	}
	fresh := s == nil || !s.State.Visible.Valid()
	if fresh {
		s = &session.Session{State: *controller.NewState(h.now())}
	}

	op := &webOpener{}
	ctl := controller.New(h.API, newDecider(s, r), &s.State)
	ctl.Open = op
	ctl.Now = h.now
	if h.Activity != nil {
		ctl.Activity = h.Activity
	}
	// a new or expired session starts with the month loaded, whatever the
	// first request is
	if fresh {
		ctl.LoadMonth(ctx)
	}
	return &turn{ctx: ctx, id: id, sess: s, ctl: ctl, opener: op, handler: h}, true
}

func (t *turn) save() error {
	if err := t.handler.Sessions.Save(t.ctx, t.id, t.sess); err != nil {
		log.Printf("session %s: %v", t.id, err)
		return err
	}
	return nil
}

// finish saves the session and sends the browser back to the calendar.
func (t *turn) finish(w http.ResponseWriter, r *http.Request) {
	if err := t.save(); err != nil {
		http.Error(w, "session unavailable", http.StatusServiceUnavailable)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// act runs op and logs what the operator was not already told about.
func (h *CalendarHandler) act(w http.ResponseWriter, r *http.Request, op func(t *turn) error) {
	t, ok := h.begin(w, r)
	if !ok {
		return
	}
	if err := op(t); err != nil && !errors.Is(err, controller.ErrDeclined) {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	}
	t.finish(w, r)
}

func (h *CalendarHandler) index(w http.ResponseWriter, r *http.Request) {
	t, ok := h.begin(w, r)
	if !ok {
		return
	}
	flash, q := t.sess.TakeNotices()
	grid := t.ctl.Render()

	var buf bytes.Buffer
	err := pages.ExecuteTemplate(&buf, "index.html", newPage(grid, t.sess.State.Modal, flash, q, h.now()))
	if err != nil {
		log.Printf("render calendar: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	if err := t.save(); err != nil {
		http.Error(w, "session unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *CalendarHandler) navigate(w http.ResponseWriter, r *http.Request) {
	var delta int
	switch chi.URLParam(r, "dir") {
	case "prev":
		delta = -1
	case "next":
		delta = 1
	default:
		http.Error(w, "unknown direction", http.StatusBadRequest)
		return
	}
	h.act(w, r, func(t *turn) error {
		return t.ctl.Dispatch(t.ctx, calendar.NavigateIntent(delta))
	})
}

func (h *CalendarHandler) today(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(t *turn) error {
		t.ctl.Today(t.ctx)
		return nil
	})
}

func (h *CalendarHandler) selectDay(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := reservations.ParseISO(date); err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	h.act(w, r, func(t *turn) error {
		return t.ctl.SelectDay(t.ctx, date)
	})
}

func (h *CalendarHandler) selectBar(w http.ResponseWriter, r *http.Request) {
	id := reservations.ID(chi.URLParam(r, "id"))
	h.act(w, r, func(t *turn) error {
		return t.ctl.SelectBar(t.ctx, id)
	})
}

func (h *CalendarHandler) newReservation(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(t *turn) error {
		t.ctl.OpenNew(r.Form.Get("date"))
		return nil
	})
}

func (h *CalendarHandler) save(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(t *turn) error {
		return t.ctl.Submit(t.ctx, formFrom(r))
	})
}

func (h *CalendarHandler) checkIn(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(t *turn) error { return t.ctl.CheckIn(t.ctx) })
}

func (h *CalendarHandler) checkOut(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(t *turn) error { return t.ctl.CheckOut(t.ctx) })
}

func (h *CalendarHandler) remove(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(t *turn) error { return t.ctl.Remove(t.ctx) })
}

func (h *CalendarHandler) cancel(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(t *turn) error {
		t.ctl.Close()
		return nil
	})
}

// whatsapp keeps what was typed in the modal and sends the browser to the
// chat link, or back to the calendar with the alert.
func (h *CalendarHandler) whatsapp(w http.ResponseWriter, r *http.Request) {
	t, ok := h.begin(w, r)
	if !ok {
		return
	}
	f := formFrom(r)
	if m := t.sess.State.Modal; m != nil {
		f.ID = m.Form.ID
		m.Form = f.Masked()
	}
	if err := t.ctl.OpenWhatsApp(f.WhatsApp); err != nil || t.opener.url == "" {
		t.finish(w, r)
		return
	}
	if err := t.save(); err != nil {
		http.Error(w, "session unavailable", http.StatusServiceUnavailable)
		return
	}
	http.Redirect(w, r, t.opener.url, http.StatusSeeOther)
}

// mask applies a keystroke mask for the page script.
func (h *CalendarHandler) mask(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query().Get("v")
	switch chi.URLParam(r, "kind") {
	case "phone":
		writeJSON(w, http.StatusOK, map[string]string{"value": masks.Phone(v)})
	case "currency":
		writeJSON(w, http.StatusOK, map[string]string{"value": masks.Currency(v)})
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown mask"})
	}
}

func formFrom(r *http.Request) controller.Form {
	return controller.Form{
		ID:          reservations.ID(r.PostForm.Get("id")),
		Chale:       r.PostForm.Get("chale"),
		Nome:        r.PostForm.Get("nome"),
		WhatsApp:    r.PostForm.Get("whatsapp"),
		Valor:       r.PostForm.Get("valor"),
		Pessoas:     r.PostForm.Get("pessoas"),
		CheckIn:     r.PostForm.Get("checkin"),
		CheckOut:    r.PostForm.Get("checkout"),
		Observacoes: r.PostForm.Get("observacoes"),
	}
}
