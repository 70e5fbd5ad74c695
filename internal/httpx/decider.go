package httpx

import (
	"github.com/ariefcatur/chale-calendar.git/internal/session"
	"net/http"
	"net/url"
	"strings"
)

// webDecider answers the controller's questions from the request. With no
// answer present it says no and leaves the question pending in the session;
// the page then asks and re-issues the same request with the answer.
type webDecider struct {
	sess   *session.Session
	form   url.Values
	method string
	action string
}

func newDecider(s *session.Session, r *http.Request) *webDecider {
	return &webDecider{sess: s, form: r.Form, method: r.Method, action: r.URL.Path}
}

func (d *webDecider) Alert(msg string) {
	d.sess.Flash = append(d.sess.Flash, msg)
}

func (d *webDecider) Confirm(msg string) bool {
	if !d.form.Has("confirm") {
		d.ask(session.QuestionConfirm, msg)
		return false
	}
	return d.form.Get("confirm") == "yes"
}

func (d *webDecider) Prompt(msg string) (string, bool) {
	if !d.form.Has("pick") {
		d.ask(session.QuestionPrompt, msg)
		return "", false
	}
	v := strings.TrimSpace(d.form.Get("pick"))
	return v, v != ""
}

func (d *webDecider) ask(kind session.QuestionKind, msg string) {
	d.sess.Pending = &session.Question{Kind: kind, Message: msg, Method: d.method, Action: d.action}
}

// webOpener remembers the URL; the handler redirects the browser to it.
type webOpener struct {
	url string
}

func (o *webOpener) Open(url string) { o.url = url }
