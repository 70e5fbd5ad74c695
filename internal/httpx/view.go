package httpx

import (
	"embed"
	"github.com/ariefcatur/chale-calendar.git/internal/calendar"
	"github.com/ariefcatur/chale-calendar.git/internal/controller"
	"github.com/ariefcatur/chale-calendar.git/internal/reservations"
	"github.com/ariefcatur/chale-calendar.git/internal/session"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"display": reservations.DisplayDate,
}).ParseFS(templateFS, "templates/*.html"))

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

type page struct {
	Grid     calendar.Grid
	Rows     [][]*calendar.Day
	Now      time.Time
	Modal    *controller.Modal
	Flash    []string
	Question *question
}

type question struct {
	Confirm bool
	Method  string
	Action  string
	Lines   []string
}

func newPage(g calendar.Grid, m *controller.Modal, flash []string, q *session.Question, now time.Time) page {
	p := page{
		Grid:  g,
		Rows:  g.Rows(),
		Now:   now,
		Modal: m,
		Flash: flash,
	}
	if q != nil {
		p.Question = &question{
			Confirm: q.Kind == session.QuestionConfirm,
			Method:  q.Method,
			Action:  q.Action,
			Lines:   strings.Split(q.Message, "\n"),
		}
	}
	return p
}
