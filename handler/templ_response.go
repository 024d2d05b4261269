package handler

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
)

type templResponse struct {
	component templ.Component
	status    int
}

// Render buffers the component so a failed render can still produce an
// error status instead of a half-written page.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	if err := t.component.Render(r.Context(), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := buf.WriteTo(w)
	return err
}

// Templ renders a templ component as a 200 HTML page.
func Templ(component templ.Component) Response {
	return TemplWithStatus(component, http.StatusOK)
}

func TemplWithStatus(component templ.Component, status int) Response {
	return templResponse{component: component, status: status}
}
